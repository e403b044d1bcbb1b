package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/refilllocal/directory/modules/directory/domain/entities/city"
	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
	"github.com/refilllocal/directory/modules/directory/importing"
	"github.com/refilllocal/directory/pkg/composables"
	"github.com/refilllocal/directory/pkg/eventbus"
	"github.com/refilllocal/directory/pkg/spreadsheet"
)

var (
	ErrEmptyImport  = errors.New("no rows selected for import")
	ErrCityRequired = errors.New("target city is required")
	ErrCityNotFound = errors.New("target city not found")
	ErrNotAdmin     = errors.New("operator is not an administrator")
)

// storeColumns maps the Outscraper-style export headers to canonical store
// fields. Required fields abort the whole batch when none of their aliases
// appear in the header row.
var storeColumns = importing.FieldMap{
	Aliases: map[string][]string{
		"name":          {"name"},
		"address":       {"full_address", "address"},
		"latitude":      {"latitude"},
		"longitude":     {"longitude"},
		"place_id":      {"place_id", "google_id"},
		"website":       {"site", "website_url"},
		"phone":         {"phone", "phone_1"},
		"email":         {"email_1", "email"},
		"description":   {"description", "about"},
		"image_url":     {"photo", "image_url"},
		"working_hours": {"working_hours"},
	},
	Required: []string{"name", "address", "latitude", "longitude", "place_id"},
}

// StoreImportService runs the two stateless steps of a store import batch:
// Validate classifies every row of an uploaded sheet, Commit persists the
// operator-confirmed subset.
type StoreImportService struct {
	stores    store.Repository
	cities    city.Repository
	publisher eventbus.EventBus
}

func NewStoreImportService(
	stores store.Repository,
	cities city.Repository,
	publisher eventbus.EventBus,
) *StoreImportService {
	return &StoreImportService{
		stores:    stores,
		cities:    cities,
		publisher: publisher,
	}
}

// Validate classifies each sheet row as valid, duplicate or error. Pure row
// handling never fails the batch; only a missing required column or a failed
// bulk lookup does.
func (s *StoreImportService) Validate(ctx context.Context, sheet *spreadsheet.Sheet) (*importing.Result[*store.CreateDTO], error) {
	fields, err := storeColumns.Resolve(sheet.Header)
	if err != nil {
		return nil, err
	}

	placeIDs := distinctValues(sheet.Rows, fields, "place_id")
	existing, err := s.stores.RefsByPlaceIDs(ctx, placeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up existing stores")
	}

	result := importing.NewResult[*store.CreateDTO](len(sheet.Rows))
	for _, row := range sheet.Rows {
		placeID := fields.Value(row, "place_id")
		if placeID == "" {
			result.Reject(row, "missing place id")
			continue
		}
		if ref, ok := existing[placeID]; ok {
			result.Flag(row, ref)
			continue
		}

		name := fields.Value(row, "name")
		if name == "" {
			result.Reject(row, "missing store name")
			continue
		}
		latitude, err := strconv.ParseFloat(fields.Value(row, "latitude"), 64)
		if err != nil {
			result.Reject(row, fmt.Sprintf("invalid latitude %q", fields.Value(row, "latitude")))
			continue
		}
		longitude, err := strconv.ParseFloat(fields.Value(row, "longitude"), 64)
		if err != nil {
			result.Reject(row, fmt.Sprintf("invalid longitude %q", fields.Value(row, "longitude")))
			continue
		}

		result.Accept(&store.CreateDTO{
			Name:          name,
			Address:       fields.Value(row, "address"),
			Latitude:      latitude,
			Longitude:     longitude,
			GooglePlaceID: placeID,
			WebsiteURL:    fields.Value(row, "website"),
			Phone:         fields.Value(row, "phone"),
			Email:         fields.Value(row, "email"),
			Description:   fields.Value(row, "description"),
			ImageURL:      fields.Value(row, "image_url"),
			Hours:         store.ParseWeeklyHours(fields.Value(row, "working_hours")),
		})
	}
	return result, nil
}

// Commit persists the operator-confirmed subset. A verified admin identity is
// a precondition, checked before any insert; the city existence check and the
// batched insert run in one transaction.
func (s *StoreImportService) Commit(ctx context.Context, items []*store.CreateDTO, cityID uuid.UUID) (int64, error) {
	op, err := composables.UseOperator(ctx)
	if err != nil {
		return 0, err
	}
	if !op.IsAdmin() {
		return 0, ErrNotAdmin
	}
	if len(items) == 0 {
		return 0, ErrEmptyImport
	}
	if cityID == uuid.Nil {
		return 0, ErrCityRequired
	}
	entities := make([]store.Store, 0, len(items))
	for _, dto := range items {
		entities = append(entities, dto.ToEntity(cityID, op.ID()))
	}

	var count int64
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		exists, err := s.cities.Exists(txCtx, cityID)
		if err != nil {
			return errors.Wrap(err, "failed to check target city")
		}
		if !exists {
			return ErrCityNotFound
		}
		count, err = s.stores.CreateMany(txCtx, entities)
		return err
	})
	if err != nil {
		return 0, err
	}

	event, err := store.NewImportedEvent(ctx, cityID, count)
	if err != nil {
		return 0, err
	}
	s.publisher.Publish(event)
	return count, nil
}

// distinctValues collects the distinct non-empty values of one resolved field
// across all rows, so existence checks run as a single bulk query.
func distinctValues(rows []spreadsheet.Row, fields importing.Resolution, field string) []string {
	seen := make(map[string]struct{}, len(rows))
	values := make([]string, 0, len(rows))
	for _, row := range rows {
		v := fields.Value(row, field)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
