package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
	"github.com/refilllocal/directory/modules/directory/infrastructure/persistence/models"
	"github.com/refilllocal/directory/pkg/composables"
)

var (
	ErrStoreNotFound = errors.New("store not found")
)

const (
	storeFindQuery = `
        SELECT
            s.id,
            s.city_id,
            s.name,
            s.address,
            s.latitude,
            s.longitude,
            s.google_place_id,
            s.website_url,
            s.phone,
            s.email,
            s.description,
            s.image_url,
            s.hours_of_operation,
            s.is_verified,
            s.added_by,
            s.created_at,
            s.updated_at
        FROM stores s`

	storeRefsByPlaceIDsQuery = `
        SELECT s.google_place_id, s.id, s.name
        FROM stores s
        WHERE s.google_place_id = ANY($1)`

	storeInsertQuery = `
        INSERT INTO stores (
            id,
            city_id,
            name,
            address,
            latitude,
            longitude,
            google_place_id,
            website_url,
            phone,
            email,
            description,
            image_url,
            hours_of_operation,
            is_verified,
            added_by,
            created_at,
            updated_at
        ) VALUES `

	// Concurrent import batches can both classify one place id as new; the
	// unique index is the backstop, and colliding rows are skipped per-row
	// instead of failing the whole commit.
	storeInsertConflictClause = ` ON CONFLICT (google_place_id) DO NOTHING`

	storeInsertColumns = 17
)

type PgStoreRepository struct{}

func NewStoreRepository() store.Repository {
	return &PgStoreRepository{}
}

func (g *PgStoreRepository) queryStores(ctx context.Context, query string, args ...interface{}) ([]store.Store, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query stores")
	}
	defer rows.Close()

	stores := make([]store.Store, 0)
	for rows.Next() {
		var s models.Store
		if err := rows.Scan(
			&s.ID,
			&s.CityID,
			&s.Name,
			&s.Address,
			&s.Latitude,
			&s.Longitude,
			&s.GooglePlaceID,
			&s.WebsiteURL,
			&s.Phone,
			&s.Email,
			&s.Description,
			&s.ImageURL,
			&s.HoursOfOperation,
			&s.IsVerified,
			&s.AddedBy,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan store")
		}
		entity, err := ToDomainStore(&s)
		if err != nil {
			return nil, err
		}
		stores = append(stores, entity)
	}
	return stores, rows.Err()
}

func (g *PgStoreRepository) GetByCity(ctx context.Context, cityID uuid.UUID) ([]store.Store, error) {
	return g.queryStores(
		ctx,
		storeFindQuery+` WHERE s.city_id = $1 AND s.is_verified ORDER BY s.name`,
		cityID.String(),
	)
}

func (g *PgStoreRepository) RefsByPlaceIDs(ctx context.Context, placeIDs []string) (map[string]store.Ref, error) {
	refs := make(map[string]store.Ref, len(placeIDs))
	if len(placeIDs) == 0 {
		return refs, nil
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, storeRefsByPlaceIDsQuery, placeIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query stores by place ids")
	}
	defer rows.Close()

	for rows.Next() {
		var placeID, id, name string
		if err := rows.Scan(&placeID, &id, &name); err != nil {
			return nil, errors.Wrap(err, "failed to scan store ref")
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, errors.Wrap(err, "invalid store id")
		}
		refs[placeID] = store.Ref{ID: parsed, Name: name}
	}
	return refs, rows.Err()
}

func (g *PgStoreRepository) CreateMany(ctx context.Context, stores []store.Store) (int64, error) {
	if len(stores) == 0 {
		return 0, nil
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	values := make([]string, 0, len(stores))
	args := make([]interface{}, 0, len(stores)*storeInsertColumns)
	for i, entity := range stores {
		dbStore, err := ToDBStore(entity)
		if err != nil {
			return 0, err
		}
		values = append(values, insertPlaceholders(i*storeInsertColumns, storeInsertColumns))
		args = append(args,
			dbStore.ID,
			dbStore.CityID,
			dbStore.Name,
			dbStore.Address,
			dbStore.Latitude,
			dbStore.Longitude,
			dbStore.GooglePlaceID,
			dbStore.WebsiteURL,
			dbStore.Phone,
			dbStore.Email,
			dbStore.Description,
			dbStore.ImageURL,
			dbStore.HoursOfOperation,
			dbStore.IsVerified,
			dbStore.AddedBy,
			dbStore.CreatedAt,
			dbStore.UpdatedAt,
		)
	}

	tag, err := tx.Exec(ctx, storeInsertQuery+strings.Join(values, ", ")+storeInsertConflictClause, args...)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert stores")
	}
	return tag.RowsAffected(), nil
}

// insertPlaceholders renders "($1, $2, ...)" for one VALUES tuple starting
// after the given offset.
func insertPlaceholders(offset, count int) string {
	placeholders := make([]string, count)
	for i := range placeholders {
		placeholders[i] = fmt.Sprintf("$%d", offset+i+1)
	}
	return "(" + strings.Join(placeholders, ", ") + ")"
}
