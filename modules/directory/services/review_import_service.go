package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-faster/errors"

	"github.com/refilllocal/directory/modules/directory/domain/entities/review"
	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
	"github.com/refilllocal/directory/modules/directory/importing"
	"github.com/refilllocal/directory/pkg/composables"
	"github.com/refilllocal/directory/pkg/eventbus"
	"github.com/refilllocal/directory/pkg/spreadsheet"
)

// reviewColumns maps the Outscraper review export headers to canonical fields.
var reviewColumns = importing.FieldMap{
	Aliases: map[string][]string{
		"place_id":          {"place_id", "google_id"},
		"review_id":         {"review_id"},
		"author_name":       {"author_title"},
		"review_text":       {"review_text"},
		"rating":            {"review_rating"},
		"reviewed_at":       {"review_datetime_utc"},
		"owner_answer":      {"owner_answer"},
		"owner_answered_at": {"owner_answer_timestamp_datetime_utc"},
		"likes":             {"review_likes"},
	},
	Required: []string{"place_id", "review_id", "rating", "reviewed_at"},
}

// ReviewImportService mirrors StoreImportService for review batches. The
// existence check is two-layered: a review's store must already be persisted
// (an unresolved store is a row error, not a duplicate), and its external id
// must be new.
type ReviewImportService struct {
	reviews   review.Repository
	stores    store.Repository
	publisher eventbus.EventBus
}

func NewReviewImportService(
	reviews review.Repository,
	stores store.Repository,
	publisher eventbus.EventBus,
) *ReviewImportService {
	return &ReviewImportService{
		reviews:   reviews,
		stores:    stores,
		publisher: publisher,
	}
}

func (s *ReviewImportService) Validate(ctx context.Context, sheet *spreadsheet.Sheet) (*importing.Result[*review.CreateDTO], error) {
	fields, err := reviewColumns.Resolve(sheet.Header)
	if err != nil {
		return nil, err
	}

	storeRefs, err := s.stores.RefsByPlaceIDs(ctx, distinctValues(sheet.Rows, fields, "place_id"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up stores")
	}
	existing, err := s.reviews.ExistingExternalIDs(ctx, distinctValues(sheet.Rows, fields, "review_id"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up existing reviews")
	}

	result := importing.NewResult[*review.CreateDTO](len(sheet.Rows))
	for _, row := range sheet.Rows {
		placeID := fields.Value(row, "place_id")
		reviewID := fields.Value(row, "review_id")

		ref, ok := storeRefs[placeID]
		if !ok {
			result.Reject(row, fmt.Sprintf("store with place id %q not found", placeID))
			continue
		}
		if reviewID == "" {
			result.Reject(row, "missing review id")
			continue
		}
		if _, dup := existing[reviewID]; dup {
			result.Flag(row, ref)
			continue
		}

		rating, err := strconv.Atoi(fields.Value(row, "rating"))
		if err != nil || rating < 0 || rating > 5 {
			result.Reject(row, fmt.Sprintf("invalid rating %q", fields.Value(row, "rating")))
			continue
		}
		likes, err := strconv.Atoi(fields.Value(row, "likes"))
		if err != nil {
			likes = 0
		}

		result.Accept(&review.CreateDTO{
			StoreID:         ref.ID,
			PlaceID:         placeID,
			ExternalID:      reviewID,
			AuthorName:      fields.Value(row, "author_name"),
			Text:            fields.Value(row, "review_text"),
			Rating:          rating,
			ReviewedAt:      fields.Value(row, "reviewed_at"),
			OwnerAnswer:     fields.Value(row, "owner_answer"),
			OwnerAnsweredAt: fields.Value(row, "owner_answered_at"),
			Likes:           likes,
		})
	}
	return result, nil
}

func (s *ReviewImportService) Commit(ctx context.Context, items []*review.CreateDTO) (int64, error) {
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

	entities := make([]review.Review, 0, len(items))
	for _, dto := range items {
		entities = append(entities, dto.ToEntity())
	}

	var count int64
	err = composables.InTx(ctx, func(txCtx context.Context) error {
		count, err = s.reviews.CreateMany(txCtx, entities)
		return err
	})
	if err != nil {
		return 0, err
	}

	event, err := review.NewImportedEvent(ctx, count)
	if err != nil {
		return 0, err
	}
	s.publisher.Publish(event)
	return count, nil
}
