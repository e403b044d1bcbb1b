package persistence

import (
	"context"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/refilllocal/directory/modules/directory/domain/entities/review"
	"github.com/refilllocal/directory/modules/directory/infrastructure/persistence/models"
	"github.com/refilllocal/directory/pkg/composables"
)

const (
	reviewFindQuery = `
        SELECT
            r.id,
            r.store_id,
            r.place_id,
            r.external_id,
            r.author_name,
            r.review_text,
            r.rating,
            r.reviewed_at,
            r.owner_answer,
            r.owner_answered_at,
            r.likes_count,
            r.created_at
        FROM store_reviews r`

	reviewExistingIDsQuery = `
        SELECT r.external_id
        FROM store_reviews r
        WHERE r.external_id = ANY($1)`

	reviewInsertQuery = `
        INSERT INTO store_reviews (
            id,
            store_id,
            place_id,
            external_id,
            author_name,
            review_text,
            rating,
            reviewed_at,
            owner_answer,
            owner_answered_at,
            likes_count,
            created_at
        ) VALUES `

	reviewInsertConflictClause = ` ON CONFLICT (external_id) DO NOTHING`

	reviewInsertColumns = 12
)

type PgReviewRepository struct{}

func NewReviewRepository() review.Repository {
	return &PgReviewRepository{}
}

func (g *PgReviewRepository) GetByStore(ctx context.Context, storeID uuid.UUID) ([]review.Review, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, reviewFindQuery+` WHERE r.store_id = $1 ORDER BY r.reviewed_at DESC`, storeID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to query reviews")
	}
	defer rows.Close()

	reviews := make([]review.Review, 0)
	for rows.Next() {
		var r models.StoreReview
		if err := rows.Scan(
			&r.ID,
			&r.StoreID,
			&r.PlaceID,
			&r.ExternalID,
			&r.AuthorName,
			&r.ReviewText,
			&r.Rating,
			&r.ReviewedAt,
			&r.OwnerAnswer,
			&r.OwnerAnsweredAt,
			&r.LikesCount,
			&r.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan review")
		}
		entity, err := ToDomainReview(&r)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, entity)
	}
	return reviews, rows.Err()
}

func (g *PgReviewRepository) ExistingExternalIDs(ctx context.Context, externalIDs []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(externalIDs))
	if len(externalIDs) == 0 {
		return existing, nil
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, reviewExistingIDsQuery, externalIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query existing review ids")
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "failed to scan review id")
		}
		existing[id] = struct{}{}
	}
	return existing, rows.Err()
}

func (g *PgReviewRepository) CreateMany(ctx context.Context, reviews []review.Review) (int64, error) {
	if len(reviews) == 0 {
		return 0, nil
	}
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	values := make([]string, 0, len(reviews))
	args := make([]interface{}, 0, len(reviews)*reviewInsertColumns)
	for i, entity := range reviews {
		dbReview := ToDBReview(entity)
		values = append(values, insertPlaceholders(i*reviewInsertColumns, reviewInsertColumns))
		args = append(args,
			dbReview.ID,
			dbReview.StoreID,
			dbReview.PlaceID,
			dbReview.ExternalID,
			dbReview.AuthorName,
			dbReview.ReviewText,
			dbReview.Rating,
			dbReview.ReviewedAt,
			dbReview.OwnerAnswer,
			dbReview.OwnerAnsweredAt,
			dbReview.LikesCount,
			dbReview.CreatedAt,
		)
	}

	tag, err := tx.Exec(ctx, reviewInsertQuery+strings.Join(values, ", ")+reviewInsertConflictClause, args...)
	if err != nil {
		return 0, errors.Wrap(err, "failed to insert reviews")
	}
	return tag.RowsAffected(), nil
}
