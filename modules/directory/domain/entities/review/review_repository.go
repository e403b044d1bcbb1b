package review

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetByStore(ctx context.Context, storeID uuid.UUID) ([]Review, error)
	// ExistingExternalIDs returns which of the given review external ids are
	// already persisted. One bulk query regardless of batch size.
	ExistingExternalIDs(ctx context.Context, externalIDs []string) (map[string]struct{}, error)
	// CreateMany inserts the batch in one statement, skipping rows whose
	// external id already exists; returns the number of rows inserted.
	CreateMany(ctx context.Context, reviews []Review) (int64, error)
}
