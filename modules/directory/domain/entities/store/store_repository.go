package store

import (
	"context"

	"github.com/google/uuid"
)

// Ref identifies an already-persisted store in duplicate reports.
type Ref struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Repository interface {
	GetByCity(ctx context.Context, cityID uuid.UUID) ([]Store, error)
	// RefsByPlaceIDs resolves which of the given google place ids already
	// exist, keyed by place id. One bulk query regardless of batch size.
	RefsByPlaceIDs(ctx context.Context, placeIDs []string) (map[string]Ref, error)
	// CreateMany inserts the batch in one statement. Rows whose place id
	// collides with an existing store are skipped, not failed; the returned
	// count is the number of rows actually inserted.
	CreateMany(ctx context.Context, stores []Store) (int64, error)
}
