package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/refilllocal/directory/pkg/composables"
)

// ImportedEvent is published after a committed store import batch.
type ImportedEvent struct {
	CityID     uuid.UUID
	OperatorID uuid.UUID
	Count      int64
}

func NewImportedEvent(ctx context.Context, cityID uuid.UUID, count int64) (*ImportedEvent, error) {
	op, err := composables.UseOperator(ctx)
	if err != nil {
		return nil, err
	}
	return &ImportedEvent{
		CityID:     cityID,
		OperatorID: op.ID(),
		Count:      count,
	}, nil
}
