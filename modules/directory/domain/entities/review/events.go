package review

import (
	"context"

	"github.com/google/uuid"

	"github.com/refilllocal/directory/pkg/composables"
)

// ImportedEvent is published after a committed review import batch.
type ImportedEvent struct {
	OperatorID uuid.UUID
	Count      int64
}

func NewImportedEvent(ctx context.Context, count int64) (*ImportedEvent, error) {
	op, err := composables.UseOperator(ctx)
	if err != nil {
		return nil, err
	}
	return &ImportedEvent{OperatorID: op.ID(), Count: count}, nil
}
