package city

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

var ErrNotFound = errors.New("city not found")

type Repository interface {
	GetAll(ctx context.Context) ([]City, error)
	// GetByID returns ErrNotFound when no city has the given id.
	GetByID(ctx context.Context, id uuid.UUID) (City, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
