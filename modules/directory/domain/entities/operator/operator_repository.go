package operator

import "context"

type Repository interface {
	GetByID(ctx context.Context, id string) (Operator, error)
	GetByToken(ctx context.Context, token string) (Operator, error)
}
