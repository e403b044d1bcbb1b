package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/jackc/pgx/v5"

	"github.com/refilllocal/directory/modules/directory/domain/entities/operator"
	"github.com/refilllocal/directory/modules/directory/infrastructure/persistence/models"
	"github.com/refilllocal/directory/pkg/composables"
)

var (
	ErrOperatorNotFound = errors.New("operator not found")
)

const (
	operatorFindQuery = `
        SELECT
            o.id,
            o.email,
            o.name,
            o.is_admin,
            o.api_token,
            o.created_at
        FROM operators o`
)

type PgOperatorRepository struct{}

func NewOperatorRepository() operator.Repository {
	return &PgOperatorRepository{}
}

func (g *PgOperatorRepository) getOne(ctx context.Context, query string, args ...interface{}) (operator.Operator, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	var o models.Operator
	if err := tx.QueryRow(ctx, query, args...).Scan(
		&o.ID,
		&o.Email,
		&o.Name,
		&o.IsAdmin,
		&o.APIToken,
		&o.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOperatorNotFound
		}
		return nil, errors.Wrap(err, "failed to query operator")
	}
	return ToDomainOperator(&o)
}

func (g *PgOperatorRepository) GetByID(ctx context.Context, id string) (operator.Operator, error) {
	return g.getOne(ctx, operatorFindQuery+` WHERE o.id = $1`, id)
}

func (g *PgOperatorRepository) GetByToken(ctx context.Context, token string) (operator.Operator, error) {
	return g.getOne(ctx, operatorFindQuery+` WHERE o.api_token = $1`, token)
}
