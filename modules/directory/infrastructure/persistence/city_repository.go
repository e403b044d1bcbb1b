package persistence

import (
	"context"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/refilllocal/directory/modules/directory/domain/entities/city"
	"github.com/refilllocal/directory/modules/directory/infrastructure/persistence/models"
	"github.com/refilllocal/directory/pkg/composables"
)

const (
	cityFindQuery = `
        SELECT
            c.id,
            c.name,
            c.slug,
            c.state,
            c.is_active,
            c.created_at
        FROM cities c`

	cityExistsQuery = `SELECT 1 FROM cities c WHERE c.id = $1`
)

type PgCityRepository struct{}

func NewCityRepository() city.Repository {
	return &PgCityRepository{}
}

func (g *PgCityRepository) queryCities(ctx context.Context, query string, args ...interface{}) ([]city.City, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query cities")
	}
	defer rows.Close()

	cities := make([]city.City, 0)
	for rows.Next() {
		var c models.City
		if err := rows.Scan(
			&c.ID,
			&c.Name,
			&c.Slug,
			&c.State,
			&c.IsActive,
			&c.CreatedAt,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan city")
		}
		entity, err := ToDomainCity(&c)
		if err != nil {
			return nil, err
		}
		cities = append(cities, entity)
	}
	return cities, rows.Err()
}

func (g *PgCityRepository) GetAll(ctx context.Context) ([]city.City, error) {
	return g.queryCities(ctx, cityFindQuery+` WHERE c.is_active ORDER BY c.name`)
}

func (g *PgCityRepository) GetByID(ctx context.Context, id uuid.UUID) (city.City, error) {
	cities, err := g.queryCities(ctx, cityFindQuery+` WHERE c.id = $1`, id.String())
	if err != nil {
		return nil, err
	}
	if len(cities) == 0 {
		return nil, city.ErrNotFound
	}
	return cities[0], nil
}

func (g *PgCityRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return false, err
	}
	var one int
	if err := tx.QueryRow(ctx, cityExistsQuery, id.String()).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, errors.Wrap(err, "failed to check city existence")
	}
	return true, nil
}
