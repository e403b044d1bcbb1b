package services

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/refilllocal/directory/modules/directory/domain/entities/operator"
)

var ErrInvalidToken = errors.New("invalid or unknown API token")

// AuthService resolves the caller identity from a bearer token.
type AuthService struct {
	operators operator.Repository
}

func NewAuthService(operators operator.Repository) *AuthService {
	return &AuthService{operators: operators}
}

func (s *AuthService) Authenticate(ctx context.Context, token string) (operator.Operator, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	op, err := s.operators.GetByToken(ctx, token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return op, nil
}
