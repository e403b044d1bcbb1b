package composables

import (
	"context"
	"errors"

	"github.com/refilllocal/directory/modules/directory/domain/entities/operator"
	"github.com/refilllocal/directory/pkg/constants"
)

var ErrNoOperator = errors.New("no authenticated operator in context")

// WithOperator returns a new context carrying the authenticated operator.
func WithOperator(ctx context.Context, op operator.Operator) context.Context {
	return context.WithValue(ctx, constants.OperatorKey, op)
}

// UseOperator returns the authenticated operator from the context.
func UseOperator(ctx context.Context) (operator.Operator, error) {
	op, ok := ctx.Value(constants.OperatorKey).(operator.Operator)
	if !ok {
		return nil, ErrNoOperator
	}
	return op, nil
}
