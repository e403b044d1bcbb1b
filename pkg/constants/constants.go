package constants

import "github.com/go-playground/validator/v10"

type ContextKey string

const (
	LoggerKey    ContextKey = "logger"
	PoolKey      ContextKey = "pool"
	TxKey        ContextKey = "tx"
	OperatorKey  ContextKey = "operator"
	ParamsKey    ContextKey = "params"
	RequestStart ContextKey = "requestStart"
)

// Validate is the shared validator instance used by DTO Ok() checks.
var Validate = validator.New()
