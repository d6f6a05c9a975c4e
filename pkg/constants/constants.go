package constants

import "github.com/go-playground/validator/v10"

// Validate is the shared validator instance used by request DTOs.
var Validate = validator.New()

type ContextKey string

const (
	TxKey           ContextKey = "tx"
	PoolKey         ContextKey = "pool"
	LoggerKey       ContextKey = "logger"
	RequestIDKey    ContextKey = "request-id"
	RequestStartKey ContextKey = "request-start"
)
