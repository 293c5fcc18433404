package logging

import (
	"context"

	"github.com/google/uuid"
)

// Environment names the deployment environment carried on every log record.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module labels the logical subsystem emitting a record.
type Module string

// ServiceInfo identifies the running service in logs and telemetry.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type contextKey int

const requestIDKey contextKey = iota

// WithRequestID stores the request correlation ID on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the stored request ID, or empty.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}

	return ""
}

// ValidateAndExtractRequestID returns the given ID if usable, otherwise a
// freshly generated one, so downstream calls always carry a correlation ID.
func ValidateAndExtractRequestID(requestID string) string {
	if requestID == "" || len(requestID) > 128 {
		return uuid.NewString()
	}

	return requestID
}
