package logger

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	userIDKey    contextKey = "user_id"
	visitIDKey   contextKey = "visit_id"
	loggerKey    contextKey = "logger"
)

// WithRequestID stores a request ID in ctx, generating a UUID when empty
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext returns the request ID or ""
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithUserID stores the journal owner in ctx
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFromContext returns the user ID or ""
func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

// WithVisitID stores the insights screen visit in ctx
func WithVisitID(ctx context.Context, visitID string) context.Context {
	return context.WithValue(ctx, visitIDKey, visitID)
}

// VisitIDFromContext returns the visit ID or ""
func VisitIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(visitIDKey).(string)
	return id
}

// WithLogger attaches a logger to ctx
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext returns the logger in ctx, or the default logger
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

func contextFields(ctx context.Context) []Field {
	var fields []Field
	if id := RequestIDFromContext(ctx); id != "" {
		fields = append(fields, String("request_id", id))
	}
	if id := UserIDFromContext(ctx); id != "" {
		fields = append(fields, String("user_id", id))
	}
	if id := VisitIDFromContext(ctx); id != "" {
		fields = append(fields, String("visit_id", id))
	}
	return fields
}

// Ctx returns the context's logger enriched with its request values
func Ctx(ctx context.Context) Logger {
	return FromContext(ctx).WithContext(ctx)
}
