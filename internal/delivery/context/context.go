// Package context carries request-scoped values between delivery middleware,
// handlers and use cases: request ID, logger and the authenticated subject.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeySubject is the key for the user ID proven by the session token.
	KeySubject ContextKey = "subject"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetSubject stores the authenticated user ID on both the echo context and
// the request context.
func SetSubject(c echo.Context, subject uuid.UUID) {
	c.Set(string(KeySubject), subject)
	req := c.Request()
	c.SetRequest(req.WithContext(WithSubject(req.Context(), subject)))
}

// GetSubject returns the authenticated user ID set by the auth middleware.
func GetSubject(c echo.Context) (uuid.UUID, bool) {
	subject, ok := c.Get(string(KeySubject)).(uuid.UUID)

	return subject, ok && subject != uuid.Nil
}

// WithSubject returns a new context with the authenticated user ID.
func WithSubject(ctx context.Context, subject uuid.UUID) context.Context {
	return context.WithValue(ctx, KeySubject, subject)
}

// SubjectFromContext extracts the authenticated user ID from context.Context.
func SubjectFromContext(ctx context.Context) (uuid.UUID, bool) {
	subject, ok := ctx.Value(KeySubject).(uuid.UUID)

	return subject, ok && subject != uuid.Nil
}
