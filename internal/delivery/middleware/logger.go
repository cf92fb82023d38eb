// Package middleware holds transport-agnostic echo middleware shared by the HTTP delivery.
package middleware

import (
	"log/slog"

	"authcore/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// LoggerMiddleware writes one access log line per request when env.debug is on.
type LoggerMiddleware struct {
	access echo.MiddlewareFunc
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware. Request and response
// bodies and headers are never logged, so passwords and tokens stay out of the log.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		access: slogecho.NewWithConfig(logger.With(slog.String("component", "http")), slogecho.Config{
			DefaultLevel:     slog.LevelInfo,
			ClientErrorLevel: slog.LevelWarn,
			ServerErrorLevel: slog.LevelError,
			WithUserAgent:    true,
			WithRequestID:    true,
		}),
		debug: config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return m.access(next)
}
