package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "authcore/internal/delivery/context"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerScheme = "Bearer"

// AuthMiddleware guards routes that need a valid session token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate requires "Authorization: Bearer <token>" and stores the verified
// subject on the context. Failures are returned to the HTTP error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrNoToken
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != bearerScheme || parts[1] == "" {
			return domainerrors.ErrTokenBadFormat
		}

		subject, err := m.tokenSvc.Verify(parts[1])
		if err != nil {
			// The token itself is never logged.
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Session token rejected", slog.String("reason", err.Error()))

			return domainerrors.ErrTokenInvalid
		}

		deliverycontext.SetSubject(c, subject)

		ctx := c.Request().Context()
		if reqLogger := deliverycontext.GetLogger(ctx); reqLogger != nil {
			ctx = deliverycontext.WithLogger(ctx, reqLogger.With(slog.String("user_id", subject.String())))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
