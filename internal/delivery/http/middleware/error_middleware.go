package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/delivery/http/response"
	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Clients only ever
// see the AppError message; everything else becomes a generic 500.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("details", appErr.Details()),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		} else {
			logger.Debug("Request rejected",
				slog.String("code", appErr.ErrorCode()),
				slog.String("error", err.Error()),
			)
		}
		m.write(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		m.writeHTTPError(c, httpErr)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	m.write(c, domainerrors.ErrInternalError.HTTPCode(), domainerrors.ErrInternalError.Message())
}

// writeHTTPError maps errors raised by echo itself (routing, binding, body limit).
func (m *ErrorMiddleware) writeHTTPError(c echo.Context, httpErr *echo.HTTPError) {
	switch httpErr.Code {
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		m.write(c, domainerrors.ErrRouteNotFound.HTTPCode(), domainerrors.ErrRouteNotFound.Message())
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		m.write(c, domainerrors.ErrInvalidRequestBody.HTTPCode(), domainerrors.ErrInvalidRequestBody.Message())
	case http.StatusInternalServerError:
		m.write(c, domainerrors.ErrInternalError.HTTPCode(), domainerrors.ErrInternalError.Message())
	default:
		message, _ := httpErr.Message.(string)
		m.write(c, httpErr.Code, message)
	}
}

func (m *ErrorMiddleware) write(c echo.Context, code int, message string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = response.Error(c, code, message)
	}
	if err != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", err))
	}
}
