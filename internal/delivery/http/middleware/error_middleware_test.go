package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		method   string
		wantCode int
		wantBody string
	}{
		{
			name:     "app error",
			err:      domainerrors.ErrUserAlreadyExists,
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"User already exists"}`,
		},
		{
			name:     "wrapped app error",
			err:      errors.Wrap(domainerrors.ErrUserNotFound, "failed to get current user"),
			wantCode: http.StatusNotFound,
			wantBody: `{"success":false,"message":"User not found"}`,
		},
		{
			name:     "validation message override",
			err:      domainerrors.ErrValidationFailed.WithMessage("Name is required"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Name is required"}`,
		},
		{
			name:     "database error hides details",
			err:      domainerrors.NewDatabaseExecuteError(errors.New("pq: relation users does not exist"), "failed to create user"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"message":"Server error"}`,
		},
		{
			name:     "unknown route",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"success":false,"message":"Route not found"}`,
		},
		{
			name:     "wrong method",
			err:      echo.ErrMethodNotAllowed,
			wantCode: http.StatusNotFound,
			wantBody: `{"success":false,"message":"Route not found"}`,
		},
		{
			name:     "malformed body",
			err:      echo.NewHTTPError(http.StatusBadRequest, "Syntax error: offset=3"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"success":false,"message":"Invalid request body"}`,
		},
		{
			name:     "body too large",
			err:      echo.ErrStatusRequestEntityTooLarge,
			wantCode: http.StatusRequestEntityTooLarge,
			wantBody: `{"success":false,"message":"Request Entity Too Large"}`,
		},
		{
			name:     "plain error",
			err:      errors.New("nil pointer somewhere"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"success":false,"message":"Server error"}`,
		},
		{
			name:     "head request has no body",
			err:      echo.ErrNotFound,
			method:   http.MethodHead,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			method := tt.method
			if method == "" {
				method = http.MethodGet
			}
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(httptest.NewRequest(method, "/x", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantBody == "" {
				assert.Zero(t, rec.Body.Len())
			} else {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
			assert.NotContains(t, rec.Body.String(), "pq:")
		})
	}
}

func TestErrorMiddleware_LogsUnhandledErrors(t *testing.T) {
	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/api/auth/login", nil), httptest.NewRecorder())
	m.HandleHTTPError(errors.New("disk on fire"), c)

	assert.Contains(t, logs.String(), "Unhandled error")
	assert.Contains(t, logs.String(), "disk on fire")
	assert.Contains(t, logs.String(), "/api/auth/login")
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(newDiscardLogger())
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	assert.NoError(t, c.String(http.StatusOK, "done"))
	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
