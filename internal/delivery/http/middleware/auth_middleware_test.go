package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/service"
	mockSvc "authcore/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newProtectedEcho mounts a single guarded route that echoes the subject back.
func newProtectedEcho(tokenSvc service.TokenService) *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	auth := NewAuthMiddleware(tokenSvc, newDiscardLogger())
	e.GET("/protected", func(c echo.Context) error {
		subject, ok := deliverycontext.GetSubject(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		fromCtx, _ := deliverycontext.SubjectFromContext(c.Request().Context())

		return c.JSON(http.StatusOK, map[string]string{"subject": subject.String(), "ctx": fromCtx.String()})
	}, auth.Authenticate)

	return e
}

func doRequest(e *echo.Echo, authHeader string, setHeader bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if setHeader {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) (bool, string) {
	t.Helper()

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Success, body.Message
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		setHeader bool
		wantMsg   string
	}{
		{name: "no header", wantMsg: "No token, authorization denied"},
		{name: "empty header", header: "", setHeader: true, wantMsg: "No token, authorization denied"},
		{name: "token without scheme", header: "abc.def.ghi", setHeader: true, wantMsg: "Token format is incorrect, authorization denied"},
		{name: "wrong scheme", header: "Basic abc", setHeader: true, wantMsg: "Token format is incorrect, authorization denied"},
		{name: "lower case scheme", header: "bearer abc", setHeader: true, wantMsg: "Token format is incorrect, authorization denied"},
		{name: "scheme only", header: "Bearer", setHeader: true, wantMsg: "Token format is incorrect, authorization denied"},
		{name: "empty token", header: "Bearer ", setHeader: true, wantMsg: "Token format is incorrect, authorization denied"},
		{name: "three parts", header: "Bearer abc def", setHeader: true, wantMsg: "Token format is incorrect, authorization denied"},
		{name: "double space", header: "Bearer  abc", setHeader: true, wantMsg: "Token format is incorrect, authorization denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Verify must never be reached.
			tokenSvc := mockSvc.NewMockTokenService(t)
			rec := doRequest(newProtectedEcho(tokenSvc), tt.header, tt.setHeader)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			success, message := decodeMessage(t, rec)
			assert.False(t, success)
			assert.Equal(t, tt.wantMsg, message)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("tampered").Return(uuid.Nil, service.ErrInvalidToken)

	rec := doRequest(newProtectedEcho(tokenSvc), "Bearer tampered", true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, message := decodeMessage(t, rec)
	assert.Equal(t, "Token is not valid", message)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	subject := uuid.Must(uuid.NewV7())
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Verify("good.token").Return(subject, nil)

	rec := doRequest(newProtectedEcho(tokenSvc), "Bearer good.token", true)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, subject.String(), body["subject"])
	assert.Equal(t, subject.String(), body["ctx"])
}
