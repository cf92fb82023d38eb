package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, rec), rec
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Done"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Done","data":{"status":"ok"}}`, rec.Body.String())
}

func TestSuccessWithoutData(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusOK, nil, "Password changed successfully"))
	assert.JSONEq(t, `{"success":true,"message":"Password changed successfully"}`, rec.Body.String())
}

func TestWithToken(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, WithToken(c, "abc.def.ghi", map[string]string{"id": "1"}))
	assert.JSONEq(t, `{"success":true,"token":"abc.def.ghi","data":{"id":"1"}}`, rec.Body.String())
}

func TestError(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusUnauthorized, "Token is not valid"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Token is not valid"}`, rec.Body.String())

	c, rec = newContext()
	require.NoError(t, Error(c, http.StatusTeapot, ""))
	assert.JSONEq(t, `{"success":false,"message":"I'm a teapot"}`, rec.Body.String())
}
