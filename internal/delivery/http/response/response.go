// Package response renders the JSON envelope shared by every HTTP endpoint:
// {"success":bool,"message":string,"token":string,"data":any}, empty fields omitted.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Success writes a successful response with optional message and data.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WithToken writes a successful response carrying a fresh session token.
func WithToken(c echo.Context, token string, data any) error {
	return c.JSON(http.StatusOK, Response{
		Success: true,
		Token:   token,
		Data:    data,
	})
}

// Error writes the failure envelope. Only the client-facing message is sent.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}
