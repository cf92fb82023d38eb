package impl

import (
	"io"
	"log/slog"
	"testing"

	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/errors"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// requireAppMessage asserts err carries an AppError with the given client message.
func requireAppMessage(t *testing.T, err error, message string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected AppError, got %v", err)
	require.Equal(t, message, appErr.Message())
}
