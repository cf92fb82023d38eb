package impl

import (
	"strings"
	"testing"

	domainerrors "authcore/internal/domain/errors"
	"authcore/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestValidateInput_Register(t *testing.T) {
	tests := []struct {
		name    string
		input   usecase.RegisterInput
		wantMsg string
	}{
		{
			name:  "valid",
			input: usecase.RegisterInput{Name: "Ann", Email: "a@x.com", Password: "secret1"},
		},
		{
			name:    "missing name",
			input:   usecase.RegisterInput{Email: "a@x.com", Password: "secret1"},
			wantMsg: "Name is required",
		},
		{
			name:    "whitespace name",
			input:   usecase.RegisterInput{Name: "   ", Email: "a@x.com", Password: "secret1"},
			wantMsg: "Name is required",
		},
		{
			name:    "invalid email",
			input:   usecase.RegisterInput{Name: "Ann", Email: "not-an-email", Password: "secret1"},
			wantMsg: "Please include a valid email",
		},
		{
			name:    "short password",
			input:   usecase.RegisterInput{Name: "Ann", Email: "a@x.com", Password: "12345"},
			wantMsg: "Please enter a password with 6 or more characters",
		},
		{
			name:    "everything wrong reports name first",
			input:   usecase.RegisterInput{},
			wantMsg: "Name is required",
		},
		{
			name:    "email before password",
			input:   usecase.RegisterInput{Name: "Ann", Email: "nope", Password: "1"},
			wantMsg: "Please include a valid email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateInput(tt.input)
			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			requireAppMessage(t, err, tt.wantMsg)
		})
	}
}

func TestValidateInput_Password(t *testing.T) {
	err := validateInput(usecase.ChangePasswordInput{NewPassword: "secret1"})
	requireAppMessage(t, err, "Current password is required")

	err = validateInput(usecase.ChangePasswordInput{CurrentPassword: "old", NewPassword: "abc"})
	requireAppMessage(t, err, "New password must be at least 6 characters")

	// Length counts characters, not bytes.
	err = validateInput(usecase.ChangePasswordInput{CurrentPassword: "old", NewPassword: strings.Repeat("é", 6)})
	assert.NoError(t, err)
}

func TestValidateInput_Pointer(t *testing.T) {
	err := validateInput(&usecase.LoginInput{Email: "a@x.com"})
	requireAppMessage(t, err, "Password is required")
}

func TestFieldMessage(t *testing.T) {
	assert.Equal(t, "Name is required", fieldMessage(usecase.RegisterInput{}, "Name"))
	assert.Empty(t, fieldMessage(usecase.RegisterInput{}, "Missing"))
	assert.Empty(t, fieldMessage("not a struct", "Name"))
}
