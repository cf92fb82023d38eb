// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"authcore/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the self-service account operations. Every method
// acts on behalf of the subject proven by the session token.
type ProfileUsecase interface {
	GetCurrentUser(ctx context.Context, subject uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, subject uuid.UUID, input UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, subject uuid.UUID, input ChangePasswordInput) error
	UpdateSettings(ctx context.Context, subject uuid.UUID, input UpdateSettingsInput) (*entity.User, error)
}

// --- Input DTOs ---

// UpdateProfileInput carries the target account ID exactly as it appeared in
// the request path, so a malformed ID is handled like any foreign one.
type UpdateProfileInput struct {
	TargetID string
	Name     string `validate:"notblank" msg:"Name is required"`
}

// ChangePasswordInput defines the data required to replace the password.
type ChangePasswordInput struct {
	CurrentPassword string `validate:"required" msg:"Current password is required"`
	NewPassword     string `validate:"min=6" msg:"New password must be at least 6 characters"`
}

// UpdateSettingsInput lists optional settings; nil means "leave as is".
type UpdateSettingsInput struct {
	Timezone             *string
	DateFormat           *string
	EmailNotifications   *bool
	DesktopNotifications *bool
}

// Patch converts the input to the entity-level settings patch.
func (in UpdateSettingsInput) Patch() entity.SettingsPatch {
	return entity.SettingsPatch{
		Timezone:             in.Timezone,
		DateFormat:           in.DateFormat,
		EmailNotifications:   in.EmailNotifications,
		DesktopNotifications: in.DesktopNotifications,
	}
}
