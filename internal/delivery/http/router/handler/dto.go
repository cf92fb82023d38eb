package handler

import (
	"time"

	"authcore/internal/domain/entity"
	"authcore/internal/usecase"
)

// --- Request bodies ---

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name string `json:"name"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// updateSettingsRequest keeps absent fields nil so they are left untouched.
type updateSettingsRequest struct {
	Timezone             *string `json:"timezone"`
	DateFormat           *string `json:"dateFormat"`
	EmailNotifications   *bool   `json:"emailNotifications"`
	DesktopNotifications *bool   `json:"desktopNotifications"`
}

func (r updateSettingsRequest) toInput() usecase.UpdateSettingsInput {
	return usecase.UpdateSettingsInput{
		Timezone:             r.Timezone,
		DateFormat:           r.DateFormat,
		EmailNotifications:   r.EmailNotifications,
		DesktopNotifications: r.DesktopNotifications,
	}
}

// --- Response bodies ---

// userSummary is the short account shape returned by signup, login and profile updates.
type userSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// userResponse is the full account without its password hash.
type userResponse struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	Email                string    `json:"email"`
	Timezone             string    `json:"timezone"`
	DateFormat           string    `json:"dateFormat"`
	EmailNotifications   bool      `json:"emailNotifications"`
	DesktopNotifications bool      `json:"desktopNotifications"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

func toUserSummary(user *entity.User) userSummary {
	return userSummary{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}
}

func toUserResponse(user *entity.User) userResponse {
	return userResponse{
		ID:                   user.ID.String(),
		Name:                 user.Name,
		Email:                user.Email,
		Timezone:             user.Timezone,
		DateFormat:           user.DateFormat,
		EmailNotifications:   user.EmailNotifications,
		DesktopNotifications: user.DesktopNotifications,
		CreatedAt:            user.CreatedAt,
		UpdatedAt:            user.UpdatedAt,
	}
}
