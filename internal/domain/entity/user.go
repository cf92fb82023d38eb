// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Defaults applied to every newly registered account.
const (
	DefaultTimezone             = "UTC"
	DefaultDateFormat           = "MM/DD/YYYY"
	DefaultEmailNotifications   = true
	DefaultDesktopNotifications = false
)

// User is the only persisted entity: the account, its credential and its settings.
// PasswordHash is never exposed outside the service and persistence layers.
type User struct {
	ID           uuid.UUID // Assigned by the credential store on creation, immutable afterwards.
	Name         string
	Email        string // Stored normalized, see NormalizeEmail.
	PasswordHash string

	Settings

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settings holds the account preferences kept flat on the user record.
type Settings struct {
	Timezone             string
	DateFormat           string
	EmailNotifications   bool
	DesktopNotifications bool
}

// SettingsPatch carries only the settings a caller wants to change; nil fields are left untouched.
type SettingsPatch struct {
	Timezone             *string
	DateFormat           *string
	EmailNotifications   *bool
	DesktopNotifications *bool
}

// NewUser builds an account with default settings. The password must already be hashed.
func NewUser(name, email, passwordHash string) *User {
	return &User{
		Name:         name,
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Settings:     DefaultSettings(),
	}
}

// DefaultSettings returns the settings a new account starts with.
func DefaultSettings() Settings {
	return Settings{
		Timezone:             DefaultTimezone,
		DateFormat:           DefaultDateFormat,
		EmailNotifications:   DefaultEmailNotifications,
		DesktopNotifications: DefaultDesktopNotifications,
	}
}

// Apply merges the patch into the settings. Empty strings count as absent.
func (s *Settings) Apply(patch SettingsPatch) {
	if patch.Timezone != nil && *patch.Timezone != "" {
		s.Timezone = *patch.Timezone
	}
	if patch.DateFormat != nil && *patch.DateFormat != "" {
		s.DateFormat = *patch.DateFormat
	}
	if patch.EmailNotifications != nil {
		s.EmailNotifications = *patch.EmailNotifications
	}
	if patch.DesktopNotifications != nil {
		s.DesktopNotifications = *patch.DesktopNotifications
	}
}

// NormalizeEmail is the single case policy for emails: trimmed and lower-cased
// both when stored and when looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
