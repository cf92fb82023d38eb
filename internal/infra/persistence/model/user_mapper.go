package model

import "authcore/internal/domain/entity"

// ToUserDomain maps the persistence model back to a pure domain entity.
func ToUserDomain(m *UserModel) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Settings: entity.Settings{
			Timezone:             m.Timezone,
			DateFormat:           m.DateFormat,
			EmailNotifications:   m.EmailNotifications,
			DesktopNotifications: m.DesktopNotifications,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromUserDomain maps a domain entity to its persistence model.
func FromUserDomain(u *entity.User) *UserModel {
	if u == nil {
		return nil
	}

	return &UserModel{
		ID:                   u.ID,
		Name:                 u.Name,
		Email:                u.Email,
		PasswordHash:         u.PasswordHash,
		Timezone:             u.Timezone,
		DateFormat:           u.DateFormat,
		EmailNotifications:   u.EmailNotifications,
		DesktopNotifications: u.DesktopNotifications,
		CreatedAt:            u.CreatedAt,
		UpdatedAt:            u.UpdatedAt,
	}
}
