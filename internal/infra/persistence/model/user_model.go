package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table created by migrations/00001_create_users.sql.
// IDs are uuid v7 generated by the application before insert.
type UserModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name                 string    `gorm:"type:varchar(100);not null"`
	Email                string    `gorm:"type:varchar(255);uniqueIndex:users_email_key;not null"`
	PasswordHash         string    `gorm:"type:varchar(255);not null"`
	Timezone             string    `gorm:"type:varchar(64);not null"`
	DateFormat           string    `gorm:"type:varchar(32);not null"`
	EmailNotifications   bool      `gorm:"not null"`
	DesktopNotifications bool      `gorm:"not null"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
