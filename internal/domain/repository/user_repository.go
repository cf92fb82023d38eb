// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"authcore/internal/domain/entity"
	"authcore/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailTaken is returned when a create would break email uniqueness.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository is the credential store contract.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByIDForUpdate retrieves a user and locks the record until the
	// surrounding transaction ends. Outside a transaction it behaves like FindByID.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their normalized email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user and fills in ID and timestamps.
	// Returns ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *entity.User) error

	// Update writes name, password hash and settings of an existing user.
	// ID and email are never changed.
	Update(ctx context.Context, user *entity.User) error
}
