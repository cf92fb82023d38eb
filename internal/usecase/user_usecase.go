// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"authcore/internal/domain/entity"
)

// --- Input DTOs ---
//
// The msg tag holds the client-facing message reported when the field fails
// its validate rules. Fields are checked in declaration order.

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string `validate:"notblank" msg:"Name is required"`
	Email    string `validate:"required,email" msg:"Please include a valid email"`
	Password string `validate:"min=6" msg:"Please enter a password with 6 or more characters"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `validate:"required,email" msg:"Please include a valid email"`
	Password string `validate:"required" msg:"Password is required"`
}

// --- Output DTOs ---

// AuthOutput is returned by both signup and login: a fresh session token and the account.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for registration and login.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Authenticate(ctx context.Context, input LoginInput) (*AuthOutput, error)
}
