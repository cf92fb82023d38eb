package service

import (
	"authcore/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure: bad signature, wrong
// algorithm, malformed payload, expired.
var ErrInvalidToken = errors.New("invalid token")

// ClaimsUser is the identity block embedded in a session token.
type ClaimsUser struct {
	ID string `json:"id"`
}

// Claims is the session token payload: {"user":{"id":...},"iat":...,"exp":...}.
type Claims struct {
	User ClaimsUser `json:"user"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited session tokens.
type TokenService interface {
	// Issue creates a token for the given subject.
	Issue(subject uuid.UUID) (string, error)

	// Verify returns the subject of a valid token or an error wrapping ErrInvalidToken.
	Verify(token string) (uuid.UUID, error)
}
