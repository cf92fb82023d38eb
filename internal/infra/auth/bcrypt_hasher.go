// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/base64"

	"authcore/config"
	"authcore/internal/domain/service"
	"authcore/internal/errors"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
// At most `slots` hashes run at once; callers queue on the semaphore.
type bcryptHasher struct {
	cost  int
	slots *semaphore.Weighted
}

// NewBcryptHasher is the constructor for bcryptHasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewBcryptHasher(cfg *config.Config) (service.PasswordHasher, error) {
	cost := bcrypt.DefaultCost
	concurrency := int64(1)
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost != 0 {
			cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.HashConcurrency > 0 {
			concurrency = int64(cfg.Auth.HashConcurrency)
		}
	}

	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, errors.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return NewBcryptHasherWithCost(cost, concurrency), nil
}

// NewBcryptHasherWithCost builds a hasher with an explicit cost and concurrency limit.
func NewBcryptHasherWithCost(cost int, concurrency int64) service.PasswordHasher {
	if concurrency < 1 {
		concurrency = 1
	}

	return &bcryptHasher{
		cost:  cost,
		slots: semaphore.NewWeighted(concurrency),
	}
}

// prehash maps a password of any length to 44 bytes, below bcrypt's 72-byte
// input limit, so long passwords are accepted and every byte counts.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])

	return out
}

// Hash generates a salted hash from a plaintext password using bcrypt.
// bcrypt automatically handles salt generation.
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return "", errors.Wrap(err, "wait for hash slot")
	}
	defer h.slots.Release(1)

	bytes, err := bcrypt.GenerateFromPassword(prehash(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt generate")
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash in constant time.
func (h *bcryptHasher) Check(ctx context.Context, password, hash string) (bool, error) {
	if err := h.slots.Acquire(ctx, 1); err != nil {
		return false, errors.Wrap(err, "wait for hash slot")
	}
	defer h.slots.Release(1)

	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, errors.Wrap(err, "stored password hash is malformed")
	}
}
