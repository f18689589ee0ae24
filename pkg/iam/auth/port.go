package auth

import (
	"context"
	"time"
)

// PasswordService hashes and verifies operator passwords
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenDenylist remembers signed-out tokens until they expire
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
