package services

import (
	"context"
	"time"

	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
)

// TokenLedgerSvcFacade is the one-time token ledger. Issue returns the raw
// value exactly once; everything stored is the SHA-256 of it.
type TokenLedgerSvcFacade interface {
	// Issue generates a high-entropy random value, persists its hash with an
	// absolute expiry, and returns the raw value to the caller once.
	Issue(ctx context.Context, userID string, tokenType domain.TokenType, ttl time.Duration) (string, error)

	// Lookup hashes the presented raw token and finds the matching entry.
	// Returns apperrors.ErrNotFound when no entry matches.
	Lookup(ctx context.Context, userID string, rawToken string, tokenType domain.TokenType) (*domain.Token, error)

	// Consume flips used and stamps consumedAt in a single conditional update.
	// Calling it on an already-used entry is not an error; callers check
	// Used/ExpiresAt themselves to pick the right failure message.
	Consume(ctx context.Context, token *domain.Token) error

	// InCooldown reports whether an entry of the given type was created within
	// window of now for the user.
	InCooldown(ctx context.Context, userID string, tokenType domain.TokenType, window time.Duration) (bool, error)
}
