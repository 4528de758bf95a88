package repositories

import (
	"context"
	"time"

	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
)

// TokenRepositoryFacade defines the persistence contract for the one-time
// token ledger. The ledger is a dumb record store: policy (TTLs, single-use
// enforcement, cooldowns) lives in the services above it.
type TokenRepositoryFacade interface {
	// SaveToken persists a new ledger entry.
	SaveToken(ctx context.Context, token domain.Token) error

	// FindTokenByHash retrieves the entry matching (userID, tokenHash, type),
	// used or not, as long as it has not been reclaimed.
	FindTokenByHash(ctx context.Context, userID string, tokenHash string, tokenType domain.TokenType) (*domain.Token, error)

	// MarkTokenUsed conditionally flips used=false to true and stamps
	// consumedAt in a single update. Returns true if this call flipped the row,
	// false if it was already used.
	MarkTokenUsed(ctx context.Context, tokenID string, consumedAt time.Time) (bool, error)

	// HasRecentToken reports whether an entry of the given type was created for
	// the user after the given instant.
	HasRecentToken(ctx context.Context, userID string, tokenType domain.TokenType, since time.Time) (bool, error)

	// DeleteTokensForUser bulk-deletes all of a user's entries.
	DeleteTokensForUser(ctx context.Context, userID string) error

	// DeleteExpiredTokens reclaims entries whose expiry has passed, regardless
	// of use. Returns the number of rows removed.
	DeleteExpiredTokens(ctx context.Context) (int64, error)
}
