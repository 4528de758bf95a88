package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
	portsrepo "github.com/raghavposhaak/poshaak_backend/internal/core/ports/repositories"
	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/utils"
)

// rawTokenBytes is the entropy of a one-time token; 32 bytes hex-encode to a
// 64-character raw value.
const rawTokenBytes = 32

type tokenLedgerService struct {
	tokenRepo portsrepo.TokenRepositoryFacade
}

// NewTokenLedgerService creates the one-time token ledger service.
func NewTokenLedgerService(tokenRepo portsrepo.TokenRepositoryFacade) portssvc.TokenLedgerSvcFacade {
	return &tokenLedgerService{tokenRepo: tokenRepo}
}

// Issue generates the raw token, stores only its SHA-256 hash, and hands the
// raw value back to the caller. This is the single point where the raw value
// exists server-side.
func (s *tokenLedgerService) Issue(ctx context.Context, userID string, tokenType domain.TokenType, ttl time.Duration) (string, error) {
	rawToken, err := utils.GenerateSecureRandomString(rawTokenBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	token := domain.Token{
		TokenID:   uuid.NewString(),
		UserID:    userID,
		TokenHash: utils.HashToken(rawToken),
		Type:      tokenType,
		Used:      false,
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}

	if err := s.tokenRepo.SaveToken(ctx, token); err != nil {
		return "", err
	}
	return rawToken, nil
}

func (s *tokenLedgerService) Lookup(ctx context.Context, userID string, rawToken string, tokenType domain.TokenType) (*domain.Token, error) {
	return s.tokenRepo.FindTokenByHash(ctx, userID, utils.HashToken(rawToken), tokenType)
}

// Consume flips used and stamps consumedAt. The underlying update is
// conditional on used=false so concurrent consumers cannot both flip the row;
// calling Consume on an already-used entry is not an error. Callers check
// Used/ExpiresAt themselves before relying on the token.
func (s *tokenLedgerService) Consume(ctx context.Context, token *domain.Token) error {
	consumedAt := time.Now()
	flipped, err := s.tokenRepo.MarkTokenUsed(ctx, token.TokenID, consumedAt)
	if err != nil {
		return err
	}
	if flipped {
		token.Used = true
		token.ConsumedAt = &consumedAt
	}
	return nil
}

func (s *tokenLedgerService) InCooldown(ctx context.Context, userID string, tokenType domain.TokenType, window time.Duration) (bool, error) {
	return s.tokenRepo.HasRecentToken(ctx, userID, tokenType, time.Now().Add(-window))
}
