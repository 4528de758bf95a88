package pgsql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raghavposhaak/poshaak_backend/internal/apperrors"
	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
	portsrepo "github.com/raghavposhaak/poshaak_backend/internal/core/ports/repositories"
	"github.com/raghavposhaak/poshaak_backend/internal/models"
)

// reapInterval is how often the repository sweeps expired ledger entries.
// Callers of the ledger never sweep; reclamation is owned here.
const reapInterval = 5 * time.Minute

type PgxTokenRepository struct {
	BaseRepository
}

func newPgxTokenRepository(db *pgxpool.Pool) *PgxTokenRepository {
	return &PgxTokenRepository{BaseRepository{Pool: db}}
}

// Ensure PgxTokenRepository implements portsrepo.TokenRepositoryFacade
var _ portsrepo.TokenRepositoryFacade = (*PgxTokenRepository)(nil)

func toModelToken(d domain.Token) models.Token {
	m := models.Token{
		TokenID:   d.TokenID,
		UserID:    d.UserID,
		TokenHash: d.TokenHash,
		Type:      string(d.Type),
		Used:      d.Used,
		ExpiresAt: d.ExpiresAt,
		CreatedAt: d.CreatedAt,
	}
	if d.ConsumedAt != nil {
		m.ConsumedAt.Time = *d.ConsumedAt
		m.ConsumedAt.Valid = true
	}
	return m
}

func toDomainToken(m models.Token) domain.Token {
	d := domain.Token{
		TokenID:   m.TokenID,
		UserID:    m.UserID,
		TokenHash: m.TokenHash,
		Type:      domain.TokenType(m.Type),
		Used:      m.Used,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
	if m.ConsumedAt.Valid {
		t := m.ConsumedAt.Time
		d.ConsumedAt = &t
	}
	return d
}

func (r *PgxTokenRepository) SaveToken(ctx context.Context, token domain.Token) error {
	m := toModelToken(token)
	query := `
        INSERT INTO tokens (token_id, user_id, token_hash, type, used, expires_at, created_at, consumed_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.Pool.Exec(ctx, query,
		m.TokenID,
		m.UserID,
		m.TokenHash,
		m.Type,
		m.Used,
		m.ExpiresAt,
		m.CreatedAt,
		m.ConsumedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// FindTokenByHash returns used and expired entries alike: the service layer
// inspects Used/ExpiresAt to pick the right failure message.
func (r *PgxTokenRepository) FindTokenByHash(ctx context.Context, userID string, tokenHash string, tokenType domain.TokenType) (*domain.Token, error) {
	query := `
        SELECT token_id, user_id, token_hash, type, used, expires_at, created_at, consumed_at
        FROM tokens
        WHERE user_id = $1 AND token_hash = $2 AND type = $3;
    `
	var m models.Token
	err := r.Pool.QueryRow(ctx, query, userID, tokenHash, string(tokenType)).Scan(
		&m.TokenID,
		&m.UserID,
		&m.TokenHash,
		&m.Type,
		&m.Used,
		&m.ExpiresAt,
		&m.CreatedAt,
		&m.ConsumedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find token: %w", err)
	}
	d := toDomainToken(m)
	return &d, nil
}

// MarkTokenUsed flips used in a single conditional update so two concurrent
// consumers of the same token cannot both win.
func (r *PgxTokenRepository) MarkTokenUsed(ctx context.Context, tokenID string, consumedAt time.Time) (bool, error) {
	query := `
        UPDATE tokens
        SET used = TRUE, consumed_at = $1
        WHERE token_id = $2 AND used = FALSE;
    `
	cmdTag, err := r.Pool.Exec(ctx, query, consumedAt, tokenID)
	if err != nil {
		return false, fmt.Errorf("failed to mark token used: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

func (r *PgxTokenRepository) HasRecentToken(ctx context.Context, userID string, tokenType domain.TokenType, since time.Time) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM tokens
            WHERE user_id = $1 AND type = $2 AND created_at > $3
        );
    `
	var exists bool
	if err := r.Pool.QueryRow(ctx, query, userID, string(tokenType), since).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check recent tokens: %w", err)
	}
	return exists, nil
}

func (r *PgxTokenRepository) DeleteTokensForUser(ctx context.Context, userID string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM tokens WHERE user_id = $1;`, userID); err != nil {
		return fmt.Errorf("failed to delete tokens for user: %w", err)
	}
	return nil
}

func (r *PgxTokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM tokens WHERE expires_at < NOW();`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// StartReaper launches the periodic sweep of expired ledger entries. It stops
// when the context is cancelled.
func (r *PgxTokenRepository) StartReaper(ctx context.Context, logger *slog.Logger) {
	go func() {
		ticker := time.NewTicker(reapInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				removed, err := r.DeleteExpiredTokens(ctx)
				if err != nil {
					logger.Error("Token reaper sweep failed", slog.String("error", err.Error()))
					continue
				}
				if removed > 0 {
					logger.Info("Reclaimed expired tokens", slog.Int64("count", removed))
				}
			}
		}
	}()
}
