package pgsql

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/raghavposhaak/poshaak_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the pgx repositories and starts the token
// reaper, which runs until ctx is cancelled.
func NewRepositoryProvider(ctx context.Context, dbPool *pgxpool.Pool, logger *slog.Logger) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	tokenRepo := newPgxTokenRepository(dbPool)
	tokenRepo.StartReaper(ctx, logger)

	return portsrepo.RepositoryProvider{
		UserRepo:  userRepo,
		TokenRepo: tokenRepo,
	}
}
