package repositories

import (
	"context"

	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
)

// UserReader defines read operations for user records.
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUserByEmail retrieves a user by (already normalized) email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByGoogleID retrieves a user by their linked Google subject id.
	FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
}

// UserWriter defines write operations for user records.
type UserWriter interface {
	// SaveUser persists a new user. Uniqueness violations surface as the
	// field-specific duplicate sentinels from apperrors.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates all mutable fields of an existing user.
	UpdateUser(ctx context.Context, user domain.User) error
}

// UserLifecycleManager defines operations for account removal.
type UserLifecycleManager interface {
	// DeleteUser removes the user and all of their ledger tokens atomically.
	DeleteUser(ctx context.Context, userID string) error
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
