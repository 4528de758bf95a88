package services

import (
	"context"

	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
)

// UserReaderSvc defines read operations against the credential store.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// GetUserByEmail retrieves a user by email (normalized before lookup).
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByGoogleID retrieves a user by linked Google subject id.
	GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error)
}

// UserWriterSvc defines write operations against the credential store.
// Password hashing happens exactly once per credential change, inside
// CreateUser and SetPassword; nothing else touches the hash.
type UserWriterSvc interface {
	// CreateUser creates a new unverified user from a signup request.
	CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// CreateOAuthUser finds a user by Google subject id, links the id to an
	// existing account matched by email, or creates a new verified account
	// with a username derived from the email's local part.
	CreateOAuthUser(ctx context.Context, name, email, providerUserID, phone string) (*domain.User, error)

	// SetPassword rehashes and stores a new password for the user.
	SetPassword(ctx context.Context, userID string, newPassword string) error

	// MarkVerified sets isVerified=true if not already set.
	MarkVerified(ctx context.Context, userID string) error

	// UpdateUsername persists a username change. Unchanged values are a no-op.
	UpdateUsername(ctx context.Context, userID string, username string) (*domain.User, error)

	// UpdateName persists a display-name change.
	UpdateName(ctx context.Context, userID string, name string) (*domain.User, error)

	// UpdatePhone persists a phone change; an empty value clears the field.
	UpdatePhone(ctx context.Context, userID string, phone string) (*domain.User, error)
}

// UserLifecycleSvc defines account removal.
type UserLifecycleSvc interface {
	// DeleteUser removes the user and cascades to their ledger tokens.
	DeleteUser(ctx context.Context, userID string) error
}

// UserAuthSvc defines credential verification.
type UserAuthSvc interface {
	// VerifyPassword checks a plaintext password against the stored hash via
	// the hashing scheme, never a direct string compare.
	VerifyPassword(user *domain.User, password string) bool
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
