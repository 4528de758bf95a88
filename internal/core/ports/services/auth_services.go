package services

import (
	"context"
	"time"

	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// SessionSvcFacade mints and validates the signed session credential carried
// in the session cookie or bearer header.
type SessionSvcFacade interface {
	// GenerateSessionToken creates a signed, time-limited session token.
	GenerateSessionToken(ctx context.Context, user *domain.User) (string, time.Time, error)

	// ValidateSessionToken verifies a session token and resolves it to the
	// current user, re-fetched from the store. A token whose user no longer
	// exists fails with apperrors.ErrUnauthorized.
	ValidateSessionToken(ctx context.Context, tokenString string) (*domain.User, error)
}

// GoogleOAuthSvcFacade wraps the external Google OAuth collaborators.
type GoogleOAuthSvcFacade interface {
	// ValidateGoogleIDToken validates an ID token string against the
	// configured client id and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)

	// ExchangeCodeForToken exchanges an OAuth authorization code for tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// GenerateStateString creates a CSRF state value for the redirect flow.
	GenerateStateString(ctx context.Context) (string, error)

	// GetGoogleLoginURL returns the URL to redirect the user to for login.
	GetGoogleLoginURL(ctx context.Context, state string) string
}

// MailerSvc is the transactional email collaborator. Failures are surfaced to
// the caller, never retried.
type MailerSvc interface {
	// SendVerificationEmail mails the raw email-verification token as a link.
	SendVerificationEmail(ctx context.Context, toEmail string, userID string, rawToken string) error

	// SendPasswordResetEmail mails the raw password-reset token as a link.
	SendPasswordResetEmail(ctx context.Context, toEmail string, userID string, rawToken string) error
}

// AuthSvcFacade exposes the account operations: each one combines the
// credential store and token ledger, plus the mailer and OAuth verifier.
type AuthSvcFacade interface {
	// Signup creates an unverified user, issues an email_verify token and
	// attempts to send the verification email. The user persists even when the
	// email send fails.
	Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error)

	// VerifyEmail consumes an email_verify token and marks the user verified.
	VerifyEmail(ctx context.Context, userID string, rawToken string) error

	// ResendVerification issues a fresh email_verify token, subject to the
	// cooldown window. The success response never reveals whether the account
	// exists.
	ResendVerification(ctx context.Context, email string) error

	// Login authenticates by username or email and returns the user plus a
	// session token and its expiry.
	Login(ctx context.Context, identifier string, password string) (*domain.User, string, time.Time, error)

	// ForgotPassword issues a password_reset token and mails the reset link.
	// The success response never reveals whether the account exists.
	ForgotPassword(ctx context.Context, identifier string) error

	// ResetPassword consumes a password_reset token and stores a new password.
	ResetPassword(ctx context.Context, userID string, rawToken string, newPassword string) error

	// ChangePassword verifies the current password and stores a new one.
	ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) error

	// UpdateUsername, UpdateName, UpdatePhone mutate profile fields with
	// format validation; unchanged values are a no-op success.
	UpdateUsername(ctx context.Context, userID string, username string) (*domain.User, error)
	UpdateName(ctx context.Context, userID string, name string) (*domain.User, error)
	UpdatePhone(ctx context.Context, userID string, phone string) (*domain.User, error)

	// DeleteAccount verifies the current password, then deletes the user's
	// tokens and the user.
	DeleteAccount(ctx context.Context, userID string, currentPassword string) error

	// LoginWithGoogle validates a Google ID token and finds, links or creates
	// the corresponding account, returning it with a session token.
	LoginWithGoogle(ctx context.Context, idTokenString string) (*domain.User, string, time.Time, error)

	// IsUsernameAvailable reports whether a username is free to register.
	IsUsernameAvailable(ctx context.Context, username string) (bool, error)
}
