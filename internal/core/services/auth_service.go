package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/raghavposhaak/poshaak_backend/internal/apperrors"
	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
	"github.com/raghavposhaak/poshaak_backend/internal/middleware"
	"github.com/raghavposhaak/poshaak_backend/internal/platform/config"
	"github.com/raghavposhaak/poshaak_backend/internal/utils"
)

// authService combines the credential store and the token ledger with the
// external mailer and OAuth verifier. Every operation runs per-request
// sequentially; failures surface immediately, nothing is retried.
type authService struct {
	cfg      *config.Config
	users    portssvc.UserSvcFacade
	ledger   portssvc.TokenLedgerSvcFacade
	sessions portssvc.SessionSvcFacade
	google   portssvc.GoogleOAuthSvcFacade
	mailer   portssvc.MailerSvc
}

// NewAuthService creates the account-operations service. All collaborators
// are injected; tests substitute fakes.
func NewAuthService(
	cfg *config.Config,
	users portssvc.UserSvcFacade,
	ledger portssvc.TokenLedgerSvcFacade,
	sessions portssvc.SessionSvcFacade,
	google portssvc.GoogleOAuthSvcFacade,
	mailer portssvc.MailerSvc,
) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		users:    users,
		ledger:   ledger,
		sessions: sessions,
		google:   google,
		mailer:   mailer,
	}
}

// Signup creates the user, issues the verification token and sends the email,
// in that order. If the email send fails the two prior writes stay: the user
// must be able to request a resend.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	if reason := utils.ValidateUsername(req.Username); reason != "" {
		return nil, apperrors.NewBadRequestError(reason)
	}
	if reason := utils.ValidateEmail(req.Email); reason != "" {
		return nil, apperrors.NewBadRequestError(reason)
	}
	if reason := utils.ValidatePassword(req.Password); reason != "" {
		return nil, apperrors.NewBadRequestError(reason)
	}
	if reason := utils.ValidatePhone(req.Phone); reason != "" {
		return nil, apperrors.NewBadRequestError(reason)
	}

	if _, err := s.users.GetUserByEmail(ctx, req.Email); err == nil {
		return nil, apperrors.NewBadRequestError("User already exists with this email")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewAppError(500, "Internal server error", err)
	}
	if _, err := s.users.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, apperrors.NewBadRequestError("Username already taken")
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewAppError(500, "Internal server error", err)
	}

	user, err := s.users.CreateUser(ctx, req)
	if err != nil {
		// Concurrent signups with the same identity race to the unique index;
		// the loser surfaces here.
		switch {
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			return nil, apperrors.NewBadRequestError("User already exists with this email")
		case errors.Is(err, apperrors.ErrDuplicateUsername):
			return nil, apperrors.NewBadRequestError("Username already taken")
		}
		return nil, apperrors.NewAppError(500, "Failed to register user", err)
	}

	rawToken, err := s.ledger.Issue(ctx, user.UserID, domain.TokenTypeEmailVerify, s.cfg.VerifyTokenTTL)
	if err != nil {
		return nil, apperrors.NewAppError(500, "Failed to issue verification token", err)
	}

	if err := s.mailer.SendVerificationEmail(ctx, user.Email, user.UserID, rawToken); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Verification email failed", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return nil, apperrors.NewAppError(500, "Registration succeeded but failed to send verification email. Please contact support.", err)
	}

	return user, nil
}

// VerifyEmail consumes an email_verify token and flips isVerified.
func (s *authService) VerifyEmail(ctx context.Context, userID string, rawToken string) error {
	token, err := s.ledger.Lookup(ctx, userID, rawToken, domain.TokenTypeEmailVerify)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBadRequestError("Invalid or expired verification link.")
		}
		return apperrors.NewAppError(500, "Internal server error", err)
	}
	if token.Used {
		return apperrors.NewBadRequestError("Verification link has already been used.")
	}
	if token.IsExpired() {
		return apperrors.NewBadRequestError("Verification link has expired. Please request a new one.")
	}

	if err := s.ledger.Consume(ctx, token); err != nil {
		return apperrors.NewAppError(500, "Internal server error", err)
	}

	if err := s.users.MarkVerified(ctx, userID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found.")
		}
		return apperrors.NewAppError(500, "Internal server error", err)
	}
	return nil
}

// ResendVerification issues a fresh verification token. Whether or not the
// account exists (or is already verified), the caller sees the same success;
// only the cooldown is allowed to surface.
func (s *authService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return apperrors.NewAppError(500, "Internal server error", err)
	}
	if user.IsVerified {
		return nil
	}

	inCooldown, err := s.ledger.InCooldown(ctx, user.UserID, domain.TokenTypeEmailVerify, s.cfg.TokenCooldown)
	if err != nil {
		return apperrors.NewAppError(500, "Internal server error", err)
	}
	if inCooldown {
		return apperrors.NewTooManyRequestsError("Verification email was sent recently. Try again in 3 minutes.")
	}

	rawToken, err := s.ledger.Issue(ctx, user.UserID, domain.TokenTypeEmailVerify, s.cfg.VerifyTokenTTL)
	if err != nil {
		return apperrors.NewAppError(500, "Failed to issue verification token", err)
	}

	if err := s.mailer.SendVerificationEmail(ctx, user.Email, user.UserID, rawToken); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Verification email failed", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return apperrors.NewAppError(500, "Verification email failed to send. Please contact support.", err)
	}
	return nil
}

// Login authenticates by username or email. Unknown identifier and wrong
// password produce the same 401; an unverified account is 403 regardless of
// password correctness.
func (s *authService) Login(ctx context.Context, identifier string, password string) (*domain.User, string, time.Time, error) {
	user, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", time.Time{}, apperrors.NewUnauthorizedError("Invalid credentials.")
		}
		return nil, "", time.Time{}, apperrors.NewAppError(500, "Internal server error", err)
	}

	if !user.IsVerified {
		return nil, "", time.Time{}, apperrors.NewForbiddenError("Please verify your email before logging in.")
	}

	if !s.users.VerifyPassword(user, password) {
		return nil, "", time.Time{}, apperrors.NewUnauthorizedError("Invalid credentials.")
	}

	token, expiry, err := s.sessions.GenerateSessionToken(ctx, user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewAppError(500, "Failed to generate session token", err)
	}
	return user, token, expiry, nil
}

// ForgotPassword issues a password_reset token and mails the link. The
// response hides account existence; only the cooldown surfaces.
func (s *authService) ForgotPassword(ctx context.Context, identifier string) error {
	user, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return apperrors.NewAppError(500, "Internal server error", err)
	}

	inCooldown, err := s.ledger.InCooldown(ctx, user.UserID, domain.TokenTypePasswordReset, s.cfg.TokenCooldown)
	if err != nil {
		return apperrors.NewAppError(500, "Internal server error", err)
	}
	if inCooldown {
		return apperrors.NewTooManyRequestsError("Password reset email was sent recently. Try again in 3 minutes.")
	}

	rawToken, err := s.ledger.Issue(ctx, user.UserID, domain.TokenTypePasswordReset, s.cfg.ResetTokenTTL)
	if err != nil {
		return apperrors.NewAppError(500, "Failed to issue reset token", err)
	}

	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, user.UserID, rawToken); err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Password reset email failed", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		return apperrors.NewAppError(500, "Password reset email failed to send. Please contact support.", err)
	}
	return nil
}

// ResetPassword consumes a password_reset token and stores the new password.
func (s *authService) ResetPassword(ctx context.Context, userID string, rawToken string, newPassword string) error {
	if reason := utils.ValidatePassword(newPassword); reason != "" {
		return apperrors.NewBadRequestError(reason)
	}

	token, err := s.ledger.Lookup(ctx, userID, rawToken, domain.TokenTypePasswordReset)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewBadRequestError("Invalid or expired reset link.")
		}
		return apperrors.NewAppError(500, "Internal server error", err)
	}
	if token.Used {
		return apperrors.NewBadRequestError("Reset link has already been used.")
	}
	if token.IsExpired() {
		return apperrors.NewBadRequestError("Reset link has expired. Please request a new one.")
	}

	if err := s.users.SetPassword(ctx, userID, newPassword); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found.")
		}
		return apperrors.NewAppError(500, "Internal server error", err)
	}

	if err := s.ledger.Consume(ctx, token); err != nil {
		return apperrors.NewAppError(500, "Internal server error", err)
	}
	return nil
}

// ChangePassword verifies the current password before storing the new one.
func (s *authService) ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found.")
		}
		return apperrors.NewAppError(500, "Internal server error", err)
	}

	if !s.users.VerifyPassword(user, currentPassword) {
		return apperrors.NewUnauthorizedError("Current password is incorrect.")
	}
	if reason := utils.ValidatePassword(newPassword); reason != "" {
		return apperrors.NewBadRequestError(reason)
	}
	if s.users.VerifyPassword(user, newPassword) {
		return apperrors.NewBadRequestError("New password must be different from the current password.")
	}

	if err := s.users.SetPassword(ctx, userID, newPassword); err != nil {
		return apperrors.NewAppError(500, "Internal server error", err)
	}
	return nil
}

func (s *authService) UpdateUsername(ctx context.Context, userID string, username string) (*domain.User, error) {
	if reason := utils.ValidateUsername(username); reason != "" {
		return nil, apperrors.NewBadRequestError(reason)
	}

	user, err := s.users.UpdateUsername(ctx, userID, username)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateUsername):
			return nil, apperrors.NewConflictError("Username already taken")
		case errors.Is(err, apperrors.ErrNotFound):
			return nil, apperrors.NewNotFoundError("User not found.")
		}
		return nil, apperrors.NewAppError(500, "Internal server error", err)
	}
	return user, nil
}

func (s *authService) UpdateName(ctx context.Context, userID string, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > utils.MaxNameLength {
		return nil, apperrors.NewBadRequestError("Name must be between 1 and 100 characters.")
	}

	user, err := s.users.UpdateName(ctx, userID, name)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found.")
		}
		return nil, apperrors.NewAppError(500, "Internal server error", err)
	}
	return user, nil
}

func (s *authService) UpdatePhone(ctx context.Context, userID string, phone string) (*domain.User, error) {
	phone = strings.TrimSpace(phone)
	if reason := utils.ValidatePhone(phone); reason != "" {
		return nil, apperrors.NewBadRequestError(reason)
	}

	user, err := s.users.UpdatePhone(ctx, userID, phone)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("User not found.")
		}
		return nil, apperrors.NewAppError(500, "Internal server error", err)
	}
	return user, nil
}

// DeleteAccount verifies the current password, then removes the user's ledger
// entries and the user record.
func (s *authService) DeleteAccount(ctx context.Context, userID string, currentPassword string) error {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("User not found.")
		}
		return apperrors.NewAppError(500, "Internal server error", err)
	}

	if !s.users.VerifyPassword(user, currentPassword) {
		return apperrors.NewUnauthorizedError("Password is incorrect.")
	}

	if err := s.users.DeleteUser(ctx, userID); err != nil {
		return apperrors.NewAppError(500, "Failed to delete account", err)
	}
	return nil
}

// LoginWithGoogle validates the ID token against the configured audience and
// finds, links or creates the matching account.
func (s *authService) LoginWithGoogle(ctx context.Context, idTokenString string) (*domain.User, string, time.Time, error) {
	payload, err := s.google.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewBadRequestError("Invalid Google ID token.")
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, "", time.Time{}, apperrors.NewBadRequestError("Essential user information missing from Google token.")
	}
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	phone, _ := payload.Claims["phone_number"].(string)

	user, err := s.users.CreateOAuthUser(ctx, name, email, payload.Subject, phone)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewAppError(500, "Failed to process user authentication", err)
	}

	token, expiry, err := s.sessions.GenerateSessionToken(ctx, user)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewAppError(500, "Failed to generate session token", err)
	}
	return user, token, expiry, nil
}

func (s *authService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	_, err := s.users.GetUserByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		return true, nil
	}
	return false, apperrors.NewAppError(500, "Internal server error", err)
}

// findByIdentifier resolves a login identifier to a user: values containing
// '@' are treated as emails, everything else as usernames.
func (s *authService) findByIdentifier(ctx context.Context, identifier string) (*domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, apperrors.ErrNotFound
	}
	if strings.Contains(identifier, "@") {
		return s.users.GetUserByEmail(ctx, identifier)
	}
	return s.users.GetUserByUsername(ctx, identifier)
}
