package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/raghavposhaak/poshaak_backend/internal/apperrors"
	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
	portsrepo "github.com/raghavposhaak/poshaak_backend/internal/core/ports/repositories"
	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
	"github.com/raghavposhaak/poshaak_backend/internal/utils"
)

// usernameCollisionRetries is how many suffixed candidates are tried before
// falling back to a timestamp suffix.
const usernameCollisionRetries = 5

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the credential-store service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, utils.NormalizeEmail(email))
}

func (s *userService) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	return s.userRepo.FindUserByGoogleID(ctx, googleID)
}

// CreateUser creates an unverified user. The password is hashed here, exactly
// once; this is the only place signup touches the hash.
func (s *userService) CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     strings.TrimSpace(req.Username),
		Email:        utils.NormalizeEmail(req.Email),
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: passwordHash,
		Role:         domain.RoleUser,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateOAuthUser implements the Google login lookup chain: by subject id
// first, then by email (linking the subject id to the matched account), and
// finally a fresh verified account with a generated username.
func (s *userService) CreateOAuthUser(ctx context.Context, name, email, providerUserID, phone string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByGoogleID(ctx, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	normalized := utils.NormalizeEmail(email)
	user, err = s.userRepo.FindUserByEmail(ctx, normalized)
	if err == nil {
		// Link the provider id to the existing account. The provider has
		// already verified the address, so the account becomes verified too.
		user.GoogleID = providerUserID
		user.IsVerified = true
		if user.Phone == "" && phone != "" {
			user.Phone = phone
		}
		user.UpdatedAt = time.Now()
		if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
			return nil, err
		}
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	username, err := s.generateUsername(ctx, normalized)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	newUser := domain.User{
		UserID:     uuid.NewString(),
		Username:   username,
		Email:      normalized,
		Name:       strings.TrimSpace(name),
		Phone:      strings.TrimSpace(phone),
		GoogleID:   providerUserID,
		Role:       domain.RoleUser,
		IsVerified: true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, err
	}
	return &newUser, nil
}

// generateUsername derives a unique username from the email's local part,
// retrying a few suffixed candidates before the timestamp fallback.
func (s *userService) generateUsername(ctx context.Context, email string) (string, error) {
	base := sanitizeUsername(strings.SplitN(email, "@", 2)[0])

	candidate := base
	for attempt := 0; attempt <= usernameCollisionRetries; attempt++ {
		if attempt > 0 {
			suffix, err := utils.GenerateSecureRandomString(2)
			if err != nil {
				return "", fmt.Errorf("failed to generate username suffix: %w", err)
			}
			candidate = trimToLength(base, utils.MaxUsernameLength-len(suffix)) + suffix
		}

		_, err := s.userRepo.FindUserByUsername(ctx, candidate)
		if errors.Is(err, apperrors.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
	}

	suffix := fmt.Sprintf("%d", time.Now().UnixMilli())
	return trimToLength(base, utils.MaxUsernameLength-len(suffix)) + suffix, nil
}

func sanitizeUsername(local string) string {
	var b strings.Builder
	for _, r := range local {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if len(cleaned) < utils.MinUsernameLength {
		cleaned = "user" + cleaned
	}
	return trimToLength(cleaned, utils.MaxUsernameLength)
}

func trimToLength(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}

// SetPassword rehashes and stores a new password. Rehashing happens only
// here, only when the stored credential value actually changes.
func (s *userService) SetPassword(ctx context.Context, userID string, newPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	passwordHash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now()
	return s.userRepo.UpdateUser(ctx, *user)
}

func (s *userService) MarkVerified(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return nil
	}
	user.IsVerified = true
	user.UpdatedAt = time.Now()
	return s.userRepo.UpdateUser(ctx, *user)
}

func (s *userService) UpdateUsername(ctx context.Context, userID string, username string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Username == username {
		// Unchanged value: no-op, no rewrite.
		return user, nil
	}
	user.Username = username
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateName(ctx context.Context, userID string, name string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Name == name {
		return user, nil
	}
	user.Name = name
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdatePhone(ctx context.Context, userID string, phone string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Phone == phone {
		return user, nil
	}
	user.Phone = phone
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string) error {
	return s.userRepo.DeleteUser(ctx, userID)
}

func (s *userService) VerifyPassword(user *domain.User, password string) bool {
	return utils.CheckPasswordHash(password, user.PasswordHash)
}
