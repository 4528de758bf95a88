package services

import (
	"context"
	"errors"
	"time"

	"github.com/raghavposhaak/poshaak_backend/internal/apperrors"
	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/platform/config"
	"github.com/raghavposhaak/poshaak_backend/internal/utils"
)

// sessionService mints and validates the stateless signed session credential.
// There is no refresh or rotation: a credential is valid until its fixed
// expiry or until the client drops the cookie.
type sessionService struct {
	cfg         *config.Config
	userService portssvc.UserSvcFacade
}

// NewSessionService creates a new instance of sessionService.
func NewSessionService(cfg *config.Config, userService portssvc.UserSvcFacade) portssvc.SessionSvcFacade {
	return &sessionService{
		cfg:         cfg,
		userService: userService,
	}
}

// GenerateSessionToken creates a new signed session token for the given user.
func (s *sessionService) GenerateSessionToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.SessionExpiryDuration)

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.SessionExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiryTime, nil
}

// ValidateSessionToken verifies the signature and expiry, then re-fetches the
// user from the store. A credential whose user is gone is unauthenticated,
// not a server error.
func (s *sessionService) ValidateSessionToken(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	userID := claims.Subject
	if userID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}
