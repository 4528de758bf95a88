package handlers_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
)

// --- Mock AuthSvcFacade ---
type MockAuthService struct {
	mock.Mock
	SignupFn              func(ctx context.Context, req dto.SignupRequest) (*domain.User, error)
	VerifyEmailFn         func(ctx context.Context, userID string, rawToken string) error
	ResendVerificationFn  func(ctx context.Context, email string) error
	LoginFn               func(ctx context.Context, identifier string, password string) (*domain.User, string, time.Time, error)
	ForgotPasswordFn      func(ctx context.Context, identifier string) error
	ResetPasswordFn       func(ctx context.Context, userID string, rawToken string, newPassword string) error
	ChangePasswordFn      func(ctx context.Context, userID string, currentPassword string, newPassword string) error
	UpdateUsernameFn      func(ctx context.Context, userID string, username string) (*domain.User, error)
	UpdateNameFn          func(ctx context.Context, userID string, name string) (*domain.User, error)
	UpdatePhoneFn         func(ctx context.Context, userID string, phone string) (*domain.User, error)
	DeleteAccountFn       func(ctx context.Context, userID string, currentPassword string) error
	LoginWithGoogleFn     func(ctx context.Context, idTokenString string) (*domain.User, string, time.Time, error)
	IsUsernameAvailableFn func(ctx context.Context, username string) (bool, error)
}

func (m *MockAuthService) Signup(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	if m.SignupFn != nil {
		return m.SignupFn(ctx, req)
	}
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) VerifyEmail(ctx context.Context, userID string, rawToken string) error {
	if m.VerifyEmailFn != nil {
		return m.VerifyEmailFn(ctx, userID, rawToken)
	}
	args := m.Called(ctx, userID, rawToken)
	return args.Error(0)
}

func (m *MockAuthService) ResendVerification(ctx context.Context, email string) error {
	if m.ResendVerificationFn != nil {
		return m.ResendVerificationFn(ctx, email)
	}
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, identifier string, password string) (*domain.User, string, time.Time, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, identifier, password)
	}
	args := m.Called(ctx, identifier, password)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Get(2).(time.Time), args.Error(3)
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, identifier string) error {
	if m.ForgotPasswordFn != nil {
		return m.ForgotPasswordFn(ctx, identifier)
	}
	args := m.Called(ctx, identifier)
	return args.Error(0)
}

func (m *MockAuthService) ResetPassword(ctx context.Context, userID string, rawToken string, newPassword string) error {
	if m.ResetPasswordFn != nil {
		return m.ResetPasswordFn(ctx, userID, rawToken, newPassword)
	}
	args := m.Called(ctx, userID, rawToken, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, userID string, currentPassword string, newPassword string) error {
	if m.ChangePasswordFn != nil {
		return m.ChangePasswordFn(ctx, userID, currentPassword, newPassword)
	}
	args := m.Called(ctx, userID, currentPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) UpdateUsername(ctx context.Context, userID string, username string) (*domain.User, error) {
	if m.UpdateUsernameFn != nil {
		return m.UpdateUsernameFn(ctx, userID, username)
	}
	args := m.Called(ctx, userID, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) UpdateName(ctx context.Context, userID string, name string) (*domain.User, error) {
	if m.UpdateNameFn != nil {
		return m.UpdateNameFn(ctx, userID, name)
	}
	args := m.Called(ctx, userID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) UpdatePhone(ctx context.Context, userID string, phone string) (*domain.User, error) {
	if m.UpdatePhoneFn != nil {
		return m.UpdatePhoneFn(ctx, userID, phone)
	}
	args := m.Called(ctx, userID, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) DeleteAccount(ctx context.Context, userID string, currentPassword string) error {
	if m.DeleteAccountFn != nil {
		return m.DeleteAccountFn(ctx, userID, currentPassword)
	}
	args := m.Called(ctx, userID, currentPassword)
	return args.Error(0)
}

func (m *MockAuthService) LoginWithGoogle(ctx context.Context, idTokenString string) (*domain.User, string, time.Time, error) {
	if m.LoginWithGoogleFn != nil {
		return m.LoginWithGoogleFn(ctx, idTokenString)
	}
	args := m.Called(ctx, idTokenString)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.String(1), args.Get(2).(time.Time), args.Error(3)
}

func (m *MockAuthService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	if m.IsUsernameAvailableFn != nil {
		return m.IsUsernameAvailableFn(ctx, username)
	}
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Mock SessionSvcFacade ---
type MockSessionService struct {
	mock.Mock
	GenerateSessionTokenFn func(ctx context.Context, user *domain.User) (string, time.Time, error)
	ValidateSessionTokenFn func(ctx context.Context, tokenString string) (*domain.User, error)
}

func (m *MockSessionService) GenerateSessionToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	if m.GenerateSessionTokenFn != nil {
		return m.GenerateSessionTokenFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockSessionService) ValidateSessionToken(ctx context.Context, tokenString string) (*domain.User, error) {
	if m.ValidateSessionTokenFn != nil {
		return m.ValidateSessionTokenFn(ctx, tokenString)
	}
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock GoogleOAuthSvcFacade ---
type MockGoogleOAuthService struct {
	mock.Mock
	ValidateGoogleIDTokenFn func(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
	ExchangeCodeForTokenFn  func(ctx context.Context, code string) (*oauth2.Token, error)
}

func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if m.ValidateGoogleIDTokenFn != nil {
		return m.ValidateGoogleIDTokenFn(ctx, idTokenString)
	}
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if m.ExchangeCodeForTokenFn != nil {
		return m.ExchangeCodeForTokenFn(ctx, code)
	}
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)
