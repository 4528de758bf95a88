package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/raghavposhaak/poshaak_backend/internal/core/domain"
	"github.com/raghavposhaak/poshaak_backend/internal/dto"
)

// --- Mock UserRepository (based on userService usage) ---
type MockUserRepository struct {
	mock.Mock
	FindUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	FindUserByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	FindUserByGoogleIDFn func(ctx context.Context, googleID string) (*domain.User, error)
	SaveUserFn           func(ctx context.Context, user domain.User) error
	UpdateUserFn         func(ctx context.Context, user domain.User) error
	DeleteUserFn         func(ctx context.Context, userID string) error
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.FindUserByIDFn != nil {
		return m.FindUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindUserByUsernameFn != nil {
		return m.FindUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.FindUserByEmailFn != nil {
		return m.FindUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	if m.FindUserByGoogleIDFn != nil {
		return m.FindUserByGoogleIDFn(ctx, googleID)
	}
	args := m.Called(ctx, googleID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock TokenRepository (based on tokenLedgerService usage) ---
type MockTokenRepository struct {
	mock.Mock
	SaveTokenFn           func(ctx context.Context, token domain.Token) error
	FindTokenByHashFn     func(ctx context.Context, userID string, tokenHash string, tokenType domain.TokenType) (*domain.Token, error)
	MarkTokenUsedFn       func(ctx context.Context, tokenID string, consumedAt time.Time) (bool, error)
	HasRecentTokenFn      func(ctx context.Context, userID string, tokenType domain.TokenType, since time.Time) (bool, error)
	DeleteTokensForUserFn func(ctx context.Context, userID string) error
	DeleteExpiredTokensFn func(ctx context.Context) (int64, error)
}

func (m *MockTokenRepository) SaveToken(ctx context.Context, token domain.Token) error {
	if m.SaveTokenFn != nil {
		return m.SaveTokenFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenRepository) FindTokenByHash(ctx context.Context, userID string, tokenHash string, tokenType domain.TokenType) (*domain.Token, error) {
	if m.FindTokenByHashFn != nil {
		return m.FindTokenByHashFn(ctx, userID, tokenHash, tokenType)
	}
	args := m.Called(ctx, userID, tokenHash, tokenType)
	var token *domain.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.Token)
	}
	return token, args.Error(1)
}

func (m *MockTokenRepository) MarkTokenUsed(ctx context.Context, tokenID string, consumedAt time.Time) (bool, error) {
	if m.MarkTokenUsedFn != nil {
		return m.MarkTokenUsedFn(ctx, tokenID, consumedAt)
	}
	args := m.Called(ctx, tokenID, consumedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) HasRecentToken(ctx context.Context, userID string, tokenType domain.TokenType, since time.Time) (bool, error) {
	if m.HasRecentTokenFn != nil {
		return m.HasRecentTokenFn(ctx, userID, tokenType, since)
	}
	args := m.Called(ctx, userID, tokenType, since)
	return args.Bool(0), args.Error(1)
}

func (m *MockTokenRepository) DeleteTokensForUser(ctx context.Context, userID string) error {
	if m.DeleteTokensForUserFn != nil {
		return m.DeleteTokensForUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockTokenRepository) DeleteExpiredTokens(ctx context.Context) (int64, error) {
	if m.DeleteExpiredTokensFn != nil {
		return m.DeleteExpiredTokensFn(ctx)
	}
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock UserSvcFacade (for auth/session service tests) ---
type MockUserSvc struct {
	mock.Mock
	GetUserByIDFn       func(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	GetUserByGoogleIDFn func(ctx context.Context, googleID string) (*domain.User, error)
	CreateUserFn        func(ctx context.Context, req dto.SignupRequest) (*domain.User, error)
	CreateOAuthUserFn   func(ctx context.Context, name, email, providerUserID, phone string) (*domain.User, error)
	SetPasswordFn       func(ctx context.Context, userID string, newPassword string) error
	MarkVerifiedFn      func(ctx context.Context, userID string) error
	UpdateUsernameFn    func(ctx context.Context, userID string, username string) (*domain.User, error)
	UpdateNameFn        func(ctx context.Context, userID string, name string) (*domain.User, error)
	UpdatePhoneFn       func(ctx context.Context, userID string, phone string) (*domain.User, error)
	DeleteUserFn        func(ctx context.Context, userID string) error
	VerifyPasswordFn    func(user *domain.User, password string) bool
}

func (m *MockUserSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetUserByIDFn != nil {
		return m.GetUserByIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetUserByUsernameFn != nil {
		return m.GetUserByUsernameFn(ctx, username)
	}
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetUserByEmailFn != nil {
		return m.GetUserByEmailFn(ctx, email)
	}
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	if m.GetUserByGoogleIDFn != nil {
		return m.GetUserByGoogleIDFn(ctx, googleID)
	}
	args := m.Called(ctx, googleID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) CreateUser(ctx context.Context, req dto.SignupRequest) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, req)
	}
	args := m.Called(ctx, req)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) CreateOAuthUser(ctx context.Context, name, email, providerUserID, phone string) (*domain.User, error) {
	if m.CreateOAuthUserFn != nil {
		return m.CreateOAuthUserFn(ctx, name, email, providerUserID, phone)
	}
	args := m.Called(ctx, name, email, providerUserID, phone)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) SetPassword(ctx context.Context, userID string, newPassword string) error {
	if m.SetPasswordFn != nil {
		return m.SetPasswordFn(ctx, userID, newPassword)
	}
	args := m.Called(ctx, userID, newPassword)
	return args.Error(0)
}

func (m *MockUserSvc) MarkVerified(ctx context.Context, userID string) error {
	if m.MarkVerifiedFn != nil {
		return m.MarkVerifiedFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserSvc) UpdateUsername(ctx context.Context, userID string, username string) (*domain.User, error) {
	if m.UpdateUsernameFn != nil {
		return m.UpdateUsernameFn(ctx, userID, username)
	}
	args := m.Called(ctx, userID, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) UpdateName(ctx context.Context, userID string, name string) (*domain.User, error) {
	if m.UpdateNameFn != nil {
		return m.UpdateNameFn(ctx, userID, name)
	}
	args := m.Called(ctx, userID, name)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) UpdatePhone(ctx context.Context, userID string, phone string) (*domain.User, error) {
	if m.UpdatePhoneFn != nil {
		return m.UpdatePhoneFn(ctx, userID, phone)
	}
	args := m.Called(ctx, userID, phone)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserSvc) DeleteUser(ctx context.Context, userID string) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserSvc) VerifyPassword(user *domain.User, password string) bool {
	if m.VerifyPasswordFn != nil {
		return m.VerifyPasswordFn(user, password)
	}
	args := m.Called(user, password)
	return args.Bool(0)
}

// --- Mock TokenLedgerSvcFacade ---
type MockTokenLedgerSvc struct {
	mock.Mock
	IssueFn      func(ctx context.Context, userID string, tokenType domain.TokenType, ttl time.Duration) (string, error)
	LookupFn     func(ctx context.Context, userID string, rawToken string, tokenType domain.TokenType) (*domain.Token, error)
	ConsumeFn    func(ctx context.Context, token *domain.Token) error
	InCooldownFn func(ctx context.Context, userID string, tokenType domain.TokenType, window time.Duration) (bool, error)
}

func (m *MockTokenLedgerSvc) Issue(ctx context.Context, userID string, tokenType domain.TokenType, ttl time.Duration) (string, error) {
	if m.IssueFn != nil {
		return m.IssueFn(ctx, userID, tokenType, ttl)
	}
	args := m.Called(ctx, userID, tokenType, ttl)
	return args.String(0), args.Error(1)
}

func (m *MockTokenLedgerSvc) Lookup(ctx context.Context, userID string, rawToken string, tokenType domain.TokenType) (*domain.Token, error) {
	if m.LookupFn != nil {
		return m.LookupFn(ctx, userID, rawToken, tokenType)
	}
	args := m.Called(ctx, userID, rawToken, tokenType)
	var token *domain.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*domain.Token)
	}
	return token, args.Error(1)
}

func (m *MockTokenLedgerSvc) Consume(ctx context.Context, token *domain.Token) error {
	if m.ConsumeFn != nil {
		return m.ConsumeFn(ctx, token)
	}
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockTokenLedgerSvc) InCooldown(ctx context.Context, userID string, tokenType domain.TokenType, window time.Duration) (bool, error) {
	if m.InCooldownFn != nil {
		return m.InCooldownFn(ctx, userID, tokenType, window)
	}
	args := m.Called(ctx, userID, tokenType, window)
	return args.Bool(0), args.Error(1)
}

// --- Mock SessionSvcFacade ---
type MockSessionSvc struct {
	mock.Mock
	GenerateSessionTokenFn func(ctx context.Context, user *domain.User) (string, time.Time, error)
	ValidateSessionTokenFn func(ctx context.Context, tokenString string) (*domain.User, error)
}

func (m *MockSessionSvc) GenerateSessionToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	if m.GenerateSessionTokenFn != nil {
		return m.GenerateSessionTokenFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockSessionSvc) ValidateSessionToken(ctx context.Context, tokenString string) (*domain.User, error) {
	if m.ValidateSessionTokenFn != nil {
		return m.ValidateSessionTokenFn(ctx, tokenString)
	}
	args := m.Called(ctx, tokenString)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock GoogleOAuthSvcFacade ---
type MockGoogleOAuthSvc struct {
	mock.Mock
	ValidateGoogleIDTokenFn func(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
	ExchangeCodeForTokenFn  func(ctx context.Context, code string) (*oauth2.Token, error)
}

func (m *MockGoogleOAuthSvc) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	if m.ValidateGoogleIDTokenFn != nil {
		return m.ValidateGoogleIDTokenFn(ctx, idTokenString)
	}
	args := m.Called(ctx, idTokenString)
	var payload *idtoken.Payload
	if args.Get(0) != nil {
		payload = args.Get(0).(*idtoken.Payload)
	}
	return payload, args.Error(1)
}

func (m *MockGoogleOAuthSvc) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if m.ExchangeCodeForTokenFn != nil {
		return m.ExchangeCodeForTokenFn(ctx, code)
	}
	args := m.Called(ctx, code)
	var token *oauth2.Token
	if args.Get(0) != nil {
		token = args.Get(0).(*oauth2.Token)
	}
	return token, args.Error(1)
}

func (m *MockGoogleOAuthSvc) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGoogleOAuthSvc) GetGoogleLoginURL(ctx context.Context, state string) string {
	args := m.Called(ctx, state)
	return args.String(0)
}

// --- Mock MailerSvc ---
type MockMailer struct {
	mock.Mock
	SendVerificationEmailFn  func(ctx context.Context, toEmail string, userID string, rawToken string) error
	SendPasswordResetEmailFn func(ctx context.Context, toEmail string, userID string, rawToken string) error
}

func (m *MockMailer) SendVerificationEmail(ctx context.Context, toEmail string, userID string, rawToken string) error {
	if m.SendVerificationEmailFn != nil {
		return m.SendVerificationEmailFn(ctx, toEmail, userID, rawToken)
	}
	args := m.Called(ctx, toEmail, userID, rawToken)
	return args.Error(0)
}

func (m *MockMailer) SendPasswordResetEmail(ctx context.Context, toEmail string, userID string, rawToken string) error {
	if m.SendPasswordResetEmailFn != nil {
		return m.SendPasswordResetEmailFn(ctx, toEmail, userID, rawToken)
	}
	args := m.Called(ctx, toEmail, userID, rawToken)
	return args.Error(0)
}
