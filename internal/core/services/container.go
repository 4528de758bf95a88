package services

import (
	portsrepo "github.com/raghavposhaak/poshaak_backend/internal/core/ports/repositories"
	portssvc "github.com/raghavposhaak/poshaak_backend/internal/core/ports/services"
	"github.com/raghavposhaak/poshaak_backend/internal/platform/config"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies. The mailer is injected so tests and local runs can swap the
// SMTP transport for a fake.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.MailerSvc) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.TokenLedger = NewTokenLedgerService(repos.TokenRepo)
	container.Session = NewSessionService(cfg, container.User)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Mailer = mailer

	container.Auth = NewAuthService(
		cfg,
		container.User,
		container.TokenLedger,
		container.Session,
		container.GoogleOAuth,
		mailer,
	)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.UserSvcFacade        = (*userService)(nil)
	_ portssvc.TokenLedgerSvcFacade = (*tokenLedgerService)(nil)
	_ portssvc.SessionSvcFacade     = (*sessionService)(nil)
	_ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
)
