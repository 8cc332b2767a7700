package router

import (
	"github.com/oksasatya/campus-exchange/internal/application"
	"github.com/oksasatya/campus-exchange/internal/container"
	"github.com/oksasatya/campus-exchange/internal/domain/repository"
	pginfra "github.com/oksasatya/campus-exchange/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/campus-exchange/internal/interface/http"
	"github.com/oksasatya/campus-exchange/internal/router/modules"
)

type UserModuleDeps struct {
	Repo        repository.UserRepository
	Service     *application.Service
	UserHandler *handlers.UserHandler
	AuthHandler *handlers.AuthHandler
}

func buildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := container.GetUserRepo()
	if repo == nil {
		repo = pginfra.NewUserRepository(container.GetPGPool())
	}

	opts := []application.Option{
		application.WithRedis(container.GetRedis()),
		application.WithSearch(container.GetES(), cfg.ESUsersIndex),
		application.WithNotifier(container.GetPublisher(), application.NotifyConfig{
			Enabled:          cfg.MailSendEnabled,
			CompanyName:      cfg.CompanyName,
			SupportURL:       cfg.SupportURL,
			AdminReviewEmail: cfg.AdminReviewEmail,
		}),
	}
	if store := container.GetObjectStore(); store != nil {
		opts = append(opts, application.WithStore(store))
	}
	service := application.NewService(repo, container.GetJWT(), logger, opts...)

	return UserModuleDeps{
		Repo:        repo,
		Service:     service,
		UserHandler: handlers.NewUserHandler(service, logger),
		AuthHandler: handlers.NewAuthHandler(service, logger, cfg.CookieDomain, cfg.CookieSecure),
	}
}

// InitModules wires every feature module into the registry. Call once at startup.
func InitModules(r *Registry) {
	deps := buildUserDeps()
	limits := modules.NewLimits(container.GetRedis(), container.GetConfig().RateLimitEnabled)

	r.Add(modules.NewAuthModule(deps.AuthHandler, deps.Service, limits))
	r.Add(modules.NewUserModule(deps.UserHandler, deps.Service, limits))
	if container.GetConfig().DebugMetricsEnabled {
		r.AddUnversioned(modules.NewDebugModule(limits))
	}
}
