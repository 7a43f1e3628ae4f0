package main

import (
	"context"
	"log/slog"
	"os"

	"aiclub/config"
	"aiclub/internal/delivery"
	"aiclub/internal/delivery/api"
	"aiclub/internal/delivery/api/middleware"
	"aiclub/internal/delivery/api/router/handler"
	"aiclub/internal/domain/service"
	"aiclub/internal/infra/auth"
	authfirebase "aiclub/internal/infra/auth/firebase"
	"aiclub/internal/infra/auth/memory"
	"aiclub/internal/infra/changefeed"
	"aiclub/internal/infra/firebaseapp"
	"aiclub/internal/infra/knowledge"
	logs "aiclub/internal/infra/log"
	"aiclub/internal/infra/metrics"
	"aiclub/internal/infra/persistence"
	"aiclub/internal/infra/pubsub"
	"aiclub/internal/infra/qrcode"
	"aiclub/internal/infra/sanitizer"
	"aiclub/internal/usecase/impl"

	firebase "firebase.google.com/go/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			impl.BootstrapAdmins,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firebaseapp.New,
		persistence.New,
		fx.Annotate(
			metrics.NewRegistry,
			fx.As(new(prometheus.Registerer), new(prometheus.Gatherer)),
		),
		fx.Annotate(
			metrics.NewCollector,
			fx.As(new(service.Metrics)),
		),
		fx.Annotate(
			changefeed.NewHub,
			fx.As(new(service.ChangeFeed)),
		),
		knowledge.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newIdentityProvider,
			pubsub.NewEventPublisher,
			qrcode.NewQRCodeService,
			sanitizer.NewHTMLSanitizer,
		),
	)
}

type identityParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Hasher service.PasswordHasher
	App    *firebase.App `optional:"true"`
}

// newIdentityProvider selects the sign-in provider named by identity.provider
func newIdentityProvider(ctx context.Context, params identityParams) (service.IdentityProvider, error) {
	if params.Config.Identity.Provider == config.IdentityProviderFirebase {
		return authfirebase.NewIdentityProvider(ctx, authfirebase.Params{
			Config: params.Config,
			Logger: params.Logger,
			App:    params.App,
		})
	}

	params.Logger.Warn("Using in-memory identity provider with configured development accounts")

	return memory.NewIdentityProvider(memory.Params{
		Config: params.Config,
		Hasher: params.Hasher,
		Logger: params.Logger,
	})
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewContentService,
			impl.NewLiveService,
			impl.NewTeamService,
			impl.NewFAQService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewContentHandler,
			handler.NewTeamHandler,
			handler.NewChatHandler,
			handler.NewAdminHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
