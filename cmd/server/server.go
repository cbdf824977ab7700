// @title           Avatar Cockpit API
// @version         1.0
// @description     Issues LiveKit room tokens and proxies Cartesia avatar renders
// @description     for the browser cockpit.

// @contact.name   Jan Team
// @contact.url    https://github.com/janhq/avatar-cockpit

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token from Keycloak

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/janhq/avatar-cockpit/internal/config"
	"github.com/janhq/avatar-cockpit/internal/domain"
	"github.com/janhq/avatar-cockpit/internal/infrastructure"
	"github.com/janhq/avatar-cockpit/internal/infrastructure/logger"
	"github.com/janhq/avatar-cockpit/internal/infrastructure/observability"
	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver"
	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/handlers"
	"github.com/janhq/avatar-cockpit/internal/interfaces/httpserver/routes"
)

// Application holds the main application components.
type Application struct {
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

// NewApplication creates a new application instance.
func NewApplication(httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		httpServer: httpServer,
		log:        log,
	}
}

// Start runs the application until ctx is cancelled.
func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Setup observability
	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown telemetry")
		}
	}()

	authValidator, err := infrastructure.ProvideAuthValidator(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize auth validator")
	}

	grantSettings := domain.ProvideGrantSettings(cfg)
	avatarSettings := domain.ProvideAvatarSettings(cfg)

	// LiveKit
	issuer := domain.ProvideIssuer(infrastructure.ProvideTokenSigner(), grantSettings, log)
	grantService := domain.ProvideGrantService(issuer, grantSettings, log)
	roomClient := infrastructure.ProvideRoomClient(grantSettings, log)

	// Cartesia
	avatarService := domain.ProvideAvatarService(avatarSettings, infrastructure.ProvideAvatarFetcher(), log)

	handlerProvider := handlers.NewProvider(grantService, avatarService, roomClient)
	routeProvider := routes.NewProvider(handlerProvider, authValidator)
	httpServer := httpserver.New(cfg, log, routeProvider)

	app := NewApplication(httpServer, log)

	log.Info().
		Str("service", cfg.ServiceName).
		Int("port", cfg.HTTPPort).
		Str("environment", cfg.Environment).
		Bool("livekit_credentials", grantSettings.Credentials.APIKey != "" && grantSettings.Credentials.APISecret != "").
		Bool("avatar_configured", avatarService.PublicConfig().FaceConfigured).
		Str("static_dir", cfg.StaticDir).
		Msg("starting application")

	if err := app.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env", "../../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
