package app

import (
	"fmt"
	"strings"

	"github.com/clientdesk/clientdesk/internal/auth"
	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/clientdesk/clientdesk/internal/config"
	"github.com/clientdesk/clientdesk/internal/handlers"
	"github.com/clientdesk/clientdesk/internal/interfaces"
	"github.com/clientdesk/clientdesk/internal/storage"
)

// App holds all application components and dependencies.
type App struct {
	Config  *config.Config
	Logger  *common.Logger
	Storage interfaces.StorageManager
	Issuer  *auth.TokenIssuer

	// HTTP handlers
	PageHandler     *handlers.PageHandler
	AuthHandler     *handlers.AuthHandler
	CustomerHandler *handlers.CustomerHandler
	OrderHandler    *handlers.OrderHandler
	SegmentHandler  *handlers.SegmentHandler
	CampaignHandler *handlers.CampaignHandler
}

// New initializes the application with all dependencies.
func New(cfg *config.Config, logger *common.Logger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	env := strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.IsDevMode() {
		logger.Warn().Msg("RUNNING IN DEV MODE — do not use in production")
	} else if env != "prod" && env != "" {
		logger.Warn().
			Str("environment", cfg.Environment).
			Msg("unrecognized environment value, defaulting to prod behavior")
	}

	store, err := storage.NewStorageManager(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.Storage = store

	issuer, err := auth.NewTokenIssuer(cfg.Auth.JWTSecret)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize token issuer: %w", err)
	}
	a.Issuer = issuer

	a.initHandlers()

	logger.Info().Msg("application initialization complete")

	return a, nil
}

// initHandlers initializes all HTTP handlers.
func (a *App) initHandlers() {
	google := auth.NewGoogleProvider(
		a.Config.Auth.GoogleClientID,
		a.Config.Auth.GoogleClientSecret,
		a.Config.Auth.GoogleCallbackURL(),
	)
	resolver := auth.NewResolver(a.Storage.Users(), a.Logger)

	bcryptCost := a.Config.Auth.BcryptCost
	if bcryptCost <= 0 {
		bcryptCost = auth.DefaultBcryptCost
	}

	a.PageHandler = handlers.NewPageHandler(a.Logger, a.Issuer)
	a.AuthHandler = handlers.NewAuthHandler(
		a.Logger,
		a.Storage.Users(),
		resolver,
		a.Issuer,
		google,
		a.Config.Auth.FrontendURL,
		bcryptCost,
	)
	a.CustomerHandler = handlers.NewCustomerHandler(a.Logger, a.Storage.Customers())
	a.OrderHandler = handlers.NewOrderHandler(a.Logger, a.Storage.Orders(), a.Storage.Customers())
	a.SegmentHandler = handlers.NewSegmentHandler(a.Logger, a.Storage.Segments())
	a.CampaignHandler = handlers.NewCampaignHandler(
		a.Logger,
		a.Storage.Campaigns(),
		a.Storage.CommunicationLogs(),
		a.Storage.Customers(),
	)

	a.Logger.Debug().Msg("HTTP handlers initialized")
}

// Close closes all application resources.
func (a *App) Close() error {
	if a.Storage != nil {
		return a.Storage.Close()
	}
	return nil
}
