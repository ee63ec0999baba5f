package app

import (
	"context"
	"fmt"

	"github.com/littlelemon/restaurant-backend/auth"
	"github.com/littlelemon/restaurant-backend/config"
	"github.com/littlelemon/restaurant-backend/handlers"
	"github.com/littlelemon/restaurant-backend/middleware"
	"github.com/littlelemon/restaurant-backend/repositories"
	"github.com/littlelemon/restaurant-backend/repositories/postgres"
	"go.uber.org/zap"
)

// devTokenSecret is used when no TOKEN_SECRET is configured outside
// production, so a bare checkout still runs against a local database.
const devTokenSecret = "littlelemon-dev-secret"

// Dependencies holds all application dependencies.
// This is the central wiring point for dependency injection.
type Dependencies struct {
	// Infrastructure
	Config *config.Config
	DB     *postgres.DB
	Logger *zap.Logger

	// Repositories
	MenuItems repositories.MenuItemRepository
	Bookings  repositories.BookingRepository
	Users     repositories.UserRepository

	// Auth
	AuthService    auth.Service
	AuthMiddleware *middleware.AuthMiddleware

	// Handlers
	MenuHandler    *handlers.MenuHandler
	BookingHandler *handlers.BookingHandler
	AuthHandler    *handlers.AuthHandler
	HealthHandler  *handlers.HealthHandler
}

// NewDependencies creates and wires up all application dependencies.
func NewDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	if err := deps.initDatabase(ctx, cfg); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	deps.initRepositories()
	deps.initAuth(cfg)
	deps.initHandlers()

	logger.Info("all dependencies initialized successfully")
	return deps, nil
}

// initDatabase initializes the PostgreSQL connection and schema
func (d *Dependencies) initDatabase(ctx context.Context, cfg *config.Config) error {
	db, err := postgres.NewDB(cfg.Database, d.Logger)
	if err != nil {
		return err
	}

	if err := db.InitSchema(ctx); err != nil {
		return err
	}

	d.DB = db
	return nil
}

// initRepositories initializes all repository instances
func (d *Dependencies) initRepositories() {
	d.MenuItems = postgres.NewMenuItemRepository(d.DB, d.Logger)
	d.Bookings = postgres.NewBookingRepository(d.DB, d.Logger)
	d.Users = postgres.NewUserRepository(d.DB, d.Logger)

	d.Logger.Info("repositories initialized")
}

// initAuth initializes the token service and auth middleware
func (d *Dependencies) initAuth(cfg *config.Config) {
	secret := cfg.Auth.TokenSecret
	if secret == "" {
		d.Logger.Warn("TOKEN_SECRET not set, using development secret")
		secret = devTokenSecret
	}

	tokenService := auth.NewTokenService(d.Users, secret, cfg.Auth.TokenTTL, d.Logger)
	d.AuthService = tokenService
	d.AuthMiddleware = middleware.NewAuthMiddleware(tokenService, d.Logger)
}

// initHandlers constructs the HTTP handlers
func (d *Dependencies) initHandlers() {
	d.MenuHandler = handlers.NewMenuHandler(d.MenuItems, d.Logger)
	d.BookingHandler = handlers.NewBookingHandler(d.Bookings, d.Logger)
	d.AuthHandler = handlers.NewAuthHandler(d.AuthService, d.Logger)
	d.HealthHandler = handlers.NewHealthHandler(d.DB, d.Logger)
}

// Close releases all held resources
func (d *Dependencies) Close() error {
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
