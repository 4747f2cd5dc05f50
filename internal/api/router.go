package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/drosado/accounts-api/internal/api/handler"
	"github.com/drosado/accounts-api/internal/api/middleware"
	"github.com/drosado/accounts-api/internal/core/service"
	"github.com/drosado/accounts-api/internal/infrastructure/breach"
	"github.com/drosado/accounts-api/internal/infrastructure/config"
	"github.com/drosado/accounts-api/internal/infrastructure/db/postgres"
	"github.com/drosado/accounts-api/internal/infrastructure/db/redis"
	"github.com/drosado/accounts-api/internal/infrastructure/security"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("accounts"))

	// --- Dependencies ---
	secure := cfg.IsProduction()

	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	sessionService := service.NewSessionService(sessionRepo)

	rangeCache := redis.NewRangeCache(rdb, cfg.Breach.CacheTTL)
	strength := breach.NewClient(cfg.Breach.BaseURL, cfg.Breach.Timeout, rangeCache, log)

	authService := service.NewAuthService(
		userRepo,
		sessionService,
		security.NewArgon2Hasher(security.Argon2Params{}),
		strength,
		service.BreachPolicy{Enforce: cfg.Breach.Enforce, FailOpen: cfg.Breach.FailOpen},
		log,
	)
	authHandler := handler.NewAuthHandler(authService, secure)

	authorized := middleware.Authorized(sessionService, secure)
	guest := middleware.Guest(sessionService)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register, guest)
	auth.POST("/login", authHandler.Login, guest)
	auth.GET("/me", authHandler.Me, authorized)
	auth.POST("/logout", authHandler.Logout, authorized)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
