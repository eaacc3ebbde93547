package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/badgeforge/issuer-api/internal/api/handler"
	"github.com/badgeforge/issuer-api/internal/api/middleware"
	"github.com/badgeforge/issuer-api/internal/core/domain"
	"github.com/badgeforge/issuer-api/internal/core/ports"
	"github.com/badgeforge/issuer-api/internal/core/service"
	mongodb "github.com/badgeforge/issuer-api/internal/infrastructure/db/mongo"
)

// RouterDeps carries the infrastructure the router wires into services.
// Image storage, the badge class cache, and the event dispatcher are built by
// the caller because they own lifecycle or filesystem state.
type RouterDeps struct {
	DB         *mongo.Database
	Redis      *redis.Client
	Images     ports.ImageStore
	Cache      service.BadgeClassCache
	Dispatcher service.EventEnqueuer
	JWTSecret  string
	PublicURL  string
	Logger     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("badgeforge"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Dependencies ---
	issuerRepo := mongodb.NewIssuerRepository(deps.DB)
	badgeClassRepo := mongodb.NewBadgeClassRepository(deps.DB)
	assertionRepo := mongodb.NewAssertionRepository(deps.DB)
	authRepo := mongodb.NewAuthRepository(deps.DB)

	issuerService := service.NewIssuerService(issuerRepo, deps.Images, deps.Logger)
	badgeClassService := service.NewBadgeClassService(badgeClassRepo, issuerRepo, deps.Images, deps.Cache, deps.Logger)
	assertionService := service.NewAssertionService(assertionRepo, badgeClassRepo, deps.Cache, deps.Dispatcher, deps.Logger)
	authService := service.NewAuthService(authRepo, deps.JWTSecret, 24*time.Hour)

	issuerHandler := handler.NewIssuerHandler(issuerService, deps.PublicURL)
	badgeClassHandler := handler.NewBadgeClassHandler(badgeClassService, deps.PublicURL)
	assertionHandler := handler.NewAssertionHandler(assertionService, deps.PublicURL)
	authHandler := handler.NewAuthHandler(authService)

	authMiddleware := middleware.Auth(deps.JWTSecret)
	rbac := middleware.RBAC(domain.RoleAdmin, domain.RoleUser)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Badge API ---
	v2 := e.Group("/v2", authMiddleware, rbac)

	v2.POST("/issuers", issuerHandler.Create)
	v2.GET("/issuers", issuerHandler.List)
	v2.GET("/issuers/:entityId", issuerHandler.Get)
	v2.PUT("/issuers/:entityId", issuerHandler.Update)
	v2.GET("/issuers/:entityId/badgeclasses", badgeClassHandler.List)
	v2.POST("/issuers/:entityId/badgeclasses", badgeClassHandler.Create)

	v2.POST("/badgeclasses", badgeClassHandler.Create)
	v2.GET("/badgeclasses", badgeClassHandler.List)
	v2.GET("/badgeclasses/:entityId", badgeClassHandler.Get)
	v2.PUT("/badgeclasses/:entityId", badgeClassHandler.Update)
	v2.GET("/badgeclasses/:entityId/assertions", assertionHandler.List)
	v2.POST("/badgeclasses/:entityId/assertions", assertionHandler.Issue)

	v2.POST("/assertions", assertionHandler.Issue)
	v2.GET("/assertions", assertionHandler.List)
	v2.GET("/assertions/:entityId", assertionHandler.Get)
	v2.PUT("/assertions/:entityId", assertionHandler.Update)
	v2.DELETE("/assertions/:entityId", assertionHandler.Revoke)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
