package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/playgroundhq/playground-api/docs"
	"github.com/playgroundhq/playground-api/internal/api/handler"
	"github.com/playgroundhq/playground-api/internal/api/middleware"
	"github.com/playgroundhq/playground-api/internal/core/domain"
	"github.com/playgroundhq/playground-api/internal/core/hash"
	"github.com/playgroundhq/playground-api/internal/core/service"
	"github.com/playgroundhq/playground-api/internal/infrastructure/config"
	"github.com/playgroundhq/playground-api/internal/infrastructure/db/postgres"
	"github.com/playgroundhq/playground-api/internal/infrastructure/db/redis"
	"github.com/playgroundhq/playground-api/internal/infrastructure/http/handlers"
	"github.com/playgroundhq/playground-api/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The audit dispatcher is constructed by the caller so its workers share the
// process lifecycle, not a request's.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, audit *queue.Dispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("playground"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	userService := service.NewUserService(userRepo, hash.New(), log)
	productService := service.NewProductService(productRepo, log)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redis.NewLoginLimiter(rdb, cfg.Login.MaxFailures, cfg.Login.Window)

	authHandler := handler.NewAuthHandler(userService, tokenService, limiter, audit)
	userHandler := handler.NewUserHandler(userService, audit)
	productHandler := handler.NewProductHandler(productService)

	authRequired := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)
	e.POST("/v1/auth/password", authHandler.ChangePassword, authRequired)

	// --- User routes ---
	users := e.Group("/v1/users", authRequired)
	users.GET("/me", userHandler.Me)
	users.GET("", userHandler.List, adminOnly)
	users.POST("", userHandler.Create, adminOnly)
	users.GET("/:id", userHandler.Get, adminOnly)
	users.DELETE("/:id", userHandler.Delete, adminOnly)
	users.PATCH("/:id/activate", userHandler.Activate, adminOnly)
	users.PATCH("/:id/deactivate", userHandler.Deactivate, adminOnly)
	users.PATCH("/:id/suspend", userHandler.Suspend, adminOnly)

	// --- Product routes ---
	products := e.Group("/v1/products", authRequired)
	products.GET("", productHandler.List)
	products.GET("/:id", productHandler.Get)
	products.POST("", productHandler.Create, adminOnly)
	products.PUT("/:id", productHandler.Update, adminOnly)
	products.DELETE("/:id", productHandler.Delete, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
