// Playground API — user accounts and product catalog over HTTP.
//
// @title           Playground API
// @version         0.1.0
// @description     CRUD backend for user accounts and products with JWT authentication.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/playgroundhq/playground-api/internal/api"
	"github.com/playgroundhq/playground-api/internal/core/service"
	"github.com/playgroundhq/playground-api/internal/infrastructure/config"
	"github.com/playgroundhq/playground-api/internal/infrastructure/db/postgres"
	"github.com/playgroundhq/playground-api/internal/infrastructure/db/redis"
	"github.com/playgroundhq/playground-api/internal/infrastructure/queue"
	"github.com/playgroundhq/playground-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- PostgreSQL ---
	pool, err := postgres.Connect(ctx, postgres.Config{
		URL:      cfg.Postgres.URL,
		MaxConns: cfg.Postgres.MaxConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("schema bootstrap failed")
	}

	// --- Redis ---
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Audit pipeline ---
	auditRepo := postgres.NewAuditRepository(pool)
	auditService := service.NewAuditService(auditRepo, log)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(pool, rdb, cfg, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
