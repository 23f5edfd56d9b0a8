package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/blogforge/blog-api/internal/api"
	"github.com/blogforge/blog-api/internal/core/service"
	"github.com/blogforge/blog-api/internal/infrastructure/db/postgres"
	"github.com/blogforge/blog-api/internal/infrastructure/db/redis"
	"github.com/blogforge/blog-api/internal/pkg/config"
	"github.com/blogforge/blog-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, postgres.Config{URL: cfg.DatabaseURL})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	if cfg.SeedUserEmail != "" && cfg.SeedUserPassword != "" {
		seeder := service.NewAuthService(
			postgres.NewUserRepository(pool), nil,
			cfg.JWTSecret, cfg.TokenTTL, cfg.TokenOrg, log,
		)
		if err := seeder.EnsureUser(ctx, cfg.SeedUserEmail, cfg.SeedUserPassword); err != nil {
			log.Fatal().Err(err).Msg("failed to seed user")
		}
	}

	e, err := api.NewRouter(pool, rdb, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		addr := cfg.Host + ":" + cfg.Port
		log.Info().Str("addr", addr).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
