package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"ride-plan-service/internal/adapters/cache"
	"ride-plan-service/internal/adapters/repositories"
	"ride-plan-service/internal/api"
	"ride-plan-service/internal/config"
	"ride-plan-service/internal/platform/db"
	"ride-plan-service/internal/platform/logging"
	"ride-plan-service/internal/ports"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (SQL store, Redis cache) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg := config.MustLoad()

	log, err := logging.New(cfg.Env, cfg.Log.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if envErr != nil {
		log.Info("no .env file found (using environment variables)")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dialect, err := cfg.DB.Dialect()
	if err != nil {
		return err
	}

	conn, err := db.Open(dialect, cfg.DB.DSN())
	if err != nil {
		return err
	}
	defer conn.Close()

	// Initialize schema and seed the default park on first start.
	seeded, err := repositories.InitAndSeed(ctx, conn, dialect, cfg.DB.SeedPath)
	if err != nil {
		return err
	}
	if seeded > 0 {
		log.Info("seeded ride catalog", zap.Int("rides", seeded))
	}

	repo := repositories.NewSQLRideRepository(conn, dialect)

	var store ports.RideStore = repo
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, catalog cache will fall back to the database",
				zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		catalogCache := cache.NewBreakerCatalogCache(
			cache.NewRedisCatalogCache(client, ""),
			cache.DefaultBreakerSettings(),
			log,
		)
		store = cache.NewCachedRideStore(repo, catalogCache, cfg.Redis.CatalogTTL, log)
	}

	router := api.NewRouter(api.RouterConfig{
		Store:       store,
		DB:          repo,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         log,
		RateLimit:   cfg.HTTP.RateLimit,
		RateWindow:  cfg.HTTP.RateWindow,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr), zap.String("driver", string(dialect)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
