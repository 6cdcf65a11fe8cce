package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/sandeepkv93/promo-catalog-service/internal/config"
	"github.com/sandeepkv93/promo-catalog-service/internal/health"
	"github.com/sandeepkv93/promo-catalog-service/internal/observability"
)

const (
	defaultShutdownTimeout              = 20 * time.Second
	defaultShutdownHTTPDrainTimeout     = 10 * time.Second
	defaultShutdownObservabilityTimeout = 8 * time.Second
)

type App struct {
	Config        *config.Config
	Logger        *slog.Logger
	Server        *http.Server
	Observability *observability.Runtime
	DB            *gorm.DB
	Redis         redis.UniversalClient
	Readiness     *health.ProbeRunner
}

func New(
	cfg *config.Config,
	logger *slog.Logger,
	server *http.Server,
	runtime *observability.Runtime,
	db *gorm.DB,
	redisClient redis.UniversalClient,
	readiness *health.ProbeRunner,
) *App {
	return &App{
		Config:        cfg,
		Logger:        logger,
		Server:        server,
		Observability: runtime,
		DB:            db,
		Redis:         redisClient,
		Readiness:     readiness,
	}
}

// Run serves HTTP until ctx is cancelled or the listener fails, then shuts
// everything down.
func (a *App) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Logger.Info("server starting", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutdown started")
		return a.Shutdown(context.Background())
	})
	return g.Wait()
}

// Shutdown drains HTTP, flushes telemetry, then closes Redis and the
// database pool. Every step runs even if an earlier one failed.
func (a *App) Shutdown(ctx context.Context) error {
	totalCtx, totalCancel := context.WithTimeout(ctx, a.timeout(func(c *config.Config) time.Duration { return c.ShutdownTimeout }, defaultShutdownTimeout))
	defer totalCancel()

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(totalCtx, a.timeout(func(c *config.Config) time.Duration { return c.ShutdownHTTPDrainTimeout }, defaultShutdownHTTPDrainTimeout))
	if err := a.Server.Shutdown(httpCtx); err != nil {
		a.Logger.Error("failed to shutdown http server", "error", err)
		errs = append(errs, fmt.Errorf("http shutdown: %w", err))
	}
	httpCancel()

	if a.Observability != nil {
		obsCtx, obsCancel := context.WithTimeout(totalCtx, a.timeout(func(c *config.Config) time.Duration { return c.ShutdownObservabilityTimeout }, defaultShutdownObservabilityTimeout))
		if err := a.Observability.Shutdown(obsCtx); err != nil {
			a.Logger.Error("failed to shutdown observability", "error", err)
			errs = append(errs, err)
		}
		obsCancel()
	}

	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			a.Logger.Error("failed to close redis client", "error", err)
			errs = append(errs, fmt.Errorf("redis close: %w", err))
		}
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				a.Logger.Error("failed to close database connection", "error", err)
				errs = append(errs, fmt.Errorf("database close: %w", err))
			}
		}
	}
	if len(errs) == 0 {
		a.Logger.Info("shutdown complete")
	}
	return errors.Join(errs...)
}

func (a *App) timeout(pick func(*config.Config) time.Duration, def time.Duration) time.Duration {
	if a.Config == nil {
		return def
	}
	if d := pick(a.Config); d > 0 {
		return d
	}
	return def
}
