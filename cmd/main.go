package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"mesa-pacing/internal/adapter/http"
	"mesa-pacing/internal/adapter/memory"
	"mesa-pacing/internal/adapter/postgres"
	"mesa-pacing/internal/adapter/registry"
	"mesa-pacing/internal/adapter/sqlite"
	"mesa-pacing/internal/adapter/usecase"
	"mesa-pacing/internal/config"
	"mesa-pacing/internal/config/configs"
	"mesa-pacing/internal/core/pacing"
	"mesa-pacing/internal/core/port"
	"mesa-pacing/internal/db"
	"mesa-pacing/internal/random"
	"mesa-pacing/internal/telemetry"
)

// main is the entry point of the mesa-pacing service. It loads
// configuration, connects the configured storage, starts the registry
// refresher, the viewer pruner and the HTTP server, and shuts everything
// down gracefully on SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := cfg.Log.New(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err = run(ctx, cfg, logger); err != nil {
		logger.Error("service stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("service stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry, cfg.Env)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		ctxFlush, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(ctxFlush); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	var pool *pgxpool.Pool
	if cfg.NeedsPostgres() {
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err = db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return fmt.Errorf("database connection: %w", err)
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool); err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			logger.Info("demo campaigns seeded")
		}
	}

	ledger, closeLedger, err := openLedger(cfg, pool)
	if err != nil {
		return err
	}
	defer closeLedger()

	var store port.CampaignStore
	if cfg.Registry.Source == "postgres" {
		store = postgres.NewCampaignRepository(pool)
	}

	norm, err := pacing.ParseNormalization(cfg.Engine.Normalization)
	if err != nil {
		return err
	}
	rnd, err := newRandom(cfg.Engine)
	if err != nil {
		return err
	}

	reg := registry.New(logger)
	svc := usecase.NewAllocationUseCase(reg, ledger, store, rnd, usecase.Options{
		Deadline:         cfg.Engine.Deadline,
		CommitTimeout:    cfg.Engine.CommitTimeout,
		MaxCommitRetries: cfg.Engine.MaxCommitRetries,
		TieEpsilon:       cfg.Engine.TieEpsilon,
		Normalization:    norm,
	}, logger)
	refresher := registry.NewRefresher(reg, store, ledger, cfg.Registry.RefreshInterval, logger)
	pruner := usecase.NewViewerPruner(ledger, cfg.Ledger.ViewerTTL, cfg.Ledger.PruneInterval, logger)

	handler := httpadapter.NewHandler(svc, logger, cfg.HTTP.RequestTimeout)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return refresher.Run(gctx) })
	g.Go(func() error { return pruner.Run(gctx) })
	g.Go(func() error {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("ledger", cfg.Ledger.Driver),
			slog.String("registry_source", cfg.Registry.Source))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctxShutdown); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}

func openLedger(cfg config.Config, pool *pgxpool.Pool) (port.DeliveryLedger, func(), error) {
	switch cfg.Ledger.Driver {
	case configs.LedgerPostgres:
		return postgres.NewLedgerRepository(pool), func() {}, nil
	case configs.LedgerSQLite:
		l, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite ledger: %w", err)
		}
		return l, func() { _ = l.Close() }, nil
	default:
		return memory.NewLedger(), func() {}, nil
	}
}

func newRandom(cfg configs.Engine) (random.Source, error) {
	if cfg.Seed != 0 {
		return random.New(cfg.Seed), nil
	}
	rnd, err := random.NewFromCrypto()
	if err != nil {
		return nil, fmt.Errorf("seed random source: %w", err)
	}
	return rnd, nil
}
