package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	pg "petclinic-visits/internal/adapters/storage/postgres"
	"petclinic-visits/internal/adapters/storage/seed"
	"petclinic-visits/internal/adapters/storage/sqlite"
	"petclinic-visits/internal/config"
	"petclinic-visits/internal/platform/logger"
	"petclinic-visits/internal/platform/metrics"
	"petclinic-visits/internal/platform/tracing"
	"petclinic-visits/internal/router"

	"golang.org/x/sync/errgroup"
)

// @title						PetClinic Visits API
// @version					1.0
// @description				Formularios de alta y edición de visitas veterinarias.
// @BasePath					/
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Options{
		Enabled:     cfg.TracingEnabled,
		ServiceName: cfg.AppName,
	})
	if err != nil {
		return err
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	opts := router.Options{
		DB:      db,
		Driver:  cfg.DBDriver,
		Seed:    cfg.SeedData,
		Logger:  log,
		Metrics: metrics.New(),
	}
	if cfg.RateLimitEnabled {
		opts.RateLimitRPS = cfg.RateLimitRPS
		opts.RateLimitBurst = cfg.RateLimitBurst
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(opts),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "driver": cfg.DBDriver})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", nil)

		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(sctx); err != nil {
			log.Error("server shutdown failed", map[string]any{"error": err.Error()})
		}
		if err := shutdownTracing(sctx); err != nil {
			log.Error("tracing shutdown failed", map[string]any{"error": err.Error()})
		}
		return nil
	})

	return g.Wait()
}

// openDB devuelve nil para el driver in-memory; el router arma sus repos.
func openDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case config.DriverPostgres:
		db, err := pg.Open(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		if err := pg.EnsureSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		if cfg.SeedData {
			if err := pg.Seed(ctx, db, seed.Default()); err != nil {
				db.Close()
				return nil, err
			}
		}
		return db, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		if cfg.SeedData {
			if err := sqlite.Seed(ctx, db, seed.Default()); err != nil {
				db.Close()
				return nil, err
			}
		}
		return db, nil
	}
	return nil, nil
}
