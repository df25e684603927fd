// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/tomtom215/reelmatch/docs" // registers the OpenAPI document
	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Reelmatch stopped with error")
		os.Exit(1)
	}
}

//nolint:gocyclo // sequential setup steps
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Service:   "reelmatch",
		Version:   version,
	})
	metrics.SetAppInfo(version, runtime.Version())

	logging.Info().
		Str("movies", cfg.Data.MoviesPath).
		Str("credits", cfg.Data.CreditsPath).
		Str("strategy", cfg.Data.Strategy).
		Bool("watch", cfg.Data.Watch).
		Msg("Starting Reelmatch")

	strategy, err := recommend.ParseStrategy(cfg.Data.Strategy)
	if err != nil {
		return err
	}

	store, err := openSnapshots(cfg)
	if err != nil {
		return fmt.Errorf("open snapshot store: %w", err)
	}
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing snapshot store")
			}
		}()
	}

	// signals cancel setup as well as serving
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine, err := recommend.Init(ctx, engineOptions(cfg, strategy, store))
	if err != nil {
		var setupErr *recommend.SetupError
		if errors.As(err, &setupErr) {
			logging.Error().Str("stage", setupErr.Stage).Err(setupErr.Err).Msg("Engine setup failed")
		}
		return err
	}
	holder := recommend.NewHolder(engine)

	handler := api.NewHandler(holder, cfg.API)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security)), cfg.Server.Timeout)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.Server.Timeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if cfg.Data.Watch {
		watcher, err := newDataWatcher(cfg, store, holder)
		if err != nil {
			return fmt.Errorf("create data watcher: %w", err)
		}
		tree.AddDataService(watcher)
		logging.Info().Msg("Data watcher added to supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	errCh := tree.ServeBackground(ctx)
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for services to stop")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 { //nolint:errcheck // report is best effort
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", serveErr)
	}
	logging.Info().Msg("Reelmatch stopped gracefully")
	return nil
}
