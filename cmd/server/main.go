// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/tomtom215/reelmatch/docs" // swagger spec served at /swagger/
	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config not yet available, so this uses the default logger.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("catalog", cfg.Catalog.Path).
		Bool("oracle", cfg.Oracle.Enabled()).
		Msg("Starting Reelmatch")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rc, err := initRecommend(ctx, cfg, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}
	defer func() {
		if err := rc.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing encoder store")
		}
	}()

	var handlerOpts []api.HandlerOption
	if rc.Oracle != nil {
		handlerOpts = append(handlerOpts, api.WithOracleState(rc.Oracle.State))
	}
	handler, err := api.NewHandler(rc.Engine, logging.Logger(), handlerOpts...)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create HTTP handler")
		return
	}

	router := api.NewRouter(handler,
		api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security)),
		cfg.Server.RequestTimeout,
	)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	// sutureslog needs slog; the adapter forwards to zerolog.
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return
	}

	svcLogger := logging.WithComponent("supervisor")
	if cfg.Recommend.CacheEnabled && cfg.Recommend.CacheTTL > 0 {
		tree.AddMaintenanceService(services.NewCacheSweeperService(rc.Engine, cfg.Recommend.CacheTTL, svcLogger))
		logging.Info().Dur("interval", cfg.Recommend.CacheTTL).Msg("Cache sweeper added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, svcLogger))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	// errCh delivers exactly one value when the tree stops.
	var treeErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
		treeErr = <-errCh
	case treeErr = <-errCh:
	}
	if treeErr != nil && !errors.Is(treeErr, context.Canceled) {
		logging.Error().Err(treeErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Reelmatch stopped")
}
