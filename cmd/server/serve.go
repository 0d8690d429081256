// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/tomtom215/roadlens/docs" // registers the OpenAPI document
	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/api"
	"github.com/tomtom215/roadlens/internal/auth"
	"github.com/tomtom215/roadlens/internal/config"
	"github.com/tomtom215/roadlens/internal/database"
	"github.com/tomtom215/roadlens/internal/dataset"
	"github.com/tomtom215/roadlens/internal/events"
	"github.com/tomtom215/roadlens/internal/logging"
	"github.com/tomtom215/roadlens/internal/presets"
	"github.com/tomtom215/roadlens/internal/supervisor"
	"github.com/tomtom215/roadlens/internal/supervisor/services"
	ws "github.com/tomtom215/roadlens/internal/websocket"
)

//nolint:gocyclo // sequential wiring of every component
func runServe(parent context.Context, configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if parent == nil {
		parent = context.Background()
	}

	logging.Info().
		Str("version", version).
		Str("dataset", cfg.Dataset.Path).
		Bool("watch", cfg.Dataset.Watch).
		Bool("admin", cfg.Security.AdminEnabled()).
		Msg("Starting roadlens")

	db, err := database.New(cfg.Database)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize database")
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	bus, err := newEventBus(cfg.Events, tree)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to initialize event bus")
		return err
	}
	defer func() {
		if err := bus.Close(); err != nil {
			logging.Warn().Err(err).Msg("Error closing event bus")
		}
	}()

	store, err := presets.Open(cfg.Presets)
	if err != nil {
		// analytics keep working without presets
		logging.Warn().Err(err).Str("path", cfg.Presets.Path).Msg("Preset store unavailable, presets disabled")
		store = nil
	} else {
		defer func() {
			if err := store.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing preset store")
			}
		}()
	}

	// The hook only fires once the tree runs, after handler is assigned.
	var handler *api.Handler
	manager := dataset.NewManager(db, cfg.Dataset,
		dataset.WithPublisher(bus),
		dataset.OnReload(func(*accidents.Snapshot) { handler.ClearCache() }),
	)
	handler = api.NewHandler(manager, presetStore(store), cfg.Analytics)
	defer handler.Close()

	var tokens auth.Validator
	if cfg.Security.AdminEnabled() {
		tm, err := auth.NewTokenManager(cfg.Security)
		if err != nil {
			logging.Error().Err(err).Msg("Failed to initialize token manager")
			return err
		}
		tokens = tm
		logging.Info().Msg("Admin endpoints enabled")
	} else {
		logging.Info().Msg("Admin endpoints disabled (ADMIN_SECRET not set)")
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	hub := ws.NewHub()
	router := api.NewRouter(handler, cfg.Security, tokens, hub)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	server := &http.Server{
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddDataService(services.NewDatasetLoadService(manager))
	if cfg.Dataset.Watch {
		tree.AddDataService(dataset.NewWatcher(manager, cfg.Dataset.Path, cfg.Dataset.ReloadDebounce, cfg.Dataset.ReloadMinInterval))
	}
	tree.AddMessagingService(hub)
	tree.AddMessagingService(ws.NewRelay(bus, hub))
	tree.AddAPIService(services.NewHTTPServerService(addr, server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", addr).Msg("HTTP server service added")

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}
	logging.Info().Msg("Application stopped gracefully")
	return nil
}

// newEventBus builds the in-process bus and, when configured, the NATS
// publisher behind it. An embedded broker is started here so the publisher
// can connect; the tree stops it on shutdown.
func newEventBus(cfg config.EventsConfig, tree *supervisor.SupervisorTree) (*events.Bus, error) {
	adapter := events.NewLogger()
	if !cfg.External() {
		return events.NewBus(cfg.Subject, nil, adapter), nil
	}

	url := cfg.NATSURL
	if cfg.EmbeddedNATS {
		broker, err := events.StartEmbeddedServer(cfg.NATSHost, cfg.NATSPort)
		if err != nil {
			return nil, err
		}
		tree.AddMessagingService(services.NewEmbeddedNATSService(broker, 10*time.Second))
		url = broker.ClientURL()
		logging.Info().Str("url", url).Msg("Embedded NATS broker started")
	}

	external, err := events.NewNATSPublisher(url, adapter)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("url", url).Str("subject", cfg.Subject).Msg("Publishing dataset events to NATS")
	return events.NewBus(cfg.Subject, external, adapter), nil
}

// presetStore keeps a nil *presets.Store from becoming a non-nil interface.
func presetStore(s *presets.Store) api.PresetStore {
	if s == nil {
		return nil
	}
	return s
}
