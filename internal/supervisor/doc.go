// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

/*
Package supervisor runs the long-lived roadlens services under suture v4.

	RootSupervisor ("roadlens")
	├── DataSupervisor ("data-layer")
	│   ├── DatasetLoadService (one-shot, retried until the first load succeeds)
	│   └── dataset.Watcher (if dataset.watch is enabled)
	├── MessagingSupervisor ("messaging-layer")
	│   ├── EmbeddedNATSService (if events.embedded_nats is set)
	│   ├── websocket.Hub
	│   └── websocket.Relay
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog into the zerolog-backed slog handler from
internal/logging.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewDatasetLoadService(manager))
	tree.AddMessagingService(hub)
	tree.AddAPIService(services.NewHTTPServerService(":8080", server, 10*time.Second))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tree.Serve(ctx)

Sub-package services holds the adapters for components whose lifecycle is
not already a Serve(ctx) method.
*/
package supervisor
