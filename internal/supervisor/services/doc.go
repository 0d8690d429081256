// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

/*
Package services adapts roadlens components to suture.Service.

websocket.Hub, websocket.Relay and dataset.Watcher already have a
Serve(ctx) error method and are added to the tree directly. The wrappers
here cover the rest:

HTTPServerService:
  - runs ListenAndServe in a goroutine
  - calls Shutdown with a bounded timeout when the tree stops

EmbeddedNATSService:
  - owns an embedded broker started before the tree
  - stops without restart if the broker exits on its own

DatasetLoadService:
  - performs the startup load in the background
  - returns suture.ErrDoNotRestart once a snapshot is serving
*/
package services
