// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package dataset owns the current accident snapshot and its reloads.
//
// Requests read the snapshot through an atomic pointer and never block on a
// reload. A reload loads the CSV through DuckDB, normalizes it into a new
// accidents.Snapshot and swaps the pointer. Reloads are serialized, rate
// limited, and guarded by a circuit breaker so a corrupt file cannot keep
// DuckDB busy. While the breaker is open the previous snapshot keeps serving.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/config"
	"github.com/tomtom215/roadlens/internal/database"
	"github.com/tomtom215/roadlens/internal/events"
	"github.com/tomtom215/roadlens/internal/logging"
	"github.com/tomtom215/roadlens/internal/metrics"
)

var (
	// ErrNotLoaded is returned while no snapshot has loaded yet.
	ErrNotLoaded = errors.New("dataset not loaded")

	// ErrReloadThrottled is returned when a reload comes sooner than the
	// configured minimum interval.
	ErrReloadThrottled = errors.New("dataset reload throttled")

	// ErrBreakerOpen is returned while repeated failures keep reloads off.
	ErrBreakerOpen = errors.New("dataset reload circuit open")
)

// Reload reasons.
const (
	ReasonStartup = "startup"
	ReasonWatch   = "watch"
	ReasonAdmin   = "admin"
)

// Loader reads the raw dataset. *database.DB satisfies it.
type Loader interface {
	LoadAccidents(ctx context.Context, path string) (*database.Dataset, error)
}

// Publisher receives reload outcomes. *events.Bus satisfies it.
type Publisher interface {
	Publish(ctx context.Context, ev events.DatasetEvent) error
}

// Option configures a Manager.
type Option func(*Manager)

// WithPublisher sends every reload outcome to p.
func WithPublisher(p Publisher) Option {
	return func(m *Manager) { m.publisher = p }
}

// OnReload registers fn to run after each successful swap, for example to
// clear a response cache.
func OnReload(fn func(*accidents.Snapshot)) Option {
	return func(m *Manager) { m.hooks = append(m.hooks, fn) }
}

// Manager holds the current snapshot.
type Manager struct {
	loader  Loader
	path    string
	current atomic.Pointer[accidents.Snapshot]

	mu        sync.Mutex // serializes reloads
	version   uint64
	limiter   *rate.Limiter
	breaker   *gobreaker.CircuitBreaker[*database.Dataset]
	publisher Publisher
	hooks     []func(*accidents.Snapshot)
}

// NewManager builds a manager for cfg.Path. Nothing is loaded until Reload.
func NewManager(loader Loader, cfg config.DatasetConfig, opts ...Option) *Manager {
	limit := rate.Inf
	if cfg.ReloadMinInterval > 0 {
		limit = rate.Every(cfg.ReloadMinInterval)
	}
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 3
	}

	m := &Manager{
		loader:  loader,
		path:    cfg.Path,
		limiter: rate.NewLimiter(limit, 1),
	}
	m.breaker = gobreaker.NewCircuitBreaker[*database.Dataset](gobreaker.Settings{
		Name:        "dataset-reload",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(_ string, from, to gobreaker.State) {
			logging.Warn().Str("from", from.String()).Str("to", to.String()).Msg("[CIRCUIT BREAKER] Dataset reload state transition")
			metrics.DatasetBreakerState.Set(stateToFloat(to))
		},
	})
	metrics.DatasetBreakerState.Set(0)

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Path is the dataset file the manager loads.
func (m *Manager) Path() string {
	return m.path
}

// Current returns the serving snapshot, or nil before the first load.
func (m *Manager) Current() *accidents.Snapshot {
	return m.current.Load()
}

// Snapshot returns the serving snapshot or ErrNotLoaded.
func (m *Manager) Snapshot() (*accidents.Snapshot, error) {
	if s := m.current.Load(); s != nil {
		return s, nil
	}
	return nil, ErrNotLoaded
}

// Ready reports whether a snapshot is serving.
func (m *Manager) Ready() bool {
	return m.current.Load() != nil
}

// BreakerState is the reload breaker's state name.
func (m *Manager) BreakerState() string {
	return m.breaker.State().String()
}

// Reload loads the dataset file and swaps in a new snapshot. On failure the
// previous snapshot keeps serving and the error is returned.
func (m *Manager) Reload(ctx context.Context, reason string) (*accidents.Snapshot, error) {
	if !m.limiter.Allow() {
		metrics.RecordReload(metrics.ReloadRejected, 0, 0)
		return nil, ErrReloadThrottled
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ctx = logging.ContextWithNewCorrelationID(ctx)
	log := logging.Ctx(ctx)

	stopLoad := metrics.StageTimer(metrics.StageLoad, "dataset")
	ds, err := m.breaker.Execute(func() (*database.Dataset, error) {
		return m.loader.LoadAccidents(ctx, m.path)
	})
	stopLoad()

	if err != nil {
		result := metrics.ReloadFailure
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			result = metrics.ReloadRejected
			err = fmt.Errorf("%w: %w", ErrBreakerOpen, err)
		}
		metrics.RecordReload(result, 0, 0)
		log.Error().Err(err).Str("path", m.path).Str("reason", reason).Msg("Dataset reload failed")
		m.publish(ctx, events.ReloadFailed(m.version, m.path, reason, err))
		return nil, err
	}

	m.version++
	stopNormalize := metrics.StageTimer(metrics.StageNormalize, "dataset")
	snap := accidents.NewSnapshot(ds.Records, ds.Columns, accidents.SnapshotInfo{
		Version:  m.version,
		Source:   m.path,
		LoadedAt: time.Now().UTC(),
	})
	stopNormalize()

	m.current.Store(snap)
	metrics.RecordReload(metrics.ReloadSuccess, snap.Len(), snap.Version())
	log.Info().
		Uint64("version", snap.Version()).
		Int("raw_rows", len(ds.Records)).
		Int("rows", snap.Len()).
		Dur("load_time", ds.Duration).
		Str("reason", reason).
		Msg("Dataset loaded")

	for _, fn := range m.hooks {
		fn(snap)
	}
	m.publish(ctx, events.Reloaded(snap.Version(), snap.Len(), m.path, reason))
	return snap, nil
}

func (m *Manager) publish(ctx context.Context, ev events.DatasetEvent) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(ctx, ev); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("event", ev.Type).Msg("Failed to publish dataset event")
	}
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
