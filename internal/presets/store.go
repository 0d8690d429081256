// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package presets persists named filter selections in BadgerDB.
//
// A preset can be applied to any analytics request with ?preset=name;
// explicit query parameters override the saved values.
package presets

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/roadlens/internal/accidents"
	"github.com/tomtom215/roadlens/internal/config"
	"github.com/tomtom215/roadlens/internal/logging"
)

const keyPrefix = "preset:"

var (
	// ErrNotFound is returned for an unknown preset name.
	ErrNotFound = errors.New("preset not found")

	// ErrInvalidName is returned for names outside [A-Za-z0-9_-]{1,64}.
	ErrInvalidName = errors.New("invalid preset name")

	// ErrClosed is returned after Close.
	ErrClosed = errors.New("preset store is closed")
)

var namePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Preset is a saved selection.
type Preset struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Selection   accidents.Selection `json:"selection"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// ValidName reports whether name can be stored.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// Store is a BadgerDB-backed preset store.
type Store struct {
	db *badger.DB

	mu     sync.RWMutex
	closed bool
}

// Open opens the store described by cfg.
func Open(cfg config.PresetsConfig) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open preset store: %w", err)
	}
	logging.Debug().Str("path", cfg.Path).Bool("in_memory", cfg.InMemory).Msg("Preset store opened")
	return &Store{db: db}, nil
}

func presetKey(name string) []byte {
	return []byte(keyPrefix + name)
}

func (s *Store) check(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	return ctx.Err()
}

// Put creates or replaces a preset. CreatedAt is kept across replacements.
func (s *Store) Put(ctx context.Context, p Preset) (Preset, error) {
	if !ValidName(p.Name) {
		return Preset{}, fmt.Errorf("%w: %q", ErrInvalidName, p.Name)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return Preset{}, err
	}

	now := time.Now().UTC()
	err := s.db.Update(func(txn *badger.Txn) error {
		p.CreatedAt = now
		item, err := txn.Get(presetKey(p.Name))
		switch {
		case err == nil:
			var existing Preset
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &existing)
			}); err == nil && !existing.CreatedAt.IsZero() {
				p.CreatedAt = existing.CreatedAt
			}
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}
		p.UpdatedAt = now

		data, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal preset: %w", err)
		}
		return txn.Set(presetKey(p.Name), data)
	})
	if err != nil {
		return Preset{}, fmt.Errorf("failed to save preset %s: %w", p.Name, err)
	}
	return p, nil
}

// Get returns the named preset.
func (s *Store) Get(ctx context.Context, name string) (Preset, error) {
	if !ValidName(name) {
		return Preset{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return Preset{}, err
	}

	var p Preset
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(presetKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &p)
		})
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Preset{}, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return Preset{}, fmt.Errorf("failed to read preset %s: %w", name, err)
	}
	return p, nil
}

// List returns every preset in name order.
func (s *Store) List(ctx context.Context) ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	out := []Preset{}
	prefix := []byte(keyPrefix)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var p Preset
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			}); err != nil {
				logging.Warn().Err(err).Str("key", string(item.Key())).Msg("Skipping unreadable preset")
				continue
			}
			out = append(out, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	return out, nil
}

// Delete removes the named preset.
func (s *Store) Delete(ctx context.Context, name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return err
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(presetKey(name)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return txn.Delete(presetKey(name))
	})
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete preset %s: %w", name, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
