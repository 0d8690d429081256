// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// Package config loads roadlens configuration.
//
// Values are layered with koanf, lowest priority first:
//
//  1. built-in defaults (defaultConfig)
//  2. a YAML file from CONFIG_PATH or the first of DefaultConfigPaths
//  3. environment variables listed in envMappings
//
// Load validates the merged result before returning it.
package config

import "time"

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Database  DatabaseConfig  `koanf:"database"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Security  SecurityConfig  `koanf:"security"`
	Events    EventsConfig    `koanf:"events"`
	Presets   PresetsConfig   `koanf:"presets"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DatabaseConfig configures the DuckDB instance used to read the dataset.
// An empty Path or ":memory:" keeps DuckDB in memory.
type DatabaseConfig struct {
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = DuckDB default
}

// DatasetConfig locates the accident CSV and controls reloads.
type DatasetConfig struct {
	Path              string        `koanf:"path"`
	Watch             bool          `koanf:"watch"`
	ReloadDebounce    time.Duration `koanf:"reload_debounce"`
	ReloadMinInterval time.Duration `koanf:"reload_min_interval"`
	BreakerFailures   uint32        `koanf:"breaker_failures"`
	BreakerTimeout    time.Duration `koanf:"breaker_timeout"`
}

// AnalyticsConfig holds request defaults for the chart shapers.
type AnalyticsConfig struct {
	CacheTTL        time.Duration `koanf:"cache_ttl"`
	CacheMaxEntries int           `koanf:"cache_max_entries"`
	DefaultWindow   int           `koanf:"default_window"`
	OtherThreshold  float64       `koanf:"other_threshold"`
	DensityLevel    int           `koanf:"density_level"`
}

// SecurityConfig holds CORS, rate limit and admin token settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	AdminSecret       string        `koanf:"admin_secret"`
	TokenTTL          time.Duration `koanf:"token_ttl"`
}

// AdminEnabled reports whether the admin endpoints are reachable.
func (s SecurityConfig) AdminEnabled() bool {
	return s.AdminSecret != ""
}

// EventsConfig controls external publication of dataset events. With an
// empty NATSURL and EmbeddedNATS off, events stay in process.
type EventsConfig struct {
	NATSURL      string `koanf:"nats_url"`
	EmbeddedNATS bool   `koanf:"embedded_nats"`
	NATSHost     string `koanf:"nats_host"`
	NATSPort     int    `koanf:"nats_port"`
	Subject      string `koanf:"subject"`
}

// External reports whether events are published to NATS.
func (e EventsConfig) External() bool {
	return e.NATSURL != "" || e.EmbeddedNATS
}

// PresetsConfig locates the BadgerDB directory for saved selections.
type PresetsConfig struct {
	Path     string `koanf:"path"`
	InMemory bool   `koanf:"in_memory"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8050,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Database: DatabaseConfig{
			Path:      ":memory:",
			MaxMemory: "1GB",
		},
		Dataset: DatasetConfig{
			Path:              "data/Road Accident Data.csv",
			Watch:             true,
			ReloadDebounce:    2 * time.Second,
			ReloadMinInterval: 10 * time.Second,
			BreakerFailures:   3,
			BreakerTimeout:    time.Minute,
		},
		Analytics: AnalyticsConfig{
			CacheTTL:        5 * time.Minute,
			CacheMaxEntries: 1000,
			DefaultWindow:   7,
			OtherThreshold:  2,
			DensityLevel:    10,
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   100,
			RateLimitWindow: time.Minute,
			TokenTTL:        time.Hour,
		},
		Events: EventsConfig{
			NATSHost: "127.0.0.1",
			NATSPort: 4222,
			Subject:  "roadlens.dataset.reloaded",
		},
		Presets: PresetsConfig{
			Path: "data/presets",
		},
	}
}

// Default returns the built-in configuration without reading files or the
// environment.
func Default() *Config {
	return defaultConfig()
}
