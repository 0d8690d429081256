// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// MinAdminSecretLength is the shortest accepted HS256 signing secret.
const MinAdminSecretLength = 32

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	checks := []func() error{
		c.validateServer,
		c.validateLogging,
		c.validateDataset,
		c.validateAnalytics,
		c.validateSecurity,
		c.validateEvents,
	}
	for _, check := range checks {
		if err := check(); err != nil {
			return err
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func positive(name string, d time.Duration) error {
	if d <= 0 {
		return invalid("%s must be positive, got %v", name, d)
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if err := positive("HTTP_TIMEOUT", c.Server.Timeout); err != nil {
		return err
	}
	return positive("HTTP_SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled":
	default:
		return invalid("LOG_LEVEL %q is not a known level", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
		return nil
	default:
		return invalid("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
}

func (c *Config) validateDataset() error {
	if strings.TrimSpace(c.Dataset.Path) == "" {
		return invalid("DATASET_PATH is required")
	}
	if err := positive("DATASET_RELOAD_DEBOUNCE", c.Dataset.ReloadDebounce); err != nil {
		return err
	}
	if c.Dataset.ReloadMinInterval < 0 {
		return invalid("DATASET_RELOAD_MIN_INTERVAL must not be negative")
	}
	if c.Dataset.BreakerFailures == 0 {
		return invalid("DATASET_BREAKER_FAILURES must be at least 1")
	}
	return positive("DATASET_BREAKER_TIMEOUT", c.Dataset.BreakerTimeout)
}

func (c *Config) validateAnalytics() error {
	if err := positive("ANALYTICS_CACHE_TTL", c.Analytics.CacheTTL); err != nil {
		return err
	}
	if c.Analytics.CacheMaxEntries < 1 {
		return invalid("ANALYTICS_CACHE_MAX_ENTRIES must be at least 1, got %d", c.Analytics.CacheMaxEntries)
	}
	if c.Analytics.DefaultWindow < 1 {
		return invalid("ANALYTICS_DEFAULT_WINDOW must be at least 1, got %d", c.Analytics.DefaultWindow)
	}
	if c.Analytics.OtherThreshold < 0 || c.Analytics.OtherThreshold > 100 {
		return invalid("ANALYTICS_OTHER_THRESHOLD must be between 0 and 100, got %v", c.Analytics.OtherThreshold)
	}
	if c.Analytics.DensityLevel < 0 || c.Analytics.DensityLevel > 30 {
		return invalid("ANALYTICS_DENSITY_LEVEL must be between 0 and 30, got %d", c.Analytics.DensityLevel)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return invalid("RATE_LIMIT_REQUESTS must be at least 1")
		}
		if err := positive("RATE_LIMIT_WINDOW", c.Security.RateLimitWindow); err != nil {
			return err
		}
	}
	if c.Security.AdminEnabled() {
		if len(c.Security.AdminSecret) < MinAdminSecretLength {
			return invalid("ADMIN_SECRET must be at least %d characters", MinAdminSecretLength)
		}
		if err := positive("ADMIN_TOKEN_TTL", c.Security.TokenTTL); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateEvents() error {
	if c.Events.EmbeddedNATS && (c.Events.NATSPort < 1 || c.Events.NATSPort > 65535) {
		return invalid("NATS_PORT must be between 1 and 65535, got %d", c.Events.NATSPort)
	}
	if c.Events.External() && strings.TrimSpace(c.Events.Subject) == "" {
		return invalid("NATS_SUBJECT is required when publishing to NATS")
	}
	return nil
}
