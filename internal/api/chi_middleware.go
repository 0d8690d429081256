// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/roadlens/internal/config"
	"github.com/tomtom215/roadlens/internal/metrics"
	"github.com/tomtom215/roadlens/internal/models"
)

// RateLimitConfig is one rate limit group.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// Per-group limits. The analytics group is permissive because dashboard
// filter changes fire several requests at once.
var (
	RateLimitHealth    = RateLimitConfig{Requests: 1000, Window: time.Minute}
	RateLimitAnalytics = RateLimitConfig{Requests: 1000, Window: time.Minute}
	RateLimitCharts    = RateLimitConfig{Requests: 120, Window: time.Minute}
	RateLimitWrite     = RateLimitConfig{Requests: 30, Window: time.Minute}
	RateLimitAdmin     = RateLimitConfig{Requests: 10, Window: time.Minute}
)

// ChiMiddleware builds the chi-compatible middleware from security config.
type ChiMiddleware struct {
	config config.SecurityConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates the middleware factory.
func NewChiMiddleware(cfg config.SecurityConfig) *ChiMiddleware {
	corsHandler := cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Dataset-Version"},
		MaxAge:         86400,
	})
	return &ChiMiddleware{config: cfg, cors: corsHandler}
}

// CORS returns the go-chi/cors handler.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

func passthrough(next http.Handler) http.Handler { return next }

// RateLimit applies the configured default limit by IP.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	return m.limit("default", RateLimitConfig{Requests: m.config.RateLimitReqs, Window: m.config.RateLimitWindow})
}

// RateLimitGroup applies a named group limit by IP.
func (m *ChiMiddleware) RateLimitGroup(group string, cfg RateLimitConfig) func(http.Handler) http.Handler {
	return m.limit(group, cfg)
}

func (m *ChiMiddleware) limit(group string, cfg RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled || cfg.Requests <= 0 || cfg.Window <= 0 {
		return passthrough
	}
	return httprate.Limit(cfg.Requests, cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			metrics.APIRateLimitHits.WithLabelValues(group).Inc()
			respondError(w, http.StatusTooManyRequests, models.CodeRateLimited, "rate limit exceeded", nil)
		}),
	)
}

// APISecurityHeaders adds the headers every API response carries. HSTS is
// only sent over TLS or behind a TLS-terminating proxy.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}
