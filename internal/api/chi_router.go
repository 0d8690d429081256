// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/roadlens/internal/auth"
	"github.com/tomtom215/roadlens/internal/config"
	"github.com/tomtom215/roadlens/internal/middleware"
	"github.com/tomtom215/roadlens/internal/models"
	"github.com/tomtom215/roadlens/internal/websocket"
)

// Router wires the handler into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	tokens        auth.Validator
	hub           *websocket.Hub
	origins       []string
}

// NewRouter creates a router. tokens may be nil, which leaves the admin
// endpoints answering 503; hub may be nil, which leaves /ws unrouted.
func NewRouter(h *Handler, sec config.SecurityConfig, tokens auth.Validator, hub *websocket.Hub) *Router {
	return &Router{
		handler:       h,
		chiMiddleware: NewChiMiddleware(sec),
		tokens:        tokens,
		hub:           hub,
		origins:       sec.CORSOrigins,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	h := router.handler
	m := router.chiMiddleware

	r := chi.NewRouter()

	// Global middleware, applied to every route in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(m.CORS())

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusNotFound, models.CodeNotFound, "route not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed", nil)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Route("/api/v1", func(r chi.Router) {
		// The upgrade needs the raw writer, so /ws stays outside the
		// wrapping middleware below.
		if router.hub != nil {
			r.Get("/ws", websocket.Handler(router.hub, router.origins))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.AccessLog)
			r.Use(middleware.PrometheusMetrics)
			r.Use(APISecurityHeaders())
			r.Use(chimiddleware.Compress(5))

			r.Group(func(r chi.Router) {
				r.Use(m.RateLimitGroup("health", RateLimitHealth))
				r.Get("/health/live", h.HealthLive)
				r.Get("/health/ready", h.HealthReady)
			})

			r.Group(func(r chi.Router) {
				r.Use(m.RateLimit())
				r.Get("/dataset", h.DatasetInfo)
				r.Get("/filters", h.Filters)
				r.Get("/presets", h.ListPresets)
				r.Get("/presets/{name}", h.GetPreset)
				r.With(m.RateLimitGroup("write", RateLimitWrite)).Put("/presets/{name}", h.PutPreset)
				r.With(m.RateLimitGroup("write", RateLimitWrite)).Delete("/presets/{name}", h.DeletePreset)
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Use(m.RateLimitGroup("analytics", RateLimitAnalytics))
				r.Get("/summary", h.AnalyticsSummary)
				r.Get("/proportion", h.AnalyticsProportion)
				r.Get("/trend", h.AnalyticsTrend)
				r.Get("/heatmap", h.AnalyticsHeatmap)
				r.Get("/comparison", h.AnalyticsComparison)
				r.Get("/density", h.AnalyticsDensity)
				r.Get("/aggregate", h.AnalyticsAggregate)
			})

			r.Route("/charts", func(r chi.Router) {
				r.Use(m.RateLimitGroup("charts", RateLimitCharts))
				r.Get("/proportion.png", h.ChartProportion)
				r.Get("/trend.png", h.ChartTrend)
				r.Get("/comparison.png", h.ChartComparison)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(m.RateLimitGroup("admin", RateLimitAdmin))
				r.Use(auth.RequireRole(router.tokens, auth.RoleAdmin, denyJSON))
				r.Post("/reload", h.AdminReload)
			})
		})
	})

	return r
}
