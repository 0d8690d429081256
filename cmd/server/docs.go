// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

// @title Roadlens API
// @version 1.0
// @description Filtered summaries and chart data over a road accident dataset.
// @description
// @description ## Filters
// @description
// @description Every analytics and chart endpoint accepts the sidebar filters:
// @description `start_date`, `end_date` (YYYY-MM-DD, inclusive), `severity`, `light_conditions`,
// @description `road_surface`, `road_type`, `area`, `weather` (a value or `All`) and `preset`
// @description (a saved selection that explicit filters override).
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Analytics and
// @description charts have their own, larger groups.
// @description
// @description ## Error Responses
// @description
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {"code": "MISSING_COLUMN", "message": "...", "details": {}},
// @description   "metadata": {"timestamp": "2026-01-18T12:34:56Z"}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/roadlens/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Admin token from `roadlens token`, sent as "Bearer <token>".
//
// @tag.name Health
// @tag.description Liveness and readiness probes
//
// @tag.name Dataset
// @tag.description Loaded dataset metadata and filter options
//
// @tag.name Analytics
// @tag.description Chart-ready JSON computed from the filtered dataset
//
// @tag.name Charts
// @tag.description PNG renderings of the analytics endpoints
//
// @tag.name Presets
// @tag.description Saved filter selections
//
// @tag.name Admin
// @tag.description Dataset reload, requires an admin token
package main
