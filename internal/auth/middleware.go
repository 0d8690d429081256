// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/tomtom215/roadlens/internal/logging"
)

type contextKey string

// ClaimsContextKey holds *Claims on authenticated requests.
const ClaimsContextKey contextKey = "claims"

// Validator is the part of TokenManager the middleware needs.
type Validator interface {
	Validate(tokenString string) (*Claims, error)
}

// Unauthorized writes the JSON error response for a rejected request.
type Unauthorized func(w http.ResponseWriter, r *http.Request, status int, message string)

// RequireRole rejects requests without a valid bearer token carrying role.
// A nil validator rejects everything with 503, which keeps admin endpoints
// closed when no secret is configured.
func RequireRole(v Validator, role string, deny Unauthorized) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v == nil {
				deny(w, r, http.StatusServiceUnavailable, "admin endpoints are disabled")
				return
			}

			token, ok := bearerToken(r)
			if !ok {
				deny(w, r, http.StatusUnauthorized, "missing bearer token")
				return
			}

			claims, err := v.Validate(token)
			if err != nil {
				logging.Ctx(r.Context()).Warn().Err(err).Str("path", r.URL.Path).Msg("Rejected token")
				deny(w, r, http.StatusUnauthorized, "invalid or expired token")
				return
			}
			if claims.Role != role {
				deny(w, r, http.StatusForbidden, "insufficient role")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the claims set by RequireRole.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return c, ok
}

func bearerToken(r *http.Request) (string, bool) {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
