// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package auth

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomtom215/roadlens/internal/config"
	"github.com/tomtom215/roadlens/internal/logging"
)

func init() {
	logging.Init(logging.Config{Level: "info", Format: "console", Output: io.Discard})
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(config.SecurityConfig{AdminSecret: testSecret, TokenTTL: time.Hour})
	if err != nil {
		t.Fatalf("NewTokenManager() error = %v", err)
	}
	return m
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	if _, err := NewTokenManager(config.SecurityConfig{}); !errors.Is(err, ErrNoSecret) {
		t.Errorf("NewTokenManager() error = %v, want ErrNoSecret", err)
	}
}

func TestGenerateValidate(t *testing.T) {
	m := newManager(t)
	token, err := m.Generate("ops", RoleAdmin)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	claims, err := m.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.Subject != "ops" || claims.Role != RoleAdmin || claims.ID == "" {
		t.Errorf("claims = %+v, want ops/admin with an ID", claims)
	}
}

func TestValidateRejects(t *testing.T) {
	m := newManager(t)

	other, _ := NewTokenManager(config.SecurityConfig{AdminSecret: strings.Repeat("x", 32)})
	foreign, _ := other.Generate("ops", RoleAdmin)

	expired := newManager(t)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	stale, _ := expired.Generate("ops", RoleAdmin)

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Role: RoleAdmin}).SignedString(jwt.UnsafeAllowNoneSignatureType)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"wrong secret", foreign},
		{"expired", stale},
		{"alg none", none},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Validate(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	m := newManager(t)
	admin, _ := m.Generate("ops", RoleAdmin)
	viewer, _ := m.Generate("ops", "viewer")

	deny := func(w http.ResponseWriter, _ *http.Request, status int, message string) {
		http.Error(w, message, status)
	}
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if c, found := ClaimsFromContext(r.Context()); !found || c.Subject != "ops" {
			t.Errorf("ClaimsFromContext() = %v, %v, want ops claims", c, found)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		v      Validator
		header string
		want   int
	}{
		{"valid admin", m, "Bearer " + admin, http.StatusNoContent},
		{"missing header", m, "", http.StatusUnauthorized},
		{"basic scheme", m, "Basic abc", http.StatusUnauthorized},
		{"bad token", m, "Bearer nope", http.StatusUnauthorized},
		{"wrong role", m, "Bearer " + viewer, http.StatusForbidden},
		{"disabled", nil, "Bearer " + admin, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := RequireRole(tt.v, RoleAdmin, deny)(ok)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reload", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
