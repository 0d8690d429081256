// Roadlens - Road Accident Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/roadlens

package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/roadlens/internal/auth"
)

func newTokenCommand(configPath *string) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed admin token for /api/v1/admin/reload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if !cfg.Security.AdminEnabled() {
				return errors.New("admin_secret is not configured (set ADMIN_SECRET)")
			}
			if ttl > 0 {
				cfg.Security.TokenTTL = ttl
			}

			tm, err := auth.NewTokenManager(cfg.Security)
			if err != nil {
				return err
			}
			token, err := tm.Generate(subject, auth.RoleAdmin)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject, logged on each admin call")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: security.token_ttl)")
	return cmd
}
