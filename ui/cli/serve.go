// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/payveri/affine/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the cipher as a JSON HTTP API",
		Long: `Starts an HTTP server exposing:
  GET  /api/v1/health
  POST /api/v1/encrypt      {"text": "...", "a": 5, "b": 8}
  POST /api/v1/decrypt      {"text": "...", "a": 5, "b": 8}
  POST /api/v1/keys/check   {"a": 5, "b": 8}
  GET  /api/v1/keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			v, _, _ := resolveBuildVersion(nil)
			return server.Run(ctx, appConfig.Server.Addr, server.Options{
				AllowOrigins: appConfig.Server.AllowOrigins,
				StrictB:      appConfig.Key.StrictB,
				Version:      v,
				Debug:        verbose,
			})
		},
	}
	// Named after the config key so viper picks it up.
	cmd.Flags().String("server.addr", ":8080", "Listen address")
	return cmd
}
