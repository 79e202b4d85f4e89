// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dacolabs/xsdvis/internal/server"
	"github.com/dacolabs/xsdvis/internal/session"
	"github.com/dacolabs/xsdvis/internal/translate"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

type serveOptions struct {
	addr string
}

func newServeCmd(translators translate.Register) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve schema rendering over HTTP",
		Long: `Start an HTTP server that renders posted schemas.

Endpoints:
  POST /v1/render?format=html&lang=en&name=schema   render the request body
  GET  /v1/formats                                  list output formats
  GET  /system/status                               server status
  GET  /system/metrics                              Prometheus metrics`,
		Example: `  # Serve on the configured address
  xsdvis serve

  # Serve on a specific address
  xsdvis serve --addr 127.0.0.1:9090`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, translators, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "Listen address (default from config)")

	return cmd
}

func runServe(cmd *cobra.Command, translators translate.Register, opts *serveOptions) error {
	ctx, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	cfg := ctx.Config.Server
	if opts.addr != "" {
		cfg.Addr = opts.addr
	}

	// the server always reports its address and errors
	logger := ctx.Logger
	if !logger.IsDebug() {
		logger = hclog.New(&hclog.LoggerOptions{
			Name:   "xsdvis",
			Level:  hclog.Info,
			Output: cmd.ErrOrStderr(),
		})
	}

	srv, err := server.New(cfg, translators, ctx.Strings, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return srv.Run(runCtx)
}
