// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve /health and /render over HTTP",
		Long: `serve starts an HTTP server. Each request to /render gets its own registry,
filled from the YAML body and emitted according to the "for" and "names"
query parameters. The server stops on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, port)
			if err != nil {
				return err
			}
			if _, err := a.Catalog(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := a.Listen()
			if err != nil {
				return err
			}
			return a.Serve(ctx, ln)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on. 0 picks a free port.")
	return cmd
}
