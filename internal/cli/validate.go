// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vk/emitgrid/internal/emitter"
	"golang.org/x/sync/errgroup"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	keyColor  = color.New(color.FgCyan)
)

func newValidateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Build the emitter catalog in both debug and live contexts",
		Long: `validate loads the configuration and builds the catalog once for the
debug context and once for the live context, so stages gated by emit_mode
are checked in both.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, 0)
			if err != nil {
				return err
			}

			contexts := []bool{false, true}
			catalogs := make([]*emitter.Catalog, len(contexts))
			errs := make([]error, len(contexts))

			var g errgroup.Group
			for i, isDebug := range contexts {
				g.Go(func() error {
					catalogs[i], errs[i] = a.CatalogFor(isDebug)
					return nil
				})
			}
			_ = g.Wait()

			out := cmd.OutOrStdout()
			failed := 0
			for i, isDebug := range contexts {
				name := contextName(isDebug)
				if errs[i] != nil {
					failed++
					failColor.Fprintf(out, "✘ %s: ", name)
					fmt.Fprintln(out, errs[i])
					continue
				}
				okColor.Fprintf(out, "✔ %s: ", name)
				fmt.Fprintf(out, "%d emitters, %d bundles, default ", len(catalogs[i].Emitters()), len(catalogs[i].Bundles()))
				keyColor.Fprintln(out, catalogs[i].DefaultKey())
			}

			if failed > 0 {
				return &ExitError{Code: 1, Message: fmt.Sprintf("configuration is invalid in %d of %d contexts", failed, len(contexts))}
			}
			return nil
		},
	}
}

func contextName(isDebug bool) string {
	if isDebug {
		return "debug"
	}
	return "live"
}
