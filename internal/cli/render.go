// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vk/emitgrid/internal/app"
	"github.com/vk/emitgrid/internal/declaration"
	"github.com/vk/emitgrid/internal/docfile"
	"golang.org/x/sync/errgroup"
)

func newRenderCommand(opts *rootOptions) *cobra.Command {
	var renderOpts app.RenderOptions

	cmd := &cobra.Command{
		Use:   "render FILE...",
		Short: "Render declarations files through the configured emitters",
		Long: `render reads YAML or TOML declarations files, adds their declarations to a
fresh registry in argument order and writes the emitted output.

Without --for or --names every declaration is emitted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.newApp(cmd, 0)
			if err != nil {
				return err
			}

			perFile := make([][]declaration.Declaration, len(args))
			g, _ := errgroup.WithContext(cmd.Context())
			for i, path := range args {
				g.Go(func() error {
					decls, err := docfile.ReadDeclarations(path)
					if err != nil {
						return err
					}
					perFile[i] = decls
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return &ExitError{Code: 2, Message: err.Error()}
			}

			var decls []declaration.Declaration
			for _, d := range perFile {
				decls = append(decls, d...)
			}

			out, err := a.RenderOnce(cmd.Context(), decls, renderOpts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringSliceVar(&renderOpts.Keys, "for", nil, "Emit only for these emitter or bundle keys.")
	cmd.Flags().StringSliceVar(&renderOpts.Names, "names", nil, "Emit only the declarations with these names.")
	cmd.MarkFlagsMutuallyExclusive("for", "names")
	return cmd
}
