// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vk/emitgrid/internal/app"
	"github.com/vk/emitgrid/internal/bind"
	"github.com/vk/emitgrid/internal/handlers"
)

var headingColor = color.New(color.FgYellow, color.Bold)

func newStagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stages",
		Short: "List the built-in stage and custom object types with their properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := handlers.New()
			for _, m := range app.CoreModules() {
				m.Register(h)
			}
			printStages(cmd, h)
			return nil
		},
	}
}

func printStages(cmd *cobra.Command, h *handlers.Handlers) {
	out := cmd.OutOrStdout()
	kinds := []handlers.Kind{
		handlers.KindPreModifier,
		handlers.KindConverter,
		handlers.KindPostModifier,
		handlers.KindWriter,
		handlers.KindObject,
	}
	for i, kind := range kinds {
		if i > 0 {
			fmt.Fprintln(out)
		}
		headingColor.Fprintf(out, "%ss\n", kind)
		for _, name := range h.Names(kind) {
			rh, _ := h.Lookup(name)
			fields := bind.Fields(rh.OptionsType)
			if len(fields) == 0 {
				fmt.Fprintf(out, "  %s\n", name)
				continue
			}
			fmt.Fprintf(out, "  %s (%s)\n", name, strings.Join(fields, ", "))
		}
	}
}
