// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vk/emitgrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPaths []string
	logLevel    string
	logFormat   string
	debug       bool
	noColor     bool
}

// NewRootCommand assembles the emitgrid command tree writing to outW and errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "emitgrid",
		Short: "Render queued script declarations through configured emitters",
		Long: `emitgrid builds emitter pipelines from HCL, YAML or TOML configuration
and renders declarations through them, either once from the command line or
per request over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)

	flags := root.PersistentFlags()
	flags.StringSliceVarP(&opts.configPaths, "config", "c", nil, "Emitter configuration file or directory of .hcl files. Repeatable.")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.BoolVar(&opts.debug, "debug", false, "Force the debug context. When unset, "+app.DebugEnv+" decides.")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output.")

	root.AddCommand(
		newValidateCommand(opts),
		newRenderCommand(opts),
		newServeCommand(opts),
		newStagesCommand(),
	)
	return root
}

// Execute runs the command tree for args.
func Execute(ctx context.Context, args []string, outW, errW io.Writer) error {
	root := NewRootCommand(outW, errW)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// config turns the persistent flags into a validated app configuration.
// The debug override is only set when --debug was given explicitly.
func (o *rootOptions) config(cmd *cobra.Command, port int) (*app.Config, error) {
	var debug *bool
	if cmd.Flags().Changed("debug") {
		debug = &o.debug
	}

	cfg, err := app.NewConfig(app.Config{
		ConfigPaths:     o.configPaths,
		LogLevel:        o.logLevel,
		LogFormat:       o.logFormat,
		Debug:           debug,
		HealthcheckPort: port,
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parameter validation complete.", "config", cfg)
	return cfg, nil
}

// newApp builds the app for a subcommand. Logs go to the command's error
// stream so rendered output stays clean.
func (o *rootOptions) newApp(cmd *cobra.Command, port int) (*app.App, error) {
	cfg, err := o.config(cmd, port)
	if err != nil {
		return nil, err
	}
	return app.New(cmd.Context(), cmd.ErrOrStderr(), cfg, app.NewMultiLoader())
}
