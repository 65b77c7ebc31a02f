// Package commands implements the breakline subcommands.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/viewportlabs/breakline/internal/cli/config"
	"github.com/viewportlabs/breakline/internal/cli/output"
	"github.com/viewportlabs/breakline/pkg/breakpoint"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext assembles the config, logger, and renderer a
// command needs.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the loaded configuration, falling back to defaults
// when a command runs without the root command's PersistentPreRunE
// (direct construction in tests, mostly).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return &config.Config{
		OutputFormat: config.DefaultOutput,
		Units:        config.UnitsConfig{Unit: config.DefaultUnit, Base: config.DefaultBase},
		Generate:     config.GenerateConfig{Out: config.DefaultGenerateOut, Format: config.DefaultGenerateFormat},
		Serve:        config.ServeConfig{Port: config.DefaultServePort},
		Breakpoints:  breakpoint.Default(),
	}
}
