package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/viewportlabs/breakline/internal/cli/config"
	"github.com/viewportlabs/breakline/internal/serve"
	"github.com/viewportlabs/breakline/pkg/breakpoint"
	"github.com/viewportlabs/breakline/pkg/mediaquery"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the live breakpoint preview server",
		Long: `Serve a preview page that highlights the breakpoints matching the
current viewport, plus the generated stylesheet at /breakpoints.css.

The config file is watched; edits rebuild the preview and reload
connected browsers.`,
		Example: `  # Serve on the configured port (default 8750)
  breakline serve

  # Serve on a specific port
  breakline serve --port 9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, port)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Port to listen on (defaults to serve.port)")
	return cmd
}

func runServe(cmd *cobra.Command, port int) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	if port == 0 {
		port = cfg.Serve.Port
	}

	cfgFile := config.GetConfigFileUsed()
	load := func() (*breakpoint.Table, mediaquery.Converter, error) {
		if cfgFile == "" {
			// No project file: serve the table loaded at startup.
			return cfg.Breakpoints, cfg.Converter(), nil
		}
		fresh, err := config.LoadConfig(cfgFile, nil)
		if err != nil {
			return nil, nil, err
		}
		return fresh.Breakpoints, fresh.Converter(), nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := serve.New(port, cfgFile, load, cmdCtx.Logger)
	return srv.Run(ctx)
}
