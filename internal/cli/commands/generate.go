package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/viewportlabs/breakline/internal/generate"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	var out string
	var format string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate stylesheet artifacts from the breakpoint table",
		Long: `Generate a stylesheet artifact covering every breakpoint path.

Formats:
  custom-media   @custom-media rules (postcss-custom-media)
  css-vars       CSS custom properties on :root
  scss           SCSS variables

Family entries carry the envelope reduced across their children, so
--tablet spans both orientations.`,
		Example: `  # Write breakpoints.css (or the configured generate.out)
  breakline generate

  # SCSS variables to a specific file
  breakline generate --format scss --out _breakpoints.scss

  # Print to stdout
  breakline generate --out -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, out, format)
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file ('-' for stdout)")
	cmd.Flags().StringVar(&format, "format", "", "Artifact format: custom-media, css-vars, scss")
	return cmd
}

func runGenerate(cmd *cobra.Command, out, format string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	if out == "" {
		out = cfg.Generate.Out
	}
	if format == "" {
		format = cfg.Generate.Format
	}

	body, err := generate.Render(cfg.Breakpoints, format, cfg.Converter())
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", format, err)
	}

	if out == "-" {
		r.Printf("%s", body)
		return nil
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(out, []byte(body), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	cmdCtx.Logger.Info("artifact written", "file", out, "format", format)
	r.StatusLine(out, "success", "")
	return nil
}
