package commands

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viewportlabs/breakline/internal/cli/output"
	"github.com/viewportlabs/breakline/pkg/breakpoint"
	"github.com/viewportlabs/breakline/pkg/mediaquery"
)

// NewMediaCommand creates the media command.
func NewMediaCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "media <path | number | min max | orientation | w/h>",
		Short: "Emit the media query condition for a breakpoint",
		Long: `Emit the @media condition gating a breakpoint.

The argument grammar mirrors how breakpoints are referenced in a
stylesheet:

  a device path        resolved against the table ("tablet.portrait")
  a single number      minimum-only boundary, resolver bypassed
  two numbers          both bounds applied directly
  portrait/landscape   orientation condition, no numeric resolution
  w/h (e.g. 16/9)      aspect-ratio condition`,
		Example: `  # From the breakpoint table
  breakline media tablet.portrait

  # Explicit minimum
  breakline media 600

  # Explicit pair
  breakline media 600 900

  # Category conditions
  breakline media portrait
  breakline media 16/9`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMedia(cmd, args)
		},
	}
	return cmd
}

func runMedia(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	q, err := buildQuery(cmdCtx, args)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{
			"media":     q.String(),
			"condition": q.Condition(),
		})
	case output.ModeMarkdown:
		r.Println(output.FormatCodeBlock("css", q.String()))
	default:
		r.Println(q.String())
	}
	return nil
}

// buildQuery dispatches on the argument shape. Numbers and categories
// never touch the resolver.
func buildQuery(cmdCtx *CommandContext, args []string) (mediaquery.Query, error) {
	conv := cmdCtx.Cfg.Converter()

	if len(args) == 2 {
		lo, err1 := strconv.ParseFloat(args[0], 64)
		hi, err2 := strconv.ParseFloat(args[1], 64)
		if err1 != nil || err2 != nil {
			return mediaquery.Query{}, fmt.Errorf("expected two numbers, got %q %q", args[0], args[1])
		}
		return mediaquery.FromPair(lo, hi, conv), nil
	}

	arg := args[0]

	if n, err := strconv.ParseFloat(arg, 64); err == nil {
		return mediaquery.FromMin(n, conv), nil
	}

	switch arg {
	case "portrait", "landscape":
		return mediaquery.Orientation(arg), nil
	}

	if w, h, ok := parseRatio(arg); ok {
		return mediaquery.AspectRatio(w, h), nil
	}

	rng, err := breakpoint.Resolve(breakpoint.ParsePath(arg), cmdCtx.Cfg.Breakpoints)
	if err != nil {
		return mediaquery.Query{}, fmt.Errorf("failed to resolve %q: %w", arg, err)
	}
	return mediaquery.FromRange(rng, conv), nil
}

func parseRatio(s string) (int, int, bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	w, err1 := strconv.Atoi(parts[0])
	h, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}
