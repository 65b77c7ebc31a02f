package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/viewportlabs/breakline/internal/cli/output"
	"github.com/viewportlabs/breakline/pkg/breakpoint"
	"github.com/viewportlabs/breakline/pkg/mediaquery"
)

// resolveResult is the JSON shape for one resolved path.
type resolveResult struct {
	Path      string   `json:"path"`
	Min       float64  `json:"min"`
	Max       *float64 `json:"max,omitempty"`
	Unbounded bool     `json:"unbounded"`
	Media     string   `json:"media"`
}

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Resolve device paths to width envelopes",
		Long: `Resolve one or more breakpoint paths to their [min, max] envelopes.

A path naming a device family reduces across every sub-category, so
"tablet" spans portrait and landscape. A bare number in the table, or
an open span, makes the envelope unbounded above.

Output adapts to environment:
  - Terminal: Styled output
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Resolve a specific orientation
  breakline resolve tablet.portrait

  # Resolve a whole family envelope
  breakline resolve tablet

  # Resolve several paths as JSON
  breakline resolve mobile tablet screen --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runResolve(cmd, args)
		},
	}
	return cmd
}

func runResolve(cmd *cobra.Command, args []string) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	conv := cfg.Converter()

	results := make([]resolveResult, 0, len(args))
	for _, arg := range args {
		path := breakpoint.ParsePath(arg)
		rng, err := breakpoint.Resolve(path, cfg.Breakpoints)
		if err != nil {
			return fmt.Errorf("failed to resolve %q: %w", arg, err)
		}
		results = append(results, toResult(arg, rng, conv))
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		enc := json.NewEncoder(r.Writer())
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case output.ModeMarkdown:
		for _, res := range results {
			r.Println(output.FormatKeyValue(res.Path, formatResult(res)))
		}
	default:
		for _, res := range results {
			r.KeyValue(res.Path, formatResult(res))
		}
	}
	return nil
}

func toResult(path string, rng breakpoint.Range, conv mediaquery.Converter) resolveResult {
	res := resolveResult{
		Path:      path,
		Min:       rng.Min,
		Unbounded: rng.Unbounded,
		Media:     mediaquery.FromRange(rng, conv).String(),
	}
	if !rng.Unbounded {
		max := rng.Max
		res.Max = &max
	}
	return res
}

func formatResult(res resolveResult) string {
	if res.Unbounded {
		return fmt.Sprintf("min %v, no upper bound (%s)", res.Min, res.Media)
	}
	return fmt.Sprintf("min %v, max %v (%s)", res.Min, *res.Max, res.Media)
}
