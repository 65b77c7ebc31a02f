package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/viewportlabs/breakline/internal/cli/output"
	"github.com/viewportlabs/breakline/internal/generate"
	"github.com/viewportlabs/breakline/pkg/mediaquery"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all breakpoints and their envelopes",
		Long: `List every defined breakpoint path with its resolved envelope.

Family rows show the envelope reduced across all sub-categories.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table
  - JSON: Machine-readable format`,
		Example: `  # List all breakpoints
  breakline list

  # List as JSON
  breakline list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd)
		},
	}
	return cmd
}

func runList(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer
	conv := cfg.Converter()

	entries, err := generate.Entries(cfg.Breakpoints)
	if err != nil {
		return fmt.Errorf("failed to resolve breakpoints: %w", err)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listJSON(r, entries, conv)
	default:
		return listTable(r, entries, conv)
	}
}

func listTable(r *output.Renderer, entries []generate.Entry, conv mediaquery.Converter) error {
	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"PATH", "MIN", "MAX", "CONDITION"})

	for _, e := range entries {
		max := "unbounded"
		if !e.Range.Unbounded {
			max = conv.Convert(e.Range.Max)
		}
		t.AppendRow(table.Row{
			strings.Join(e.Path, "."),
			conv.Convert(e.Range.Min),
			max,
			mediaquery.FromRange(e.Range, conv).Condition(),
		})
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}

func listJSON(r *output.Renderer, entries []generate.Entry, conv mediaquery.Converter) error {
	results := make([]resolveResult, 0, len(entries))
	for _, e := range entries {
		results = append(results, toResult(strings.Join(e.Path, "."), e.Range, conv))
	}
	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
