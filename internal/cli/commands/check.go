package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/viewportlabs/breakline/internal/check"
	"github.com/viewportlabs/breakline/internal/cli/config"
	"github.com/viewportlabs/breakline/internal/cli/output"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the breakpoint table",
		Long: `Validate the configured breakpoint table.

Reports invalid value shapes, spans whose minimum exceeds their
maximum, empty families, and overlapping sibling spans. Breakpoint
tables are static, so anything reported here is an authoring error,
not a runtime condition.

Exits non-zero when errors are found; with --strict, warnings fail
the check too.`,
		Example: `  # Validate the project table
  breakline check

  # Treat warnings as failures (CI)
  breakline check --strict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	return cmd
}

func runCheck(cmd *cobra.Command, strict bool) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	diags := check.Run(cmdCtx.Cfg.Breakpoints)

	if r.EffectiveMode() == output.ModeJSON {
		if err := checkJSON(r, diags); err != nil {
			return err
		}
	} else {
		if file := config.GetConfigFileUsed(); file != "" {
			r.KeyValue("Checking", file)
		} else {
			r.KeyValue("Checking", "built-in default table")
		}
		for _, d := range diags {
			status := "warning"
			if d.Severity == check.SeverityError {
				status = "error"
			}
			r.StatusLine(strings.Join(d.Path, "."), status, d.Message)
		}
		if len(diags) == 0 {
			r.StatusLine("breakpoints", "success", "no issues found")
		}
	}

	if check.HasErrors(diags) || (strict && len(diags) > 0) {
		return fmt.Errorf("check found %d issue(s)", len(diags))
	}
	return nil
}

type checkFinding struct {
	Path     string `json:"path"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func checkJSON(r *output.Renderer, diags []check.Diagnostic) error {
	findings := make([]checkFinding, 0, len(diags))
	for _, d := range diags {
		findings = append(findings, checkFinding{
			Path:     strings.Join(d.Path, "."),
			Severity: string(d.Severity),
			Message:  d.Message,
		})
	}
	enc := json.NewEncoder(r.Writer())
	enc.SetIndent("", "  ")
	return enc.Encode(findings)
}
