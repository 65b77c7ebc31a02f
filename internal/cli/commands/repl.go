package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/viewportlabs/breakline/internal/generate"
	"github.com/viewportlabs/breakline/pkg/breakpoint"
)

// NewReplCommand creates the repl command.
func NewReplCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Resolve breakpoints interactively",
		Long: `Start an interactive loop that resolves paths and explicit values
using the same grammar as the media command.

Dot-commands: .list shows every defined path, .help shows usage,
.quit exits.`,
		Example: `  breakline repl`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd)
		},
	}
	return cmd
}

func runRepl(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg

	historyFile := filepath.Join(cfg.ProjectRoot, ".breakline_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "breakline> ",
		HistoryFile:     historyFile,
		AutoComplete:    newPathCompleter(cfg.Breakpoints),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out, "breakline REPL")
	_, _ = fmt.Fprintln(out, "Type a path (tablet.portrait), a number, or .help; .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			handleDotCommand(cmdCtx, out, line)
			continue
		}

		q, err := buildQuery(cmdCtx, strings.Fields(line))
		if err != nil {
			_, _ = fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		_, _ = fmt.Fprintln(out, q.String())
	}

	return nil
}

func handleDotCommand(cmdCtx *CommandContext, out io.Writer, line string) {
	switch line {
	case ".help":
		_, _ = fmt.Fprintln(out, "  <path>        resolve a breakpoint path")
		_, _ = fmt.Fprintln(out, "  <min> [max]   explicit bounds")
		_, _ = fmt.Fprintln(out, "  portrait      orientation condition")
		_, _ = fmt.Fprintln(out, "  .list         show all defined paths")
		_, _ = fmt.Fprintln(out, "  .quit         exit")
	case ".list":
		entries, err := generate.Entries(cmdCtx.Cfg.Breakpoints)
		if err != nil {
			_, _ = fmt.Fprintf(out, "error: %v\n", err)
			return
		}
		for _, e := range entries {
			_, _ = fmt.Fprintf(out, "  %-24s %s\n", strings.Join(e.Path, "."), e.Range)
		}
	default:
		_, _ = fmt.Fprintf(out, "unknown command %s (try .help)\n", line)
	}
}

// newPathCompleter completes defined breakpoint paths.
func newPathCompleter(table *breakpoint.Table) readline.AutoCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItemDynamic(func(string) []string {
			entries, err := generate.Entries(table)
			if err != nil {
				return nil
			}
			paths := make([]string, 0, len(entries))
			for _, e := range entries {
				paths = append(paths, strings.Join(e.Path, "."))
			}
			return paths
		}),
	)
}
