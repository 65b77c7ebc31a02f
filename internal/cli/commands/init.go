package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultConfigTemplate = `# Breakline project configuration.
output: auto

units:
  unit: px
  base: 16

generate:
  out: breakpoints.css
  format: custom-media

serve:
  port: 8750

breakpoints:
  mobile:
    portrait: [320, 479]
    landscape: [480, 599]
  tablet:
    portrait: [720, 959]
    landscape: [960, 1219]
  screen:
    small: [1220, 1459]
    medium: [1460, 1699]
    large: 1700
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new Breakline project",
		Long: `Initialize a new Breakline project by writing a breakline.yaml
with the built-in breakpoint table and default tool settings.`,
		Example: `  # Initialize in the current directory
  breakline init

  # Initialize in a new directory
  breakline init my-site

  # Force overwrite an existing config
  breakline init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			cmdCtx := NewCommandContext(cmd)
			return runInit(cmdCtx, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(cmdCtx *CommandContext, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "breakline.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("breakline.yaml already exists. Use --force to overwrite")
	}

	if err := os.WriteFile(configPath, []byte(defaultConfigTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r := cmdCtx.Renderer
	r.StatusLine("breakline.yaml", "success", "")
	r.Println("")
	r.Success("Breakline project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Edit breakline.yaml to match your design system")
	r.Println("  2. Run 'breakline list' to see every breakpoint")
	r.Println("  3. Run 'breakline generate' to emit CSS")

	return nil
}
