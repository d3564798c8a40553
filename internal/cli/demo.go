package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// demoCommand creates the demo command for exploring layouts interactively.
func (c *CLI) demoCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Explore layouts interactively",
		Long: `Explore layouts interactively.

The demo command opens a terminal UI with a simulated workspace. Windows can
be added, removed, focused, and rotated; the main split ratio reacts to h/l;
tab cycles through the configured layouts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}

			model, err := NewDemoModel(cfg)
			if err != nil {
				return err
			}

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run demo: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/quilt/quilt.toml)")

	return cmd
}
