package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quiltwm/quilt/pkg/config"
)

// layoutDescriptions maps config layout names to one-line summaries.
var layoutDescriptions = map[string]string{
	"fibonacci":   "recursive binary subdivision with a pixel cutoff",
	"tatami":      "fixed mat templates for up to six windows",
	"conditional": "tatami for small stacks, fibonacci beyond the threshold",
}

// layoutsCommand creates the layouts command for listing available layouts.
func (c *CLI) layoutsCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "layouts",
		Short: "List available layouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(configPath)
			if err != nil {
				return err
			}

			for _, name := range config.LayoutNames() {
				label := name
				if name == cfg.DefaultLayout {
					label += " (default)"
				}
				printKeyValue(label, layoutDescriptions[name])
				printDetail("%s", layoutParams(cfg, name))
			}
			printNewline()
			printNextStep("Preview one", "quilt preview -l tatami -n 5")
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/quilt/quilt.toml)")

	return cmd
}

// layoutParams formats the configured parameters for one layout.
func layoutParams(cfg config.Config, name string) string {
	switch name {
	case "fibonacci":
		return fmt.Sprintf("cutoff %dpx · ratio %.2f · step %.2f",
			cfg.Fibonacci.Cutoff, cfg.Fibonacci.Ratio, cfg.Fibonacci.RatioStep)
	case "tatami":
		return fmt.Sprintf("ratio %.2f · step %.2f", cfg.Tatami.Ratio, cfg.Tatami.RatioStep)
	case "conditional":
		return fmt.Sprintf("max clients %d", cfg.Conditional.MaxClients)
	default:
		return ""
	}
}
