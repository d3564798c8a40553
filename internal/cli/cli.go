// Package cli implements the quilt command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/quiltwm/quilt/pkg/buildinfo"
	"github.com/quiltwm/quilt/pkg/cache"
	"github.com/quiltwm/quilt/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "quilt"

	// defaultWindows is the window count used by preview when -n is not given.
	defaultWindows = 4

	// defaultScreenW and defaultScreenH define the logical screen previews
	// are computed against.
	defaultScreenW = 1920
	defaultScreenH = 1080

	// defaultCols and defaultRows define the character canvas previews are
	// drawn on.
	defaultCols = 78
	defaultRows = 22
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "quilt",
		Short:        "Quilt previews tiling window-manager layouts",
		Long:         `Quilt is a layout engine for tiling window managers. It computes window placements for fibonacci, tatami, and conditional layouts, and previews them in the terminal without a running window manager.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Commands read the logger from their context.
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		return nil
	}

	// Register all subcommands
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.layoutsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config Loading
// =============================================================================

// loadConfig returns the configuration for a command run. An explicit path
// must exist; the conventional path is optional.
func (c *CLI) loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	def, err := config.DefaultPath()
	if err != nil {
		return config.Defaults(), nil
	}
	if _, err := os.Stat(def); err != nil {
		return config.Defaults(), nil
	}
	c.Logger.Debug("loading config", "path", def)
	return config.Load(def)
}

// =============================================================================
// Cache Factory
// =============================================================================

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/quilt/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
