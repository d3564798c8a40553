package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quiltwm/quilt/pkg/cache"
	"github.com/quiltwm/quilt/pkg/config"
	"github.com/quiltwm/quilt/pkg/geometry"
	"github.com/quiltwm/quilt/pkg/layout"
	"github.com/quiltwm/quilt/pkg/observability"
	"github.com/quiltwm/quilt/pkg/stack"
	"github.com/quiltwm/quilt/pkg/workspace"
)

// previewOptions collects the preview command flags.
type previewOptions struct {
	layoutName string
	windows    int
	screenW    int
	screenH    int
	cols       int
	rows       int
	ratio      float64
	cutoff     int
	asJSON     bool
	output     string
	noCache    bool
	configPath string
}

// previewCommand creates the preview command for rendering layouts in the
// terminal.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a layout as an ASCII frame",
		Long: `Render a layout as an ASCII frame.

The preview command computes window placements for the chosen layout and a
synthetic stack of windows, then draws the frames as boxes on a character
canvas. Use --json to emit the raw placements instead.

Rendered frames are cached locally for faster repeated runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Flags left at their zero value fall back to the config.
			if !cmd.Flags().Changed("ratio") {
				opts.ratio = -1
			}
			if !cmd.Flags().Changed("cutoff") {
				opts.cutoff = -1
			}
			return c.runPreview(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.layoutName, "layout", "l", "", "layout to preview (default from config)")
	cmd.Flags().IntVarP(&opts.windows, "windows", "n", defaultWindows, "number of windows in the stack")
	cmd.Flags().IntVar(&opts.screenW, "screen-width", defaultScreenW, "logical screen width in pixels")
	cmd.Flags().IntVar(&opts.screenH, "screen-height", defaultScreenH, "logical screen height in pixels")
	cmd.Flags().IntVar(&opts.cols, "cols", defaultCols, "canvas width in characters")
	cmd.Flags().IntVar(&opts.rows, "rows", defaultRows, "canvas height in characters")
	cmd.Flags().Float64Var(&opts.ratio, "ratio", 0, "main split ratio override")
	cmd.Flags().IntVar(&opts.cutoff, "cutoff", 0, "fibonacci cutoff override in pixels")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit placements as JSON instead of a canvas")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write output to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/quilt/quilt.toml)")

	return cmd
}

// previewEntry is the cached form of one preview run: the rendered output
// plus the placement count the stats line reports.
type previewEntry struct {
	Placed int    `json:"placed"`
	Output []byte `json:"output"`
}

// previewResult is the JSON shape emitted by preview --json.
type previewResult struct {
	Layout     string             `json:"layout"`
	Screen     geometry.Rect      `json:"screen"`
	Windows    int                `json:"windows"`
	Placements []layout.Placement `json:"placements"`
}

// runPreview builds the layout, computes placements, and writes the canvas
// or JSON output.
func (c *CLI) runPreview(ctx context.Context, opts previewOptions) error {
	cfg, err := c.loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	applyOverrides(&cfg, opts)

	name := opts.layoutName
	if name == "" {
		name = cfg.DefaultLayout
	}

	store, err := newCache(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	key := cache.PreviewKey(name, opts.windows, opts.cols, opts.rows,
		opts.screenW, opts.screenH, opts.asJSON,
		cfg.Fibonacci, cfg.Tatami, cfg.Conditional)

	if data, ok, err := store.Get(ctx, key); err == nil && ok {
		var entry previewEntry
		if err := json.Unmarshal(data, &entry); err == nil {
			if err := writeOutput(opts.output, entry.Output); err != nil {
				return err
			}
			printStats(entry.Placed, opts.windows-entry.Placed, true)
			if opts.output != "" {
				printFile(opts.output)
			}
			return nil
		}
	}

	l, err := cfg.Build(name)
	if err != nil {
		return err
	}

	logger := loggerFromContext(ctx)
	hooks := newLogHooks(logger)
	observability.SetLayoutHooks(hooks)
	observability.SetMessageHooks(hooks)
	defer observability.Reset()

	ws := workspace.New("preview", l)
	s := syntheticStack(opts.windows)
	screen := geometry.NewRect(0, 0, opts.screenW, opts.screenH)

	prog := newProgress(logger)
	placements := ws.Apply(s, screen)
	prog.done(fmt.Sprintf("Placed %d of %d windows", len(placements), opts.windows))

	var data []byte
	if opts.asJSON {
		data, err = json.MarshalIndent(previewResult{
			Layout:     ws.LayoutName(),
			Screen:     screen,
			Windows:    opts.windows,
			Placements: placements,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("encode placements: %w", err)
		}
		data = append(data, '\n')
	} else {
		canvas := styleCanvas.Render(renderCanvas(placements, screen, opts.cols, opts.rows))
		data = []byte(canvas + "\n" + renderPlacementTable(placements) + "\n")
	}

	if encoded, err := json.Marshal(previewEntry{Placed: len(placements), Output: data}); err == nil {
		if err := store.Set(ctx, key, encoded, 0); err != nil {
			logger.Debug("cache write failed", "err", err)
		}
	}

	if err := writeOutput(opts.output, data); err != nil {
		return err
	}
	printStats(len(placements), opts.windows-len(placements), false)
	if opts.output != "" {
		printSuccess("Preview written")
		printFile(opts.output)
	}
	return nil
}

// applyOverrides layers flag values over the loaded config.
func applyOverrides(cfg *config.Config, opts previewOptions) {
	if opts.ratio >= 0 {
		cfg.Fibonacci.Ratio = opts.ratio
		cfg.Tatami.Ratio = opts.ratio
	}
	if opts.cutoff >= 0 {
		cfg.Fibonacci.Cutoff = opts.cutoff
	}
}

// syntheticStack creates a stack of n sequential window handles.
func syntheticStack(n int) *stack.Stack[layout.WindowID] {
	ids := make([]layout.WindowID, n)
	for i := range ids {
		ids[i] = layout.WindowID(i + 1)
	}
	return stack.New(ids...)
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
