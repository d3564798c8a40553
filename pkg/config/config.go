// Package config loads layout configuration from TOML files and builds
// layout instances from it.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/quiltwm/quilt/pkg/errors"
	"github.com/quiltwm/quilt/pkg/geometry"
	"github.com/quiltwm/quilt/pkg/layout"
	"github.com/quiltwm/quilt/pkg/stack"
)

// Config describes the configured layouts and which one starts active.
type Config struct {
	DefaultLayout string          `toml:"default_layout"`
	Fibonacci     FibonacciConfig `toml:"fibonacci"`
	Tatami        TatamiConfig    `toml:"tatami"`
	Conditional   CondConfig      `toml:"conditional"`
}

// FibonacciConfig holds parameters for the fibonacci layout.
type FibonacciConfig struct {
	Cutoff    int     `toml:"cutoff"`
	Ratio     float64 `toml:"ratio"`
	RatioStep float64 `toml:"ratio_step"`
}

// TatamiConfig holds parameters for the tatami layout.
type TatamiConfig struct {
	Ratio     float64 `toml:"ratio"`
	RatioStep float64 `toml:"ratio_step"`
}

// CondConfig holds parameters for the bundled conditional layout, which
// switches from tatami to fibonacci once the client count exceeds
// MaxClients.
type CondConfig struct {
	MaxClients int `toml:"max_clients"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		DefaultLayout: "fibonacci",
		Fibonacci: FibonacciConfig{
			Cutoff:    layout.DefaultFibonacciCutoff,
			Ratio:     layout.DefaultFibonacciRatio,
			RatioStep: layout.DefaultRatioStep,
		},
		Tatami: TatamiConfig{
			Ratio:     layout.DefaultTatamiRatio,
			RatioStep: layout.DefaultRatioStep,
		},
		Conditional: CondConfig{MaxClients: 6},
	}
}

// Load reads a TOML config from path, layering it over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultPath returns the conventional config location,
// $XDG_CONFIG_HOME/quilt/quilt.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidConfig, err, "locate config dir")
	}
	return filepath.Join(dir, "quilt", "quilt.toml"), nil
}

func (c Config) validate() error {
	if err := errors.ValidateRatio(c.Fibonacci.Ratio); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "fibonacci.ratio")
	}
	if err := errors.ValidateRatio(c.Tatami.Ratio); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "tatami.ratio")
	}
	if c.Fibonacci.Cutoff < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "fibonacci.cutoff must not be negative")
	}
	if c.Conditional.MaxClients < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "conditional.max_clients must not be negative")
	}
	return nil
}

// LayoutNames lists the layouts Build accepts, in menu order.
func LayoutNames() []string {
	return []string{"fibonacci", "tatami", "conditional"}
}

// Build constructs a fresh layout instance by config name.
func (c Config) Build(name string) (layout.Layout, error) {
	if err := errors.ValidateLayoutName(name); err != nil {
		return nil, err
	}
	switch name {
	case "fibonacci", "fibo":
		return layout.NewFibonacci(c.Fibonacci.Cutoff, c.Fibonacci.Ratio, c.Fibonacci.RatioStep), nil
	case "tatami":
		return layout.NewTatami(c.Tatami.Ratio, c.Tatami.RatioStep), nil
	case "conditional":
		max := c.Conditional.MaxClients
		small := layout.NewTatami(c.Tatami.Ratio, c.Tatami.RatioStep)
		large := layout.NewFibonacci(c.Fibonacci.Cutoff, c.Fibonacci.Ratio, c.Fibonacci.RatioStep)
		return layout.NewConditional("tatami?fibo", small, large,
			func(s *stack.Stack[layout.WindowID], _ geometry.Rect) bool {
				return s.Len() <= max
			}), nil
	default:
		return nil, errors.New(errors.ErrCodeUnknownLayout, "unknown layout %q", name)
	}
}
