package cli

import (
	"strings"
	"testing"

	"github.com/quiltwm/quilt/pkg/config"
)

func TestLayoutParams(t *testing.T) {
	cfg := config.Defaults()
	cfg.Fibonacci.Cutoff = 80
	cfg.Conditional.MaxClients = 4

	tests := []struct {
		name string
		want []string
	}{
		{"fibonacci", []string{"cutoff 80px", "ratio 0.50", "step 0.10"}},
		{"tatami", []string{"ratio 0.60", "step 0.10"}},
		{"conditional", []string{"max clients 4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := layoutParams(cfg, tt.name)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("layoutParams(%q) = %q, missing %q", tt.name, got, want)
				}
			}
		})
	}

	if got := layoutParams(cfg, "spiral"); got != "" {
		t.Errorf("unknown layout should format empty, got %q", got)
	}
}

func TestLayoutDescriptionsCoverAllLayouts(t *testing.T) {
	for _, name := range config.LayoutNames() {
		if layoutDescriptions[name] == "" {
			t.Errorf("layout %q has no description", name)
		}
	}
}
