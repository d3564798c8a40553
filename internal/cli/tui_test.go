package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quiltwm/quilt/pkg/config"
	"github.com/quiltwm/quilt/pkg/layout"
)

func demoModel(t *testing.T) DemoModel {
	t.Helper()
	m, err := NewDemoModel(config.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func press(m DemoModel, key string) DemoModel {
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return updated.(DemoModel)
}

func TestDemoModelWindowKeys(t *testing.T) {
	m := demoModel(t)

	if got := m.stack.Len(); got != 4 {
		t.Fatalf("initial window count = %d, want 4", got)
	}

	m = press(m, "+")
	if got := m.stack.Len(); got != 5 {
		t.Errorf("after +: %d windows, want 5", got)
	}

	m = press(m, "-")
	if got := m.stack.Len(); got != 4 {
		t.Errorf("after -: %d windows, want 4", got)
	}

	// The last window cannot be removed.
	for i := 0; i < 10; i++ {
		m = press(m, "-")
	}
	if got := m.stack.Len(); got != 1 {
		t.Errorf("after removing all: %d windows, want 1", got)
	}
}

func TestDemoModelFocusKeys(t *testing.T) {
	m := demoModel(t)

	before, _ := m.stack.Focused()
	m = press(m, "j")
	afterNext, _ := m.stack.Focused()
	if afterNext == before {
		t.Error("j should move focus")
	}

	m = press(m, "k")
	afterPrev, _ := m.stack.Focused()
	if afterPrev != before {
		t.Errorf("k should move focus back to %d, got %d", before, afterPrev)
	}
}

func TestDemoModelRatioKeys(t *testing.T) {
	m := demoModel(t)

	fib := m.ws.Active().(*layout.Fibonacci)
	start := fib.Ratio()

	m = press(m, "l")
	if got := m.ws.Active().(*layout.Fibonacci).Ratio(); got <= start {
		t.Errorf("l should widen the main region: %v -> %v", start, got)
	}

	m = press(m, "h")
	m = press(m, "h")
	if got := m.ws.Active().(*layout.Fibonacci).Ratio(); got >= start {
		t.Errorf("h should narrow the main region: %v -> %v", start, got)
	}
}

func TestDemoModelViewAtFullRatio(t *testing.T) {
	m := demoModel(t)

	// Expanding past the clamp leaves the main region at ratio 1.0; the
	// view must still render.
	for i := 0; i < 10; i++ {
		m = press(m, "l")
	}
	if got := m.ws.Active().(*layout.Fibonacci).Ratio(); got != 1.0 {
		t.Fatalf("ratio = %v, want 1.0", got)
	}

	view := m.View()
	if !strings.Contains(view, "┌") {
		t.Error("view should still include the rendered canvas")
	}
}

func TestDemoModelLayoutCycle(t *testing.T) {
	m := demoModel(t)

	seen := map[string]bool{m.ws.LayoutName(): true}
	for i := 0; i < len(config.LayoutNames())-1; i++ {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = updated.(DemoModel)
		seen[m.ws.LayoutName()] = true
	}

	if len(seen) != len(config.LayoutNames()) {
		t.Errorf("tab should cycle all layouts, saw %v", seen)
	}
}

func TestDemoModelQuit(t *testing.T) {
	m := demoModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestDemoModelView(t *testing.T) {
	m := demoModel(t)

	view := m.View()
	if !strings.Contains(view, "quilt demo") {
		t.Error("view should include the title")
	}
	if !strings.Contains(view, "4 windows") {
		t.Error("view should include the window count")
	}
	if !strings.Contains(view, "┌") {
		t.Error("view should include the rendered canvas")
	}
}

func TestDemoModelResize(t *testing.T) {
	m := demoModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(DemoModel)
	if m.cols != 118 || m.rows != 34 {
		t.Errorf("canvas = %dx%d, want 118x34", m.cols, m.rows)
	}

	// Tiny terminals clamp to the minimum canvas.
	updated, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	m = updated.(DemoModel)
	if m.cols != 20 || m.rows != 6 {
		t.Errorf("clamped canvas = %dx%d, want 20x6", m.cols, m.rows)
	}
}
