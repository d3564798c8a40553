package layout

import (
	"testing"

	"github.com/quiltwm/quilt/pkg/geometry"
)

func TestTatamiTwoWindows(t *testing.T) {
	tt := DefaultTatami()
	screen := geometry.Rect{X: 0, Y: 0, W: 100, H: 50}

	rep, got := tt.Layout(windows(2), screen)
	if rep != nil {
		t.Fatalf("leaf layout returned replacement %v", rep)
	}

	want := []Placement{
		{Window: 1, Frame: geometry.Rect{X: 0, Y: 0, W: 60, H: 50}},
		{Window: 2, Frame: geometry.Rect{X: 60, Y: 0, W: 40, H: 50}},
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("placements = %v, want %v", got, want)
	}
}

// TestTatamiTemplates pins the exact frames of every template on a 120x100
// screen, where the default ratio gives a 72px main column and a 48px side.
func TestTatamiTemplates(t *testing.T) {
	screen := geometry.Rect{X: 0, Y: 0, W: 120, H: 100}

	tests := []struct {
		name   string
		n      int
		frames []geometry.Rect
	}{
		{
			name: "one window fills the screen",
			n:    1,
			frames: []geometry.Rect{
				{X: 0, Y: 0, W: 120, H: 100},
			},
		},
		{
			name: "two windows split main and side",
			n:    2,
			frames: []geometry.Rect{
				{X: 0, Y: 0, W: 72, H: 100},
				{X: 72, Y: 0, W: 48, H: 100},
			},
		},
		{
			name: "three windows stack the side",
			n:    3,
			frames: []geometry.Rect{
				{X: 0, Y: 0, W: 72, H: 100},
				{X: 72, Y: 0, W: 48, H: 50},
				{X: 72, Y: 50, W: 48, H: 50},
			},
		},
		{
			name: "four windows split the bottom row",
			n:    4,
			frames: []geometry.Rect{
				{X: 0, Y: 0, W: 72, H: 100},
				{X: 72, Y: 0, W: 48, H: 50},
				{X: 72, Y: 50, W: 24, H: 50},
				{X: 96, Y: 50, W: 24, H: 50},
			},
		},
		{
			name: "five windows merge the middle rows",
			n:    5,
			frames: []geometry.Rect{
				{X: 0, Y: 0, W: 72, H: 100},
				{X: 72, Y: 0, W: 48, H: 25},
				{X: 72, Y: 25, W: 24, H: 50},
				{X: 96, Y: 25, W: 24, H: 50},
				{X: 72, Y: 75, W: 48, H: 25},
			},
		},
		{
			name: "six windows interlock the mats",
			n:    6,
			frames: []geometry.Rect{
				{X: 0, Y: 0, W: 72, H: 100},
				{X: 72, Y: 0, W: 16, H: 75},
				{X: 88, Y: 0, W: 32, H: 25},
				{X: 88, Y: 25, W: 16, H: 50},
				{X: 104, Y: 25, W: 16, H: 75},
				{X: 72, Y: 75, W: 32, H: 25},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tt := DefaultTatami()
			s := windows(tc.n)

			_, got := tt.Layout(s, screen)
			if len(got) != len(tc.frames) {
				t.Fatalf("got %d placements, want %d: %v", len(got), len(tc.frames), got)
			}
			for i, want := range tc.frames {
				if got[i].Window != WindowID(i+1) || got[i].Frame != want {
					t.Errorf("placement %d = %v/%v, want %v/%v",
						i, got[i].Window, got[i].Frame, WindowID(i+1), want)
				}
			}
			assertValidPlacements(t, s, screen, got)
			assertExactCover(t, screen, got)
		})
	}
}

func TestTatamiEmptyStack(t *testing.T) {
	tt := DefaultTatami()
	if _, got := tt.Layout(windows(0), geometry.Rect{W: 100, H: 100}); got != nil {
		t.Errorf("empty stack placements = %v, want nil", got)
	}
}

func TestTatamiCapacity(t *testing.T) {
	for _, n := range []int{7, 8, 12} {
		tt := DefaultTatami()
		s := windows(n)

		_, got := tt.Layout(s, geometry.Rect{W: 1200, H: 800})
		if len(got) != 6 {
			t.Fatalf("n=%d: got %d placements, want 6", n, len(got))
		}
		// The placed windows are exactly the first six in tiling order;
		// the omitted ones are the trailing n-6.
		for i, p := range got {
			if p.Window != WindowID(i+1) {
				t.Errorf("n=%d: placement %d = window %d, want %d", n, i, p.Window, i+1)
			}
		}
	}
}

func TestTatamiRatioMessages(t *testing.T) {
	tt := DefaultTatami()

	tt.HandleMessage(NewMessage(ShrinkMain{}))
	if got := tt.Ratio(); got < 0.49 || got > 0.51 {
		t.Errorf("ratio after shrink = %v, want 0.5", got)
	}

	for i := 0; i < 10; i++ {
		tt.HandleMessage(NewMessage(ExpandMain{}))
	}
	if got := tt.Ratio(); got != 1 {
		t.Errorf("ratio = %v, want clamped to 1", got)
	}

	for i := 0; i < 20; i++ {
		tt.HandleMessage(NewMessage(ShrinkMain{}))
	}
	if got := tt.Ratio(); got != 0 {
		t.Errorf("ratio = %v, want clamped to 0", got)
	}
}

func TestTatamiExtremeRatios(t *testing.T) {
	screen := geometry.Rect{W: 300, H: 200}
	for _, ratio := range []float64{0, 1} {
		tt := NewTatami(ratio, 0.1)
		for n := 1; n <= 6; n++ {
			s := windows(n)
			_, got := tt.Layout(s, screen)
			if len(got) != n {
				t.Errorf("ratio=%v n=%d: got %d placements", ratio, n, len(got))
			}
			assertValidPlacements(t, s, screen, got)
		}
	}
}

func TestTatamiCloneIndependence(t *testing.T) {
	orig := DefaultTatami()
	cp := orig.Clone()

	cp.HandleMessage(NewMessage(ExpandMain{}))

	if orig.Ratio() != DefaultTatamiRatio {
		t.Errorf("original ratio = %v after mutating clone, want %v", orig.Ratio(), DefaultTatamiRatio)
	}
}
