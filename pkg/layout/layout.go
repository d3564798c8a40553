package layout

import (
	"github.com/quiltwm/quilt/pkg/geometry"
	"github.com/quiltwm/quilt/pkg/stack"
)

// WindowID is an opaque window identifier supplied by the window manager.
type WindowID uint32

// Placement pairs a window with the screen region assigned to it.
type Placement struct {
	Window WindowID
	Frame  geometry.Rect
}

// Layout is the contract every tiling strategy satisfies.
//
// A Layout instance is owned by a single workspace and never called
// concurrently. Both Layout and HandleMessage may return a replacement
// Layout; when the returned value is non-nil the caller must adopt it as the
// active layout for all future calls. Concrete leaf algorithms return nil
// from Layout and signal replacements, if ever, from HandleMessage only.
type Layout interface {
	// Name returns a short display label. Names are not unique.
	Name() string

	// Clone returns an independent copy carrying identical state. Mutating
	// the copy must never affect the original.
	Clone() Layout

	// Layout computes placements for the stack's members within r. Windows
	// may be omitted from the result (hidden), but no window absent from
	// the stack may appear, no window appears twice, and every frame
	// derives from r. The computation is deterministic for identical stack
	// contents, order, and rect.
	Layout(s *stack.Stack[WindowID], r geometry.Rect) (Layout, []Placement)

	// HandleMessage inspects m by its concrete kind. Recognized kinds
	// mutate internal state; unrecognized kinds leave state untouched.
	// Neither case is an error.
	HandleMessage(m Message) Layout
}

// apply pairs the stack's members, in tiling order, with the given frames.
// When counts differ the shorter side wins: extra frames are dropped and
// extra windows stay unplaced.
func apply(s *stack.Stack[WindowID], frames []geometry.Rect) []Placement {
	ids := s.Items()
	n := len(ids)
	if len(frames) < n {
		n = len(frames)
	}
	if n == 0 {
		return nil
	}
	out := make([]Placement, n)
	for i := 0; i < n; i++ {
		out[i] = Placement{Window: ids[i], Frame: frames[i]}
	}
	return out
}

// clamp01 keeps ratio state within the closed interval [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
