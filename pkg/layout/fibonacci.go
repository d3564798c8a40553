package layout

import (
	"github.com/quiltwm/quilt/pkg/geometry"
	"github.com/quiltwm/quilt/pkg/stack"
)

// Default Fibonacci parameters.
const (
	DefaultFibonacciCutoff = 40
	DefaultFibonacciRatio  = 0.5
	DefaultRatioStep       = 0.1
)

// Fibonacci is a recursive binary-subdivision layout inspired by the
// fibonacci patch for dwm. The first window takes a vertical slice of the
// screen and each following window subdivides what remains, alternating
// between horizontal and vertical cuts, producing a pinwheel spiral:
//
//	....................................
//	.                  .               .
//	.                  .               .
//	.                  .               .
//	.                  .               .
//	.                  .................
//	.                  .       .       .
//	.                  .       .       .
//	.                  .       .........
//	.                  .       .   .   .
//	....................................
//
// Subdivision stops once a region's width or height drops to the cutoff;
// the window reaching the cutoff absorbs the rest of the screen and any
// remaining windows are left unplaced. The main/secondary ratio responds to
// [ExpandMain] and [ShrinkMain] messages.
type Fibonacci struct {
	cutoff    int
	ratio     float64
	ratioStep float64
}

// NewFibonacci creates a Fibonacci layout. cutoff is the minimum pixel
// dimension a region may reach before subdivision stops; ratio is the
// fraction given to the primary region of each cut; ratioStep is how far
// expand/shrink messages move the ratio. The ratio is clamped to [0, 1].
func NewFibonacci(cutoff int, ratio, ratioStep float64) *Fibonacci {
	return &Fibonacci{
		cutoff:    cutoff,
		ratio:     clamp01(ratio),
		ratioStep: ratioStep,
	}
}

// DefaultFibonacci creates a Fibonacci layout with the standard parameters
// (cutoff 40px, ratio 0.5, step 0.1).
func DefaultFibonacci() *Fibonacci {
	return NewFibonacci(DefaultFibonacciCutoff, DefaultFibonacciRatio, DefaultRatioStep)
}

// Name implements [Layout].
func (f *Fibonacci) Name() string { return "fibo" }

// Clone implements [Layout].
func (f *Fibonacci) Clone() Layout {
	cp := *f
	return &cp
}

// Ratio returns the current main/secondary split ratio.
func (f *Fibonacci) Ratio() float64 { return f.ratio }

// Layout implements [Layout]. Windows are processed in tiling order; the
// region pair alternates between width and height cuts. The last window, or
// the first one whose region hits the cutoff, absorbs the remainder so the
// screen is always covered exactly; any windows after it are unplaced.
func (f *Fibonacci) Layout(s *stack.Stack[WindowID], r geometry.Rect) (Layout, []Placement) {
	n := s.Len()
	if n == 0 {
		return nil, nil
	}

	positions := make([]Placement, 0, n)

	// Ratio state is clamped on construction and on every mutation, so the
	// fractional splits below cannot fail.
	r1, r2, _ := r.SplitAtWidthPerc(f.ratio)

	for i, id := range s.Items() {
		terminal := i == n-1 || r1.W <= f.cutoff || r1.H <= f.cutoff
		if terminal {
			if i%2 == 0 {
				r1.W += r2.W
			} else {
				r1.H += r2.H
			}
		}

		positions = append(positions, Placement{Window: id, Frame: r1})

		if terminal {
			break
		}

		if i%2 == 0 {
			r1, r2, _ = r2.SplitAtHeightPerc(f.ratio)
		} else {
			r1, r2, _ = r2.SplitAtWidthPerc(f.ratio)
		}
	}

	return nil, positions
}

// HandleMessage implements [Layout]. ExpandMain and ShrinkMain adjust the
// ratio by one step, clamped to [0, 1]; every other kind is ignored.
func (f *Fibonacci) HandleMessage(m Message) Layout {
	switch m.Body().(type) {
	case ExpandMain:
		f.ratio = clamp01(f.ratio + f.ratioStep)
	case ShrinkMain:
		f.ratio = clamp01(f.ratio - f.ratioStep)
	}
	return nil
}
