package layout

import (
	"github.com/quiltwm/quilt/pkg/geometry"
	"github.com/quiltwm/quilt/pkg/stack"
)

// DefaultTatamiRatio is the default fraction of the screen width given to
// the Tatami main column.
const DefaultTatamiRatio = 0.6

// tatamiCapacity is the number of fixed templates available. Windows beyond
// the capacity are hidden, not an error.
const tatamiCapacity = 6

// Tatami is a fixed-template layout inspired by the tatami patch for dwm.
// It hosts up to six windows: the first always fills a main column on the
// left, and the side column is carved into one of six mat patterns depending
// on how many windows are visible:
//
//	...........................   ...........................
//	.            .            .   .            .     .      .
//	.            .     2      .   .            .  3  .......
//	.            .            .   .            .......     .
//	.     1      ..............   .     1      .  2  .  4  .
//	.            .            .   .            ......... 5 .
//	.            .     3      .   .            .   6   .   .
//	...........................   ...........................
//
// Windows past the sixth are hidden. The main column width responds to
// [ExpandMain] and [ShrinkMain] messages.
type Tatami struct {
	ratio     float64
	ratioStep float64
}

// NewTatami creates a Tatami layout with the given main-column ratio and
// message step. The ratio is clamped to [0, 1].
func NewTatami(ratio, ratioStep float64) *Tatami {
	return &Tatami{ratio: clamp01(ratio), ratioStep: ratioStep}
}

// DefaultTatami creates a Tatami layout with the standard parameters
// (ratio 0.6, step 0.1).
func DefaultTatami() *Tatami {
	return NewTatami(DefaultTatamiRatio, DefaultRatioStep)
}

// Name implements [Layout].
func (t *Tatami) Name() string { return "|+|" }

// Clone implements [Layout].
func (t *Tatami) Clone() Layout {
	cp := *t
	return &cp
}

// Ratio returns the current main-column ratio.
func (t *Tatami) Ratio() float64 { return t.ratio }

// Layout implements [Layout]. Only the first six windows in tiling order
// receive placements; the rest are hidden by policy.
func (t *Tatami) Layout(s *stack.Stack[WindowID], r geometry.Rect) (Layout, []Placement) {
	splitMain := func() (geometry.Rect, geometry.Rect) {
		// ratio is clamped, so the absolute width never exceeds r.W.
		main, side, _ := r.SplitAtWidth(int(float64(r.W) * t.ratio))
		return main, side
	}

	n := s.Len()
	if n > tatamiCapacity {
		n = tatamiCapacity
	}

	var frames []geometry.Rect
	switch n {
	case 0:
		return nil, nil

	case 1:
		frames = []geometry.Rect{r}

	case 2:
		main, side := splitMain()
		frames = []geometry.Rect{main, side}

	case 3:
		main, side := splitMain()
		top, bottom := side.SplitAtMidHeight()
		frames = []geometry.Rect{main, top, bottom}

	case 4:
		main, side := splitMain()
		top, bottom := side.SplitAtMidHeight()
		bottomLeft, bottomRight := bottom.SplitAtMidWidth()
		frames = []geometry.Rect{main, top, bottomLeft, bottomRight}

	case 5:
		main, side := splitMain()
		rows := side.AsRows(4)
		mid := rows[1]
		mid.H += rows[2].H
		midLeft, midRight := mid.SplitAtMidWidth()
		frames = []geometry.Rect{main, rows[0], midLeft, midRight, rows[3]}

	case 6:
		main, side := splitMain()
		cols := side.AsColumns(3)
		quarter := main.H / 4

		left, centre, right := cols[0], cols[1], cols[2]
		left.H -= quarter
		centre.H -= 2 * quarter
		centre.Y += quarter
		right.H -= quarter
		right.Y += quarter

		topBand := geometry.Rect{X: left.X + left.W, Y: left.Y, W: left.W * 2, H: quarter}
		bottomBand := geometry.Rect{X: left.X, Y: left.Y + left.H, W: left.W * 2, H: quarter}

		frames = []geometry.Rect{main, left, topBand, centre, right, bottomBand}
	}

	return nil, apply(s, frames)
}

// HandleMessage implements [Layout]. ExpandMain and ShrinkMain adjust the
// main-column ratio by one step, clamped to [0, 1]; every other kind is
// ignored.
func (t *Tatami) HandleMessage(m Message) Layout {
	switch m.Body().(type) {
	case ExpandMain:
		t.ratio = clamp01(t.ratio + t.ratioStep)
	case ShrinkMain:
		t.ratio = clamp01(t.ratio - t.ratioStep)
	}
	return nil
}
