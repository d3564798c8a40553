package geometry

import (
	"fmt"

	"github.com/quiltwm/quilt/pkg/errors"
)

// Rect is an axis-aligned pixel region. X and Y locate the top-left corner;
// W and H are non-negative extents. Rect is an immutable value: every
// operation returns new rectangles and leaves the receiver untouched.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a Rect from a top-left corner and extents.
// Negative extents are clamped to zero.
func NewRect(x, y, w, h int) Rect {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: x, Y: y, W: w, H: h}
}

// String renders the rect in X11 geometry notation ("WxH+X+Y").
func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.W, r.H, r.X, r.Y)
}

// Area returns the number of pixels covered by the rect.
func (r Rect) Area() int { return r.W * r.H }

// Empty reports whether the rect covers no pixels.
func (r Rect) Empty() bool { return r.W == 0 || r.H == 0 }

// SplitAtWidthPerc splits the rect vertically at fraction p of its width.
// The first result keeps the original corner; the second covers the rest.
// Together the results exactly reconstruct the receiver. Returns an
// INVALID_RATIO error when p is outside [0, 1].
func (r Rect) SplitAtWidthPerc(p float64) (Rect, Rect, error) {
	if err := errors.ValidateRatio(p); err != nil {
		return Rect{}, Rect{}, err
	}
	return r.splitAtWidth(int(float64(r.W) * p)), r.remainderRight(int(float64(r.W) * p)), nil
}

// SplitAtHeightPerc splits the rect horizontally at fraction p of its height.
// Semantics mirror SplitAtWidthPerc.
func (r Rect) SplitAtHeightPerc(p float64) (Rect, Rect, error) {
	if err := errors.ValidateRatio(p); err != nil {
		return Rect{}, Rect{}, err
	}
	h := int(float64(r.H) * p)
	return Rect{X: r.X, Y: r.Y, W: r.W, H: h},
		Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h},
		nil
}

// SplitAtWidth splits the rect vertically at an absolute pixel width.
// Returns an INVALID_SPLIT error when w exceeds the rect's width.
func (r Rect) SplitAtWidth(w int) (Rect, Rect, error) {
	if w < 0 || w > r.W {
		return Rect{}, Rect{}, errors.New(errors.ErrCodeInvalidSplit,
			"split width %d outside rect width %d", w, r.W)
	}
	return r.splitAtWidth(w), r.remainderRight(w), nil
}

// SplitAtHeight splits the rect horizontally at an absolute pixel height.
// Returns an INVALID_SPLIT error when h exceeds the rect's height.
func (r Rect) SplitAtHeight(h int) (Rect, Rect, error) {
	if h < 0 || h > r.H {
		return Rect{}, Rect{}, errors.New(errors.ErrCodeInvalidSplit,
			"split height %d outside rect height %d", h, r.H)
	}
	return Rect{X: r.X, Y: r.Y, W: r.W, H: h},
		Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h},
		nil
}

// SplitAtMidWidth splits the rect into equal left and right halves.
// Always succeeds; odd widths leave the extra pixel on the right half and a
// zero width yields two degenerate but valid rects.
func (r Rect) SplitAtMidWidth() (Rect, Rect) {
	w := r.W / 2
	return r.splitAtWidth(w), r.remainderRight(w)
}

// SplitAtMidHeight splits the rect into equal top and bottom halves.
// Always succeeds; odd heights leave the extra pixel on the bottom half.
func (r Rect) SplitAtMidHeight() (Rect, Rect) {
	h := r.H / 2
	return Rect{X: r.X, Y: r.Y, W: r.W, H: h},
		Rect{X: r.X, Y: r.Y + h, W: r.W, H: r.H - h}
}

// AsRows partitions the rect into n equal-height rows, top to bottom.
// Remainder pixels are assigned to the last row so the heights always sum
// to the original height. n <= 1 returns the rect itself.
func (r Rect) AsRows(n int) []Rect {
	if n <= 1 {
		return []Rect{r}
	}
	h := r.H / n
	rows := make([]Rect, n)
	for i := 0; i < n; i++ {
		rows[i] = Rect{X: r.X, Y: r.Y + i*h, W: r.W, H: h}
	}
	rows[n-1].H = r.H - (n-1)*h
	return rows
}

// AsColumns partitions the rect into n equal-width columns, left to right.
// Remainder pixels are assigned to the last column so the widths always sum
// to the original width. n <= 1 returns the rect itself.
func (r Rect) AsColumns(n int) []Rect {
	if n <= 1 {
		return []Rect{r}
	}
	w := r.W / n
	cols := make([]Rect, n)
	for i := 0; i < n; i++ {
		cols[i] = Rect{X: r.X + i*w, Y: r.Y, W: w, H: r.H}
	}
	cols[n-1].W = r.W - (n-1)*w
	return cols
}

func (r Rect) splitAtWidth(w int) Rect {
	return Rect{X: r.X, Y: r.Y, W: w, H: r.H}
}

func (r Rect) remainderRight(w int) Rect {
	return Rect{X: r.X + w, Y: r.Y, W: r.W - w, H: r.H}
}
