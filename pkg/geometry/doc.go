// Package geometry provides the pixel-rectangle primitives used by the
// layout algorithms.
//
// # Overview
//
// [Rect] is an immutable axis-aligned region with integer pixel coordinates.
// Every splitting operation produces new rectangles that exactly partition
// the input: their union reconstructs it and their pairwise intersection is
// empty. This partition invariant is what lets the layout algorithms tile a
// screen with no gaps and no overlaps.
//
// # Splitting
//
// Fractional splits ([Rect.SplitAtWidthPerc], [Rect.SplitAtHeightPerc])
// reject ratios outside [0, 1] with an INVALID_RATIO error. Absolute splits
// ([Rect.SplitAtWidth], [Rect.SplitAtHeight]) reject sizes beyond the
// available dimension with INVALID_SPLIT. Midpoint splits always succeed,
// even for degenerate zero-size rects.
//
// [Rect.AsRows] and [Rect.AsColumns] partition into n equal segments.
// Remainder pixels always land in the last segment; pixel-exact callers
// (and tests) rely on that rule.
//
// All operations are pure functions of their arguments and never panic.
package geometry
