// Package layout implements the pluggable tiling strategies of the quilt
// layout engine.
//
// # Overview
//
// A [Layout] computes non-overlapping screen placements for the windows of
// an ordered focus collection ([stack.Stack]) inside an available
// [geometry.Rect]. The window manager holds one active Layout per workspace
// and calls [Layout.Layout] on every geometry or membership change. Runtime
// commands reach a layout through [Layout.HandleMessage] as type-erased
// [Message] values; unrecognized kinds are ignored by contract.
//
// Both calls may return a replacement Layout. A non-nil replacement must be
// adopted by the caller for all future calls; nil means the current
// instance stays active. The [pkg/workspace] package implements that
// caller-side protocol.
//
// # Strategies
//
//   - [Fibonacci]: recursive binary subdivision in a pinwheel spiral with a
//     minimum-size cutoff.
//   - [Tatami]: six fixed mat templates beside a main column; windows past
//     the sixth are hidden.
//   - [Conditional]: composes two layouts behind a [Predicate], selecting
//     one per call.
//
// All strategies are pure, synchronous and panic-free: every call is a
// function of its arguments and the receiver's own tunable state, which
// stays within its documented bounds under any message sequence.
package layout
