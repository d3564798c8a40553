// Package pkg provides the core libraries for the quilt layout engine.
//
// # Overview
//
// Quilt computes window placements for tiling window managers. The pkg
// directory is organized into small, composable packages:
//
//  1. [geometry] - Integer screen rectangles and partitioning splits
//  2. [stack] - A focus-tracking client stack
//  3. [layout] - The Layout contract plus the fibonacci, tatami, and
//     conditional layouts
//  4. [workspace] - The caller side of the contract: owns the active layout
//     and adopts replacements
//  5. [config] - TOML configuration and layout construction
//
// Supporting packages: [errors] for coded errors, [observability] for
// lifecycle hooks, [cache] for preview memoization, and [buildinfo] for
// version stamping.
//
// # Architecture
//
// The typical data flow when a workspace changes:
//
//	window event (map/unmap/focus)
//	         ↓
//	    [stack] package (client order + focus)
//	         ↓
//	    [layout] package (stack + screen rect → placements)
//	         ↓
//	    [workspace] package (adopt replacement, emit hooks)
//	         ↓
//	    window positions
//
// # Quick Start
//
//	s := stack.New[layout.WindowID](1, 2, 3)
//	ws := workspace.New("main", layout.DefaultFibonacci())
//	placements := ws.Apply(s, geometry.NewRect(0, 0, 1920, 1080))
package pkg
