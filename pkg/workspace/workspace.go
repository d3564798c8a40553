// Package workspace implements the caller side of the layout contract.
//
// A [Workspace] owns one active [layout.Layout] and drives it the way a
// window manager would: [Workspace.Apply] on every geometry or membership
// change and [Workspace.Send] for runtime commands. Replacement layouts
// returned by either call are adopted automatically, so callers never need
// to track the active instance themselves. Observability hooks are emitted
// around both operations.
//
// A Workspace is owned by a single goroutine; it performs no locking.
// Sharing initial state across workspaces goes through [Workspace.Clone],
// which deep-copies the layout and assigns a fresh identity.
package workspace

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/quiltwm/quilt/pkg/geometry"
	"github.com/quiltwm/quilt/pkg/layout"
	"github.com/quiltwm/quilt/pkg/observability"
	"github.com/quiltwm/quilt/pkg/stack"
)

// Workspace holds the active layout for one workspace.
type Workspace struct {
	id     uuid.UUID
	name   string
	active layout.Layout
}

// New creates a workspace with the given display name and initial layout.
func New(name string, l layout.Layout) *Workspace {
	return &Workspace{
		id:     uuid.New(),
		name:   name,
		active: l,
	}
}

// ID returns the workspace's unique identity, used to correlate hook and
// log events. Clones receive fresh IDs.
func (w *Workspace) ID() uuid.UUID { return w.id }

// Name returns the workspace's display name.
func (w *Workspace) Name() string { return w.name }

// LayoutName returns the display label of the active layout.
func (w *Workspace) LayoutName() string { return w.active.Name() }

// Active returns the active layout. Callers must not retain the value
// across Apply/Send calls, since either may swap it.
func (w *Workspace) Active() layout.Layout { return w.active }

// Apply computes placements for the given stack within r using the active
// layout, adopting any replacement the layout signals.
func (w *Workspace) Apply(s *stack.Stack[layout.WindowID], r geometry.Rect) []layout.Placement {
	name := w.active.Name()
	observability.Layouts().OnLayoutStart(w.name, name, s.Len())
	start := time.Now()

	replacement, placements := w.active.Layout(s, r)
	w.adopt(replacement)

	observability.Layouts().OnLayoutComplete(w.name, name, len(placements), time.Since(start))
	return placements
}

// Send delivers a runtime command to the active layout, adopting any
// replacement it signals.
func (w *Workspace) Send(m layout.Message) {
	observability.Messages().OnMessage(w.name, w.active.Name(), fmt.Sprintf("%T", m.Body()))
	w.adopt(w.active.HandleMessage(m))
}

// SetLayout swaps the active layout directly, e.g. when the user cycles
// between configured layouts.
func (w *Workspace) SetLayout(l layout.Layout) {
	if l == nil || l == w.active {
		return
	}
	previous := w.active.Name()
	w.active = l
	observability.Layouts().OnLayoutReplaced(w.name, previous, l.Name())
}

// Clone duplicates the workspace under a new name: the layout state is
// deep-copied and the copy gets its own identity. Mutating either
// workspace's layout never affects the other.
func (w *Workspace) Clone(name string) *Workspace {
	return &Workspace{
		id:     uuid.New(),
		name:   name,
		active: w.active.Clone(),
	}
}

func (w *Workspace) adopt(replacement layout.Layout) {
	if replacement == nil || replacement == w.active {
		return
	}
	previous := w.active.Name()
	w.active = replacement
	observability.Layouts().OnLayoutReplaced(w.name, previous, replacement.Name())
}
