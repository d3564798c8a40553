package layout

import (
	"github.com/quiltwm/quilt/pkg/geometry"
	"github.com/quiltwm/quilt/pkg/stack"
)

// Predicate decides which of a Conditional's two delegates handles a layout
// call, based on the current stack and screen rect. Predicates must be pure:
// they are shared between a Conditional and its clones.
type Predicate func(s *stack.Stack[WindowID], r geometry.Rect) bool

// Conditional composes two layouts behind a predicate. On every layout call
// the predicate selects the left (true) or right (false) delegate, so a
// workspace can, for example, switch between a wide and a stacked layout as
// the screen geometry changes without the window manager knowing either
// concrete type.
type Conditional struct {
	name        string
	left, right Layout
	pred        Predicate
}

// NewConditional composes left and right behind pred under the given display
// name.
func NewConditional(name string, left, right Layout, pred Predicate) *Conditional {
	return &Conditional{name: name, left: left, right: right, pred: pred}
}

// Name implements [Layout].
func (c *Conditional) Name() string { return c.name }

// Clone implements [Layout]. Both delegates are deep-cloned; the predicate
// func value is shared.
func (c *Conditional) Clone() Layout {
	return &Conditional{
		name:  c.name,
		left:  c.left.Clone(),
		right: c.right.Clone(),
		pred:  c.pred,
	}
}

// Left returns the delegate selected when the predicate holds.
func (c *Conditional) Left() Layout { return c.left }

// Right returns the delegate selected when the predicate does not hold.
func (c *Conditional) Right() Layout { return c.right }

// Layout implements [Layout]. The predicate picks the active delegate, which
// computes the placements. A replacement signalled by the delegate is
// absorbed into its slot and the updated Conditional is returned as its own
// replacement, so delegates swap themselves transparently behind the
// combinator.
func (c *Conditional) Layout(s *stack.Stack[WindowID], r geometry.Rect) (Layout, []Placement) {
	var (
		rep Layout
		pos []Placement
	)
	if c.pred(s, r) {
		rep, pos = c.left.Layout(s, r)
		if rep != nil {
			c.left = rep
			return c, pos
		}
	} else {
		rep, pos = c.right.Layout(s, r)
		if rep != nil {
			c.right = rep
			return c, pos
		}
	}
	return nil, pos
}

// HandleMessage implements [Layout]. The message is forwarded to both
// delegates, since either may become active on a future call. Replacements
// signalled by a delegate land in that delegate's own slot, so both may
// replace themselves on the same message without ambiguity; when at least
// one did, the updated Conditional is returned as its own replacement.
func (c *Conditional) HandleMessage(m Message) Layout {
	replaced := false
	if rep := c.left.HandleMessage(m); rep != nil {
		c.left = rep
		replaced = true
	}
	if rep := c.right.HandleMessage(m); rep != nil {
		c.right = rep
		replaced = true
	}
	if replaced {
		return c
	}
	return nil
}
