package layout

import (
	"testing"

	"github.com/quiltwm/quilt/pkg/geometry"
	"github.com/quiltwm/quilt/pkg/stack"
)

// tagJump is a message kind defined outside this package's recognized set,
// standing in for commands other layouts might understand.
type tagJump struct{ tag int }

func TestAsMessage(t *testing.T) {
	m := NewMessage(tagJump{tag: 3})

	if got, ok := AsMessage[tagJump](m); !ok || got.tag != 3 {
		t.Errorf("AsMessage[tagJump] = %v, %v", got, ok)
	}
	if _, ok := AsMessage[ExpandMain](m); ok {
		t.Error("AsMessage[ExpandMain] should not match a tagJump body")
	}
	if body, ok := NewMessage(ExpandMain{}).Body().(ExpandMain); !ok {
		t.Errorf("Body() = %v, want ExpandMain", body)
	}
}

func TestUnrecognizedMessageLeavesFibonacciUnchanged(t *testing.T) {
	f := NewFibonacci(25, 0.35, 0.05)
	before := *f

	if rep := f.HandleMessage(NewMessage(tagJump{tag: 9})); rep != nil {
		t.Errorf("HandleMessage returned replacement %v for unrecognized kind", rep)
	}
	if *f != before {
		t.Errorf("state changed by unrecognized message: %+v != %+v", *f, before)
	}
}

func TestUnrecognizedMessageLeavesTatamiUnchanged(t *testing.T) {
	tt := NewTatami(0.7, 0.2)
	before := *tt

	if rep := tt.HandleMessage(NewMessage("free-form string")); rep != nil {
		t.Errorf("HandleMessage returned replacement %v for unrecognized kind", rep)
	}
	if *tt != before {
		t.Errorf("state changed by unrecognized message: %+v != %+v", *tt, before)
	}
}

func TestUnrecognizedMessageLeavesConditionalUnchanged(t *testing.T) {
	left, right := DefaultFibonacci(), DefaultTatami()
	c := NewConditional("either", left, right,
		func(_ *stack.Stack[WindowID], r geometry.Rect) bool { return r.W >= r.H })
	lBefore, rBefore := *left, *right

	if rep := c.HandleMessage(NewMessage(tagJump{})); rep != nil {
		t.Errorf("HandleMessage returned replacement %v for unrecognized kind", rep)
	}
	if *left != lBefore || *right != rBefore {
		t.Error("delegate state changed by unrecognized message")
	}
}
