package layout

// Message is a type-erased envelope carrying one runtime command for a
// layout. The set of command kinds is open: any value can be wrapped, and
// layouts inspect the body by its concrete type, silently ignoring kinds
// they do not recognize. Ignoring a message is a defined policy, not an
// error.
type Message struct {
	body any
}

// NewMessage wraps a command value in a Message envelope.
func NewMessage(body any) Message {
	return Message{body: body}
}

// Body returns the wrapped command value for type-switch inspection.
func (m Message) Body() any { return m.body }

// AsMessage extracts the message body as T, reporting whether the body is of
// that kind.
func AsMessage[T any](m Message) (T, bool) {
	v, ok := m.body.(T)
	return v, ok
}

// ExpandMain asks a layout to grow the fraction of the screen given to its
// main region by one ratio step.
type ExpandMain struct{}

// ShrinkMain asks a layout to shrink the fraction of the screen given to its
// main region by one ratio step.
type ShrinkMain struct{}
