package engine

import "fmt"

// State is an enumerated parser state. The grammar defines the values;
// the engine only dispatches on them.
type State int

// Handler processes the current token for one state. It may emit blocks,
// replace the token, move the marker and change state through ctx.
type Handler func(ctx Context) error

// Table maps states to handlers and names.
type Table struct {
	names    []string
	handlers []Handler
}

// Bind registers the handler and name for a state.
func (t *Table) Bind(s State, name string, h Handler) {
	if int(s) >= len(t.handlers) {
		n := int(s) + 1
		t.names = append(t.names, make([]string, n-len(t.names))...)
		t.handlers = append(t.handlers, make([]Handler, n-len(t.handlers))...)
	}
	t.names[s] = name
	t.handlers[s] = h
}

// Name returns the registered name of s, or State(n) when unbound.
func (t *Table) Name(s State) string {
	if s >= 0 && int(s) < len(t.names) && t.names[s] != "" {
		return t.names[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Handler returns the handler bound to s.
func (t *Table) Handler(s State) (Handler, bool) {
	if s < 0 || int(s) >= len(t.handlers) || t.handlers[s] == nil {
		return nil, false
	}
	return t.handlers[s], true
}

// Len returns one past the highest bound state.
func (t *Table) Len() int {
	return len(t.handlers)
}
