package engine

import (
	"github.com/vhdlblocks/vhdlblocks/internal/block"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

// Context is the surface a Handler sees of the parser state.
type Context interface {
	// Token returns the current token.
	Token() token.Token
	// TokenID returns the ID of the current token. It stays the ID of
	// the original token after Replace.
	TokenID() token.ID
	// TokenAt returns any token of the stream.
	TokenAt(id token.ID) token.Token
	// Prev returns the predecessor of id.
	Prev(id token.ID) token.ID

	// Replace reclassifies the current token. The replacement is spliced
	// into the stream when the next token arrives. Replace returns the
	// replacement's ID, which blocks may use as a bound.
	Replace(kind token.Kind, kw token.Keyword) token.ID
	// Emit queues a block linked after the previously emitted one.
	Emit(kind block.Kind, start, end token.ID, multiPart bool) block.ID
	// LastBlock returns the most recently emitted block.
	LastBlock() block.Block

	// Push saves the active state, marker and counter, switches to s
	// and clears the marker.
	Push(s State)
	// Pop discards levels saved frames and restores the deepest one.
	// The current token is consumed unless the handler calls Reissue.
	Pop(levels int) error
	// SetNext switches the active state without saving anything.
	SetNext(s State)
	// Reissue hands the current token to the active state again once
	// the handler returns.
	Reissue()
	// State returns the active state.
	State() State
	// StateName returns the name of the active state.
	StateName() string

	// Marker returns the first token of the block being accumulated, or
	// token.None.
	Marker() token.ID
	// SetMarker moves the marker.
	SetMarker(id token.ID)
	// ClearMarker unsets the marker. It is set again to the next token
	// handed to a handler.
	ClearMarker()
	// Counter returns the per-state counter.
	Counter() int
	// SetCounter sets the per-state counter.
	SetCounter(n int)

	// Unexpected returns an error rejecting the current token. At the
	// end of the document it reports a premature end instead.
	Unexpected(expected string) error
	// Unsupported returns an error naming a construct that is recognised
	// but not parsed.
	Unsupported(construct string) error
}

// facade restricts handlers to the Context methods.
type facade struct {
	p *ParserState
}

var _ Context = facade{}

func (f facade) Token() token.Token { return f.p.tokens.Get(f.p.token) }

func (f facade) TokenID() token.ID { return f.p.token }

func (f facade) TokenAt(id token.ID) token.Token { return f.p.tokens.Get(id) }

func (f facade) Prev(id token.ID) token.ID { return f.p.tokens.Prev(id) }

func (f facade) Replace(kind token.Kind, kw token.Keyword) token.ID {
	return f.p.replace(kind, kw)
}

func (f facade) Emit(kind block.Kind, start, end token.ID, multiPart bool) block.ID {
	return f.p.emit(kind, start, end, multiPart)
}

func (f facade) LastBlock() block.Block { return f.p.blocks.Get(f.p.last) }

func (f facade) Push(s State) { f.p.push(s) }

func (f facade) Pop(levels int) error { return f.p.pop(levels) }

func (f facade) SetNext(s State) { f.p.setNext(s) }

func (f facade) Reissue() { f.p.reissue = true }

func (f facade) State() State { return f.p.state }

func (f facade) StateName() string { return f.p.table.Name(f.p.state) }

func (f facade) Marker() token.ID { return f.p.marker }

func (f facade) SetMarker(id token.ID) { f.p.marker = id }

func (f facade) ClearMarker() { f.p.marker = token.None }

func (f facade) Counter() int { return f.p.counter }

func (f facade) SetCounter(n int) { f.p.counter = n }

func (f facade) Unexpected(expected string) error {
	tok := f.Token()
	if tok.Kind == token.KindEndOfDocument {
		return &token.PrematureEndError{Token: tok, State: f.StateName()}
	}
	return &token.UnexpectedTokenError{Token: tok, State: f.StateName(), Expected: expected}
}

func (f facade) Unsupported(construct string) error {
	return &token.UnsupportedError{Token: f.Token(), Construct: construct}
}
