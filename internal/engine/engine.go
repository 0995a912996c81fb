// Package engine implements the streaming token-to-block state machine.
//
// A ParserState pulls tokens from a Source one at a time and hands each to
// the handler of the active state. Handlers reclassify tokens, emit blocks
// and move between states with a push/pop stack. Emitted blocks are queued
// and released on the following token, after the pending token
// replacement has been spliced into the stream and line breaks have been
// fused into empty lines.
package engine

import (
	"errors"
	"io"
	"log/slog"

	"github.com/vhdlblocks/vhdlblocks/internal/block"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
	"github.com/vhdlblocks/vhdlblocks/internal/types"
)

// Source yields token IDs of a shared stream in document order and
// returns io.EOF when exhausted.
type Source interface {
	Next() (token.ID, error)
}

type frame struct {
	state   State
	marker  token.ID
	counter int
}

// ParserState is the state of one parse. It is not safe for concurrent
// use and cannot be reused; after an error every call returns that error.
type ParserState struct {
	src    Source
	tokens *token.Stream
	blocks *block.Chain
	table  *Table
	types.Logger

	token    token.ID
	orig     token.ID // token superseded by repl
	repl     token.ID
	marker   token.ID
	state    State
	stack    []frame
	counter  int
	reissue  bool
	queue    []block.ID
	held     block.ID
	ready    []block.ID
	first    block.ID
	last     block.ID
	finished bool
	err      error

	numTokens int
	numBlocks int
}

// New returns a ParserState that reads from src, appends blocks to chain
// and starts in the initial state. src must yield tokens of
// chain.Stream().
func New(src Source, chain *block.Chain, table *Table, initial State, logger *slog.Logger) *ParserState {
	p := &ParserState{
		src:    src,
		tokens: chain.Stream(),
		blocks: chain,
		table:  table,
		Logger: types.Logger{L: types.ComponentLogger(logger, "engine")},
		token:  token.None,
		orig:   token.None,
		repl:   token.None,
		marker: token.None,
		state:  initial,
		held:   block.None,
		first:  block.None,
		last:   block.None,
	}
	p.Log(slog.LevelDebug, "parser initialized", slog.String("state", table.Name(initial)))
	return p
}

// First returns the start of document block, or block.None before the
// first token.
func (p *ParserState) First() block.ID {
	return p.first
}

// Chain returns the block arena.
func (p *ParserState) Chain() *block.Chain {
	return p.blocks
}

// Depth returns the number of saved frames.
func (p *ParserState) Depth() int {
	return len(p.stack)
}

// Next returns the next block in document order. It returns io.EOF after
// the end of document block.
func (p *ParserState) Next() (block.ID, error) {
	for len(p.ready) == 0 {
		if p.err != nil {
			return block.None, p.err
		}
		if p.finished {
			return block.None, io.EOF
		}
		tok, err := p.src.Next()
		switch {
		case errors.Is(err, io.EOF):
			_ = p.Finish()
		case err != nil:
			p.err = err
		default:
			_ = p.Advance(tok)
		}
	}
	id := p.ready[0]
	p.ready = p.ready[1:]
	if p.TraceEnabled() {
		p.Trace("block", slog.String("block", p.blocks.String(id)))
	}
	return id, nil
}

// Take returns and clears the blocks released so far.
func (p *ParserState) Take() []block.ID {
	out := p.ready
	p.ready = nil
	return out
}

// Advance hands the next token to the state machine. Released blocks
// become available through Next or Take.
func (p *ParserState) Advance(tok token.ID) error {
	if p.err == nil {
		p.err = p.advance(tok)
	}
	return p.err
}

func (p *ParserState) advance(tok token.ID) error {
	if !p.token.IsValid() {
		return p.start(tok)
	}
	if p.tokens.Get(p.token).Kind == token.KindEndOfDocument {
		return &token.UnexpectedTokenError{Token: p.tokens.Get(tok), Expected: "nothing after end of document"}
	}
	p.numTokens++

	if p.repl.IsValid() {
		p.tokens.Link(p.repl, tok)
		p.rebase(p.orig, p.repl)
		p.orig, p.repl = token.None, token.None
	}
	p.token = tok
	if !p.marker.IsValid() {
		p.marker = tok
	}
	p.drain()

	cur := p.tokens.Get(tok)
	if p.TraceEnabled() {
		p.Trace("token",
			slog.String("state", p.table.Name(p.state)),
			slog.String("token", cur.String()))
	}
	if cur.Kind == token.KindEndOfDocument && len(p.stack) > 0 {
		return &token.PrematureEndError{Token: cur, State: p.table.Name(p.state)}
	}

	for {
		h, ok := p.table.Handler(p.state)
		if !ok {
			return &token.LinkageError{
				Cause:   token.ErrUnboundState,
				Token:   cur,
				Message: p.table.Name(p.state),
			}
		}
		p.reissue = false
		if err := h(facade{p}); err != nil {
			return err
		}
		if !p.reissue {
			return nil
		}
		if p.TraceEnabled() {
			p.Trace("reissue", slog.String("state", p.table.Name(p.state)))
		}
		if !p.marker.IsValid() {
			p.marker = tok
		}
	}
}

// start accepts the start of document token and emits its block.
func (p *ParserState) start(tok token.ID) error {
	t := p.tokens.Get(tok)
	if t.Kind != token.KindStartOfDocument {
		return &token.UnexpectedTokenError{Token: t, Expected: "StartOfDocument"}
	}
	p.numTokens++
	p.token = tok
	p.first = p.blocks.New(block.None, block.KindStartOfDocument, tok, tok, false)
	p.last = p.first
	p.numBlocks++
	p.ready = append(p.ready, p.first)
	return nil
}

// Finish ends the parse after the source is exhausted. The last token
// must be the end of document token and the last emitted block its block.
func (p *ParserState) Finish() error {
	if p.err == nil && !p.finished {
		p.err = p.finish()
	}
	return p.err
}

func (p *ParserState) finish() error {
	var last token.Token
	if p.token.IsValid() {
		last = p.tokens.Get(p.token)
	}
	n := len(p.queue)
	if last.Kind != token.KindEndOfDocument || n == 0 ||
		p.blocks.Get(p.queue[n-1]).Kind != block.KindEndOfDocument {
		return &token.PrematureEndError{Token: last, State: p.table.Name(p.state)}
	}
	p.drain()
	p.finished = true
	p.Log(slog.LevelDebug, "parse complete",
		slog.Int("tokens", p.numTokens),
		slog.Int("blocks", p.numBlocks))
	return nil
}

// rebase moves every reference the engine holds from one token to
// another.
func (p *ParserState) rebase(from, to token.ID) {
	if p.marker == from {
		p.marker = to
	}
	for i := range p.stack {
		if p.stack[i].marker == from {
			p.stack[i].marker = to
		}
	}
	for _, id := range p.queue {
		p.blocks.Rebase(id, from, to)
	}
}

func (p *ParserState) replace(kind token.Kind, kw token.Keyword) token.ID {
	repl := p.tokens.Replace(p.token, kind, kw)
	if p.repl.IsValid() {
		// Replaced twice in one round; the first replacement is dropped.
		p.rebase(p.repl, repl)
	}
	p.orig, p.repl = p.token, repl
	p.rebase(p.token, repl)
	return repl
}

func (p *ParserState) emit(kind block.Kind, start, end token.ID, multiPart bool) block.ID {
	id := p.blocks.New(p.last, kind, start, end, multiPart)
	p.last = id
	p.numBlocks++
	p.queue = append(p.queue, id)
	return id
}

func (p *ParserState) push(s State) {
	p.stack = append(p.stack, frame{state: p.state, marker: p.marker, counter: p.counter})
	if p.TraceEnabled() {
		p.Trace("push",
			slog.String("from", p.table.Name(p.state)),
			slog.String("to", p.table.Name(s)),
			slog.Int("depth", len(p.stack)))
	}
	p.state = s
	p.marker = token.None
}

func (p *ParserState) pop(levels int) error {
	if levels < 1 || levels > len(p.stack) {
		return &token.LinkageError{
			Cause:   token.ErrStackUnderflow,
			Token:   p.tokens.Get(p.token),
			Message: p.table.Name(p.state),
		}
	}
	f := p.stack[len(p.stack)-levels]
	p.stack = p.stack[:len(p.stack)-levels]
	if p.TraceEnabled() {
		p.Trace("pop",
			slog.String("from", p.table.Name(p.state)),
			slog.String("to", p.table.Name(f.state)),
			slog.Int("depth", len(p.stack)))
	}
	p.state, p.marker, p.counter = f.state, f.marker, f.counter
	return nil
}

func (p *ParserState) setNext(s State) {
	if p.TraceEnabled() && s != p.state {
		p.Trace("next",
			slog.String("from", p.table.Name(p.state)),
			slog.String("to", p.table.Name(s)))
	}
	p.state = s
}
