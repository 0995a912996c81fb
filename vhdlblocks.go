// Package vhdlblocks splits VHDL source text into blocks: contiguous,
// doubly linked runs of tokens such as a library clause, the name part
// of an entity, one interface element or a line break. Blocks are
// produced incrementally by a stack machine driven one token at a time;
// no syntax tree is built.
package vhdlblocks

import (
	"errors"
	"io"
	"iter"
	"log/slog"
	"runtime"

	"github.com/vhdlblocks/vhdlblocks/internal/block"
	"github.com/vhdlblocks/vhdlblocks/internal/engine"
	"github.com/vhdlblocks/vhdlblocks/internal/grammar"
	"github.com/vhdlblocks/vhdlblocks/internal/lexer"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
	"github.com/vhdlblocks/vhdlblocks/internal/types"
)

// LevelTrace is a custom log level more verbose than Debug.
// Use for per-item iteration logging (tokens, state transitions, blocks).
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures parsers, sources and CheckFiles.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	tabSize    int
	extensions []string
	workers    int
}

func newConfig(opts []Option) config {
	cfg := config{
		tabSize:    block.DefaultTabSize,
		extensions: DefaultExtensions,
		workers:    runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger sets the logger for debug/trace output.
// If not set, no logging occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithTabSize sets the tab width used for indentation widths.
// Values below 1 are ignored.
func WithTabSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.tabSize = n
		}
	}
}

// WithExtensions sets the file extensions recognized as VHDL design
// files. Matching is case-insensitive.
func WithExtensions(exts ...string) Option {
	return func(c *config) { c.extensions = exts }
}

// WithWorkers bounds the number of files CheckFiles parses at once.
// Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// Parser pulls blocks from a VHDL source one at a time. Tokens are read
// from the source only as far as needed to release the next block.
type Parser struct {
	lex     *lexer.Lexer
	state   *engine.ParserState
	chain   *block.Chain
	tabSize int
}

// NewParser returns a parser over source.
func NewParser(source []byte, opts ...Option) *Parser {
	cfg := newConfig(opts)
	stream := token.NewStream(len(source) / 4)
	chain := block.NewChain(stream, len(source)/8)
	lex := lexer.New(source, stream, cfg.logger)
	return &Parser{
		lex:     lex,
		state:   grammar.New(lex, chain, cfg.logger),
		chain:   chain,
		tabSize: cfg.tabSize,
	}
}

// Next returns the next block. It returns io.EOF after the end of
// document block. Once an error is returned every later call returns
// it again.
func (p *Parser) Next() (BlockID, error) {
	return p.state.Next()
}

// All iterates over the remaining blocks. Iteration stops after the
// first error, which is yielded with block.None.
func (p *Parser) All() iter.Seq2[BlockID, error] {
	return func(yield func(BlockID, error) bool) {
		for {
			id, err := p.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(id, err) || err != nil {
				return
			}
		}
	}
}

// Chain returns the block arena. Block IDs returned by Next index into it.
func (p *Parser) Chain() *Chain {
	return p.chain
}

// Depth returns the number of open nested constructs.
func (p *Parser) Depth() int {
	return p.state.Depth()
}

// Indentation returns the width of an indentation block using the
// configured tab size.
func (p *Parser) Indentation(id BlockID) (int, error) {
	return p.chain.IndentationWidth(id, p.tabSize)
}

// Document is a fully parsed source.
type Document struct {
	chain   *block.Chain
	blocks  []block.ID
	tabSize int
}

// Parse parses the whole source. On error the document holds the blocks
// released before the failure.
func Parse(source []byte, opts ...Option) (*Document, error) {
	return NewParser(source, opts...).document()
}

// document drains the parser into a Document.
func (p *Parser) document() (*Document, error) {
	doc := &Document{chain: p.chain, tabSize: p.tabSize}
	for id, err := range p.All() {
		if err != nil {
			return doc, err
		}
		doc.blocks = append(doc.blocks, id)
	}
	return doc, nil
}

// Blocks returns the block IDs in source order.
func (d *Document) Blocks() []BlockID {
	return d.blocks
}

// Len returns the number of blocks.
func (d *Document) Len() int {
	return len(d.blocks)
}

// Chain returns the block arena.
func (d *Document) Chain() *Chain {
	return d.chain
}

// Block returns a block by ID.
func (d *Document) Block(id BlockID) Block {
	return d.chain.Get(id)
}

// Text returns the source text covered by a block.
func (d *Document) Text(id BlockID) (string, error) {
	return d.chain.Text(id)
}

// Indentation returns the width of an indentation block.
func (d *Document) Indentation(id BlockID) (int, error) {
	return d.chain.IndentationWidth(id, d.tabSize)
}

// TokenCount returns the number of tokens covered by the document's
// blocks. Tokens superseded by a reclassification are not counted.
func (d *Document) TokenCount() int {
	if len(d.blocks) == 0 {
		return 0
	}
	first := d.chain.Get(d.blocks[0]).Start
	last := d.chain.Get(d.blocks[len(d.blocks)-1]).End
	n := 0
	for _, err := range d.chain.Stream().Walk(first, last) {
		if err != nil {
			break
		}
		n++
	}
	return n
}

// Check verifies the linkage of the block and token chains.
func (d *Document) Check() error {
	if len(d.blocks) == 0 {
		return nil
	}
	first := d.blocks[0]
	if err := d.chain.Check(first); err != nil {
		return err
	}
	return d.chain.Stream().Check(d.chain.Get(first).Start)
}

// Tokenize splits source into tokens without parsing. It returns the
// stream and the start of document token.
func Tokenize(source []byte, opts ...Option) (*TokenStream, TokenID, error) {
	cfg := newConfig(opts)
	stream := token.NewStream(len(source) / 4)
	first, err := lexer.New(source, stream, cfg.logger).Tokenize()
	return stream, first, err
}
