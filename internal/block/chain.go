package block

import (
	"fmt"
	"iter"
	"strings"

	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

// DefaultTabSize is the tab width used for indentation widths.
const DefaultTabSize = 2

// Chain is the arena that owns the blocks of one document. Each block
// refers to tokens in the Stream the chain was created with.
//
// A Chain is not safe for concurrent use.
type Chain struct {
	blocks []Block
	tokens *token.Stream
}

// NewChain returns an empty chain over tokens.
func NewChain(tokens *token.Stream, sizeHint int) *Chain {
	return &Chain{
		blocks: make([]Block, 0, max(sizeHint, 16)),
		tokens: tokens,
	}
}

// Stream returns the token stream the blocks refer to.
func (c *Chain) Stream() *token.Stream {
	return c.tokens
}

// Len returns the number of arena entries, including blocks orphaned by
// fusion.
func (c *Chain) Len() int {
	return len(c.blocks)
}

// Get returns the block with the given ID.
func (c *Chain) Get(id ID) Block {
	return c.blocks[id]
}

// Next returns the successor of id, or None.
func (c *Chain) Next(id ID) ID {
	return c.blocks[id].next
}

// Prev returns the predecessor of id, or None.
func (c *Chain) Prev(id ID) ID {
	return c.blocks[id].prev
}

// New creates a block spanning start through end and links it after prev.
// The new block's forward link stays unset until a later block is linked
// after it.
func (c *Chain) New(prev ID, kind Kind, start, end token.ID, multiPart bool) ID {
	id := ID(len(c.blocks))
	c.blocks = append(c.blocks, Block{
		Kind:      kind,
		Start:     start,
		End:       end,
		MultiPart: multiPart,
		prev:      prev,
		next:      None,
	})
	if prev.IsValid() {
		c.blocks[prev].next = id
	}
	return id
}

// Link sets prev.next and, when next is valid, next.prev.
func (c *Chain) Link(prev, next ID) {
	c.blocks[prev].next = next
	if next.IsValid() {
		c.blocks[next].prev = prev
	}
}

// Rebase moves every bound of id that equals from onto to.
func (c *Chain) Rebase(id ID, from, to token.ID) {
	b := &c.blocks[id]
	if b.Start == from {
		b.Start = to
	}
	if b.End == from {
		b.End = to
	}
}

// Extend makes id an empty line block that ends at end.
func (c *Chain) Extend(id ID, end token.ID) {
	c.blocks[id].Kind = KindEmptyLine
	c.blocks[id].End = end
}

// Tokens iterates the tokens of a block. It yields a LinkageError
// wrapping token.ErrBrokenChain if the token chain breaks before the
// block's end.
func (c *Chain) Tokens(id ID) iter.Seq2[token.ID, error] {
	b := c.blocks[id]
	return c.tokens.Walk(b.Start, b.End)
}

// Text returns the verbatim source text of a block.
func (c *Chain) Text(id ID) (string, error) {
	b := c.blocks[id]
	return c.tokens.Render(b.Start, b.End)
}

// Repr returns the block text with tabs and line breaks escaped.
func (c *Chain) Repr(id ID) (string, error) {
	text, err := c.Text(id)
	if err != nil {
		return "", err
	}
	return escaper.Replace(text), nil
}

var escaper = strings.NewReplacer("\t", `\t`, "\n", `\n`, "\r", `\r`)

// String formats a block for diagnostics as
// [Kind* 'text' at row:col .. row:col], where * marks a multi-part block.
func (c *Chain) String(id ID) string {
	b := c.blocks[id]
	repr, err := c.Repr(id)
	if err != nil {
		repr = "<" + err.Error() + ">"
	}
	star := ""
	if b.MultiPart {
		star = "*"
	}
	start := c.tokens.Get(b.Start).Span.Start
	end := c.tokens.Get(b.End).Span.End
	return fmt.Sprintf("[%s%s '%s' at %s .. %s]", b.Kind, star, repr, start, end)
}

// IndentationWidth returns the visual width of a block's text, counting a
// tab as tabSize columns. A tabSize below 1 selects DefaultTabSize.
func (c *Chain) IndentationWidth(id ID, tabSize int) (int, error) {
	if tabSize < 1 {
		tabSize = DefaultTabSize
	}
	text, err := c.Text(id)
	if err != nil {
		return 0, err
	}
	width := 0
	for _, r := range text {
		if r == '\t' {
			width += tabSize
		} else {
			width++
		}
	}
	return width, nil
}

// Walk iterates the blocks from first following forward links until the
// chain ends.
func (c *Chain) Walk(first ID) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for id, steps := first, 0; id.IsValid() && steps <= len(c.blocks); id, steps = c.blocks[id].next, steps+1 {
			if !yield(id) {
				return
			}
		}
	}
}

// Check verifies the block chain starting at first. The chain must start
// with the start of document block and end with the end of document
// block, links must be symmetric, and consecutive blocks must tile the
// token stream: the token after one block's end is the next block's
// start.
func (c *Chain) Check(first ID) error {
	if !first.IsValid() || c.blocks[first].Kind != KindStartOfDocument {
		return c.linkErr(first, "chain does not begin with StartOfDocument block")
	}
	id := first
	for steps := 0; steps <= len(c.blocks); steps++ {
		b := c.blocks[id]
		for _, err := range c.Tokens(id) {
			if err != nil {
				return err
			}
		}
		if !b.next.IsValid() {
			if b.Kind != KindEndOfDocument {
				return c.linkErr(id, "chain ends before EndOfDocument block")
			}
			return nil
		}
		n := c.blocks[b.next]
		if n.prev != id {
			return c.linkErr(b.next, "backward link does not mirror forward link")
		}
		if c.tokens.Next(b.End) != n.Start {
			return c.linkErr(b.next, fmt.Sprintf("gap or overlap between %s and %s", b.Kind, n.Kind))
		}
		id = b.next
	}
	return c.linkErr(first, "chain contains a cycle")
}

func (c *Chain) linkErr(id ID, msg string) error {
	var at token.Token
	if id.IsValid() {
		at = c.tokens.Get(c.blocks[id].Start)
	}
	return &token.LinkageError{Cause: token.ErrBrokenChain, Token: at, Message: msg}
}
