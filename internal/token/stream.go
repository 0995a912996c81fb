package token

import (
	"fmt"
	"iter"
	"strings"

	"github.com/vhdlblocks/vhdlblocks/internal/types"
)

// Stream is the arena that owns every token of one document. Tokens are
// addressed by ID and linked in both directions through ID fields.
// Tokens are never removed; a replaced token stays in the arena but is no
// longer reachable from the start of the document.
//
// A Stream is not safe for concurrent use.
type Stream struct {
	tokens []Token
	tail   ID
}

// NewStream returns an empty stream with room for sizeHint tokens.
func NewStream(sizeHint int) *Stream {
	return &Stream{
		tokens: make([]Token, 0, max(sizeHint, 16)),
		tail:   None,
	}
}

// Len returns the number of arena entries, including superseded tokens.
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Get returns the token with the given ID. It panics on an invalid ID,
// like an out of range slice index.
func (s *Stream) Get(id ID) Token {
	return s.tokens[id]
}

// Next returns the successor of id, or None.
func (s *Stream) Next(id ID) ID {
	return s.tokens[id].next
}

// Prev returns the predecessor of id, or None.
func (s *Stream) Prev(id ID) ID {
	return s.tokens[id].prev
}

// Tail returns the most recently appended token, or None.
func (s *Stream) Tail() ID {
	return s.tail
}

// Append creates a token and links it after the most recently appended
// one.
func (s *Stream) Append(kind Kind, value string, span types.Span) ID {
	id := ID(len(s.tokens))
	s.tokens = append(s.tokens, Token{
		Kind:  kind,
		Value: value,
		Span:  span,
		prev:  s.tail,
		next:  None,
	})
	if s.tail.IsValid() {
		s.tokens[s.tail].next = id
	}
	s.tail = id
	return id
}

// Replace creates a reclassified copy of orig and links it in place of
// orig on the backward side: the replacement's predecessor is orig's
// predecessor, and that predecessor now points forward to the replacement.
// The forward side is completed later with Link once the successor is
// known.
func (s *Stream) Replace(orig ID, kind Kind, kw Keyword) ID {
	o := s.tokens[orig]
	id := ID(len(s.tokens))
	s.tokens = append(s.tokens, Token{
		Kind:    kind,
		Keyword: kw,
		Value:   o.Value,
		Span:    o.Span,
		prev:    o.prev,
		next:    None,
	})
	if o.prev.IsValid() {
		s.tokens[o.prev].next = id
	}
	if s.tail == orig {
		s.tail = id
	}
	return id
}

// Link sets prev.next and next.prev.
func (s *Stream) Link(prev, next ID) {
	s.tokens[prev].next = next
	s.tokens[next].prev = prev
}

// Walk iterates the tokens from first through last, inclusive, following
// forward links. If the chain ends before last, it yields a LinkageError
// wrapping ErrBrokenChain and stops.
func (s *Stream) Walk(first, last ID) iter.Seq2[ID, error] {
	return func(yield func(ID, error) bool) {
		id := first
		for steps := 0; ; steps++ {
			if !id.IsValid() || steps > len(s.tokens) {
				var at Token
				if first.IsValid() {
					at = s.tokens[first]
				}
				yield(None, &LinkageError{
					Cause:   ErrBrokenChain,
					Token:   at,
					Message: fmt.Sprintf("no path from token %d to token %d", first, last),
				})
				return
			}
			if !yield(id, nil) {
				return
			}
			if id == last {
				return
			}
			id = s.tokens[id].next
		}
	}
}

// Render concatenates the values of the tokens from first through last.
func (s *Stream) Render(first, last ID) (string, error) {
	var sb strings.Builder
	for id, err := range s.Walk(first, last) {
		if err != nil {
			return "", err
		}
		sb.WriteString(s.tokens[id].Value)
	}
	return sb.String(), nil
}

// Check verifies the chain starting at first: it must begin with a start
// of document token, end with an end of document token, and every forward
// link must be mirrored by the matching backward link.
func (s *Stream) Check(first ID) error {
	if !first.IsValid() || s.tokens[first].Kind != KindStartOfDocument {
		return s.linkErr(first, "chain does not begin with StartOfDocument")
	}
	id := first
	for steps := 0; steps <= len(s.tokens); steps++ {
		next := s.tokens[id].next
		if !next.IsValid() {
			if s.tokens[id].Kind != KindEndOfDocument {
				return s.linkErr(id, "chain ends before EndOfDocument")
			}
			return nil
		}
		if s.tokens[next].prev != id {
			return s.linkErr(next, fmt.Sprintf("backward link %d does not mirror forward link %d", s.tokens[next].prev, id))
		}
		id = next
	}
	return s.linkErr(first, "chain contains a cycle")
}

func (s *Stream) linkErr(id ID, msg string) error {
	var at Token
	if id.IsValid() {
		at = s.tokens[id]
	}
	return &LinkageError{Cause: ErrBrokenChain, Token: at, Message: msg}
}
