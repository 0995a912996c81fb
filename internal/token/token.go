// Package token defines VHDL tokens and the arena that links them into a
// doubly-linked stream.
package token

import (
	"fmt"
	"strings"

	"github.com/vhdlblocks/vhdlblocks/internal/types"
)

// ID addresses a token inside a Stream. IDs are stable for the lifetime
// of the stream.
type ID int32

// None is the unset token ID.
const None ID = -1

// IsValid returns true unless id is None.
func (id ID) IsValid() bool {
	return id >= 0
}

// Token is a lexical unit with its source span. Content is immutable once
// created; only the links change, and only through the Stream.
type Token struct {
	Kind    Kind
	Keyword Keyword // set when Kind == KindKeyword
	Value   string
	Span    types.Span

	prev ID
	next ID
}

// Prev returns the ID of the preceding token, or None.
func (t Token) Prev() ID { return t.prev }

// Next returns the ID of the following token, or None.
func (t Token) Next() ID { return t.next }

// Is reports whether t is a character-class token with the given value.
func (t Token) Is(value string) bool {
	return (t.Kind == KindCharacter || t.Kind == KindFusedCharacter) && t.Value == value
}

// IsWord reports whether t is a word token whose text equals word,
// compared case-insensitively as VHDL requires.
func (t Token) IsWord(word string) bool {
	return t.Kind == KindWord && strings.EqualFold(t.Value, word)
}

// String formats the token for diagnostics.
func (t Token) String() string {
	if t.Kind == KindKeyword {
		return fmt.Sprintf("<%s %s at %s>", t.Kind, t.Keyword, t.Span.Start)
	}
	return fmt.Sprintf("<%s %q at %s>", t.Kind, t.Value, t.Span.Start)
}

// Kind identifies a token class.
//
// Input kinds come from the tokenizer. Reclassified kinds are only ever
// created by state handlers replacing an input token.
type Kind int

const (
	// === Sentinels ===

	// KindStartOfDocument is the first token of every stream.
	KindStartOfDocument Kind = iota
	// KindEndOfDocument is the last token of every stream.
	KindEndOfDocument

	// === Input kinds ===

	// KindWord is an identifier-or-keyword candidate.
	KindWord
	// KindExtendedIdentifier is a backslash-delimited identifier (\foo bar\).
	KindExtendedIdentifier
	// KindSpace is a run of spaces or tabs inside a line.
	KindSpace
	// KindIndentation is a run of spaces or tabs starting a line.
	KindIndentation
	// KindLinebreak is "\n" or "\r\n".
	KindLinebreak
	// KindSingleLineComment is a "--" comment including its line break.
	KindSingleLineComment
	// KindMultiLineComment is a "/* */" comment.
	KindMultiLineComment
	// KindCharacter is a single punctuation character.
	KindCharacter
	// KindFusedCharacter is a multi-character operator such as ":=" or "<=".
	KindFusedCharacter
	// KindStringLiteral is a quoted string literal.
	KindStringLiteral
	// KindCharacterLiteral is a character literal such as '0'.
	KindCharacterLiteral
	// KindNumericLiteral is a decimal or based numeric literal.
	KindNumericLiteral

	// === Reclassified kinds ===

	// KindKeyword is a reserved word; see Token.Keyword.
	KindKeyword
	// KindIdentifier is a word recognised as a name.
	KindIdentifier
	// KindBoundary is whitespace or a bracket that separates clause parts.
	KindBoundary
	// KindDelimiter is a list or statement delimiter (";" or ",").
	KindDelimiter
	// KindEnd is the ";" terminating a construct.
	KindEnd
	// KindOperator is an arithmetic, relational or logical operator.
	KindOperator
	// KindOpeningBracket is "(" inside an expression.
	KindOpeningBracket
	// KindClosingBracket is ")" inside an expression.
	KindClosingBracket
	// KindAssignment is ":=" or "<=" used as an assignment.
	KindAssignment
)

var kindNames = [...]string{
	KindStartOfDocument:    "StartOfDocument",
	KindEndOfDocument:      "EndOfDocument",
	KindWord:               "Word",
	KindExtendedIdentifier: "ExtendedIdentifier",
	KindSpace:              "Space",
	KindIndentation:        "Indentation",
	KindLinebreak:          "Linebreak",
	KindSingleLineComment:  "SingleLineComment",
	KindMultiLineComment:   "MultiLineComment",
	KindCharacter:          "Character",
	KindFusedCharacter:     "FusedCharacter",
	KindStringLiteral:      "StringLiteral",
	KindCharacterLiteral:   "CharacterLiteral",
	KindNumericLiteral:     "NumericLiteral",
	KindKeyword:            "Keyword",
	KindIdentifier:         "Identifier",
	KindBoundary:           "Boundary",
	KindDelimiter:          "Delimiter",
	KindEnd:                "End",
	KindOperator:           "Operator",
	KindOpeningBracket:     "OpeningBracket",
	KindClosingBracket:     "ClosingBracket",
	KindAssignment:         "Assignment",
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsSpace returns true for spaces and indentation.
func (k Kind) IsSpace() bool {
	return k == KindSpace || k == KindIndentation
}

// IsComment returns true for both comment kinds.
func (k Kind) IsComment() bool {
	return k == KindSingleLineComment || k == KindMultiLineComment
}

// IsLiteral returns true for string, character and numeric literals.
func (k Kind) IsLiteral() bool {
	switch k {
	case KindStringLiteral, KindCharacterLiteral, KindNumericLiteral:
		return true
	default:
		return false
	}
}

// IsReclassified returns true for kinds only handlers produce.
func (k Kind) IsReclassified() bool {
	return k >= KindKeyword
}
