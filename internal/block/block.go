// Package block defines blocks, the contiguous token ranges produced by the
// parser engine, and the arena that links them into a chain.
package block

import (
	"fmt"

	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

// ID addresses a block inside a Chain.
type ID int32

// None is the unset block ID.
const None ID = -1

// IsValid returns true unless id is None.
func (id ID) IsValid() bool {
	return id >= 0
}

// Block is a contiguous, inclusive range of tokens classified by Kind.
// A MultiPart block is a fragment of a construct that was interrupted by
// a comment or a line break. The final fragment is not marked; a list item
// interrupted just before its closing parenthesis has no final fragment.
type Block struct {
	Kind      Kind
	Start     token.ID
	End       token.ID
	MultiPart bool

	prev ID
	next ID
}

// Prev returns the preceding block, or None.
func (b Block) Prev() ID { return b.prev }

// Next returns the following block, or None.
func (b Block) Next() ID { return b.next }

// Kind identifies a block class.
type Kind int

const (
	// === Document ===

	KindStartOfDocument Kind = iota
	KindEndOfDocument

	// === Layout ===

	KindWhitespace
	KindIndentation
	KindLinebreak
	KindEmptyLine
	KindComment

	// === Context clauses ===

	KindLibraryClause
	KindUseClause

	// === Entity ===

	KindEntityName
	KindEntityEnd

	// === Interface lists ===

	KindGenericListOpen
	KindGenericListItem
	KindGenericListDelimiter
	KindGenericListClose
	KindPortListOpen
	KindPortListItem
	KindPortListDelimiter
	KindPortListClose

	// === Expressions ===

	KindExpression

	// === Architecture ===

	KindArchitectureName
	KindArchitectureBegin
	KindArchitectureEnd
	KindSignalDeclaration
	KindConstantDeclaration
	KindSignalAssignment
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindStartOfDocument:
		return "StartOfDocument"
	case KindEndOfDocument:
		return "EndOfDocument"
	case KindWhitespace:
		return "Whitespace"
	case KindIndentation:
		return "Indentation"
	case KindLinebreak:
		return "Linebreak"
	case KindEmptyLine:
		return "EmptyLine"
	case KindComment:
		return "Comment"
	case KindLibraryClause:
		return "LibraryClause"
	case KindUseClause:
		return "UseClause"
	case KindEntityName:
		return "EntityName"
	case KindEntityEnd:
		return "EntityEnd"
	case KindGenericListOpen:
		return "GenericListOpen"
	case KindGenericListItem:
		return "GenericListItem"
	case KindGenericListDelimiter:
		return "GenericListDelimiter"
	case KindGenericListClose:
		return "GenericListClose"
	case KindPortListOpen:
		return "PortListOpen"
	case KindPortListItem:
		return "PortListItem"
	case KindPortListDelimiter:
		return "PortListDelimiter"
	case KindPortListClose:
		return "PortListClose"
	case KindExpression:
		return "Expression"
	case KindArchitectureName:
		return "ArchitectureName"
	case KindArchitectureBegin:
		return "ArchitectureBegin"
	case KindArchitectureEnd:
		return "ArchitectureEnd"
	case KindSignalDeclaration:
		return "SignalDeclaration"
	case KindConstantDeclaration:
		return "ConstantDeclaration"
	case KindSignalAssignment:
		return "SignalAssignment"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsLayout returns true for blocks that carry no syntax: whitespace,
// indentation, line breaks, empty lines and comments.
func (k Kind) IsLayout() bool {
	return k >= KindWhitespace && k <= KindComment
}

// IsLinebreak returns true for the two kinds that take part in empty
// line fusion.
func (k Kind) IsLinebreak() bool {
	return k == KindLinebreak || k == KindEmptyLine
}
