package vhdlblocks

import (
	"github.com/vhdlblocks/vhdlblocks/internal/block"
	"github.com/vhdlblocks/vhdlblocks/internal/lexer"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
	"github.com/vhdlblocks/vhdlblocks/internal/types"
)

// Type aliases for public API - all types come from internal packages.

// Block is a contiguous run of tokens with links to its neighbours.
type Block = block.Block

// BlockID indexes a block in a Chain.
type BlockID = block.ID

// BlockKind identifies what a block represents.
type BlockKind = block.Kind

// Chain is the arena holding the blocks of one document.
type Chain = block.Chain

// Token is a lexical unit of VHDL source.
type Token = token.Token

// TokenID indexes a token in a TokenStream.
type TokenID = token.ID

// TokenKind identifies the class of a token.
type TokenKind = token.Kind

// Keyword identifies a reserved word.
type Keyword = token.Keyword

// TokenStream is the arena holding the tokens of one document.
type TokenStream = token.Stream

// Position is a row and column in source text.
type Position = types.Position

// Span is a range in source text.
type Span = types.Span

// NoBlock is the invalid block ID.
const NoBlock = block.None

// NoToken is the invalid token ID.
const NoToken = token.None

// NoKeyword is the keyword of tokens that are not reserved words.
const NoKeyword = token.KwNone

// Error types returned while parsing. Match them with errors.As, or the
// sentinels below with errors.Is.
type (
	LinkageError         = token.LinkageError
	UnexpectedTokenError = token.UnexpectedTokenError
	PrematureEndError    = token.PrematureEndError
	UnsupportedError     = token.UnsupportedError
	LexError             = lexer.Error
)

// Sentinel errors.
var (
	ErrBrokenChain     = token.ErrBrokenChain
	ErrStackUnderflow  = token.ErrStackUnderflow
	ErrUnboundState    = token.ErrUnboundState
	ErrUnexpectedToken = token.ErrUnexpectedToken
	ErrPrematureEnd    = token.ErrPrematureEnd
	ErrUnsupported     = token.ErrUnsupported
)

// Block kinds.
const (
	BlockStartOfDocument      = block.KindStartOfDocument
	BlockEndOfDocument        = block.KindEndOfDocument
	BlockWhitespace           = block.KindWhitespace
	BlockIndentation          = block.KindIndentation
	BlockLinebreak            = block.KindLinebreak
	BlockEmptyLine            = block.KindEmptyLine
	BlockComment              = block.KindComment
	BlockLibraryClause        = block.KindLibraryClause
	BlockUseClause            = block.KindUseClause
	BlockEntityName           = block.KindEntityName
	BlockEntityEnd            = block.KindEntityEnd
	BlockGenericListOpen      = block.KindGenericListOpen
	BlockGenericListItem      = block.KindGenericListItem
	BlockGenericListDelimiter = block.KindGenericListDelimiter
	BlockGenericListClose     = block.KindGenericListClose
	BlockPortListOpen         = block.KindPortListOpen
	BlockPortListItem         = block.KindPortListItem
	BlockPortListDelimiter    = block.KindPortListDelimiter
	BlockPortListClose        = block.KindPortListClose
	BlockExpression           = block.KindExpression
	BlockArchitectureName     = block.KindArchitectureName
	BlockArchitectureBegin    = block.KindArchitectureBegin
	BlockArchitectureEnd      = block.KindArchitectureEnd
	BlockSignalDeclaration    = block.KindSignalDeclaration
	BlockConstantDeclaration  = block.KindConstantDeclaration
	BlockSignalAssignment     = block.KindSignalAssignment
)
