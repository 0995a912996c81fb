// Package lexer provides tokenization for VHDL source text.
//
// The lexer appends tokens to a shared token.Stream and never reclassifies
// them: words stay words and punctuation stays characters. Handlers
// decide later which words are keywords.
package lexer

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/vhdlblocks/vhdlblocks/internal/token"
	"github.com/vhdlblocks/vhdlblocks/internal/types"
)

// Error is a lexical error such as an unterminated literal.
type Error struct {
	Pos     types.Position
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical error at %s: %s", e.Pos, e.Message)
}

// fused lists the multi-character operators, longest first.
var fused = []string{
	"?/=", "?<=", "?>=",
	":=", "<=", ">=", "=>", "/=", "**", "<>", "??", "?=", "?<", "?>", "<<", ">>",
}

// Lexer tokenizes VHDL source text into a token.Stream.
type Lexer struct {
	source    []byte
	pos       int
	row, col  int
	lineStart bool
	started   bool
	done      bool
	stream    *token.Stream
	types.Logger
}

// New returns a Lexer that appends the tokens of source to stream.
func New(source []byte, stream *token.Stream, logger *slog.Logger) *Lexer {
	l := &Lexer{
		source:    source,
		row:       1,
		col:       1,
		lineStart: true,
		stream:    stream,
		Logger:    types.Logger{L: types.ComponentLogger(logger, "lexer")},
	}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("bytes", len(source)))
	return l
}

// Stream returns the stream the lexer appends to.
func (l *Lexer) Stream() *token.Stream {
	return l.stream
}

func (l *Lexer) traceToken(id token.ID) {
	if l.TraceEnabled() {
		tok := l.stream.Get(id)
		l.Trace("token",
			slog.String("kind", tok.Kind.String()),
			slog.String("at", tok.Span.Start.String()),
			slog.Int("bytes", len(tok.Value)))
	}
}

// Tokenize consumes all source text and returns the ID of the start of
// document token. The stream then holds the complete, linked document.
func (l *Lexer) Tokenize() (token.ID, error) {
	first := token.None
	n := 0
	for {
		id, err := l.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return first, err
		}
		if n == 0 {
			first = id
		}
		n++
	}
	l.Log(slog.LevelDebug, "tokenization complete", slog.Int("tokens", n))
	return first, nil
}

// Next scans and appends the next token and returns its ID. The first
// call returns the start of document token; after the end of document
// token it returns io.EOF.
func (l *Lexer) Next() (token.ID, error) {
	if l.done {
		return token.None, io.EOF
	}
	if !l.started {
		l.started = true
		return l.emit(token.KindStartOfDocument, l.pos, l.position()), nil
	}
	if l.pos >= len(l.source) {
		l.done = true
		return l.emit(token.KindEndOfDocument, l.pos, l.position()), nil
	}
	return l.scan()
}

func (l *Lexer) position() types.Position {
	return types.Position{Row: l.row, Column: l.col, Offset: types.ByteOffset(l.pos)}
}

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

// advance consumes one byte and keeps row and column current. Columns
// count runes, so continuation bytes do not move the column.
func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	switch {
	case b == '\n':
		l.row++
		l.col = 1
	case b&0xC0 != 0x80:
		l.col++
	}
	return b, true
}

func (l *Lexer) advanceN(n int) {
	for range n {
		l.advance()
	}
}

func (l *Lexer) emit(kind token.Kind, start int, startPos types.Position) token.ID {
	value := string(l.source[start:l.pos])
	id := l.stream.Append(kind, value, types.NewSpan(startPos, l.position()))
	l.lineStart = kind == token.KindStartOfDocument ||
		kind == token.KindLinebreak ||
		kind == token.KindSingleLineComment
	l.traceToken(id)
	return id
}

func (l *Lexer) fail(pos types.Position, format string, args ...any) error {
	err := &Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
	l.Log(slog.LevelDebug, "lexical error", slog.String("at", pos.String()), slog.String("error", err.Message))
	l.done = true
	return err
}

func (l *Lexer) scan() (token.ID, error) {
	start := l.pos
	startPos := l.position()
	b, _ := l.peek()

	switch {
	case b == '\n':
		l.advance()
		return l.emit(token.KindLinebreak, start, startPos), nil
	case b == '\r':
		l.advance()
		if next, ok := l.peek(); ok && next == '\n' {
			l.advance()
		}
		return l.emit(token.KindLinebreak, start, startPos), nil
	case isBlank(b):
		kind := token.KindSpace
		if l.lineStart {
			kind = token.KindIndentation
		}
		for {
			c, ok := l.peek()
			if !ok || !isBlank(c) {
				break
			}
			l.advance()
		}
		return l.emit(kind, start, startPos), nil
	case b == '-' && l.peekAtEquals(1, '-'):
		l.scanLineComment()
		return l.emit(token.KindSingleLineComment, start, startPos), nil
	case b == '/' && l.peekAtEquals(1, '*'):
		if !l.scanBlockComment() {
			return token.None, l.fail(startPos, "unterminated block comment")
		}
		return l.emit(token.KindMultiLineComment, start, startPos), nil
	case isAlpha(b):
		l.scanWord()
		if next, ok := l.peek(); ok && next == '"' && isBitStringBase(string(l.source[start:l.pos])) {
			if !l.scanString() {
				return token.None, l.fail(startPos, "unterminated bit string literal")
			}
			return l.emit(token.KindStringLiteral, start, startPos), nil
		}
		return l.emit(token.KindWord, start, startPos), nil
	case isDigit(b):
		if !l.scanNumber() {
			return token.None, l.fail(startPos, "unterminated based literal")
		}
		return l.emit(token.KindNumericLiteral, start, startPos), nil
	case b == '"':
		if !l.scanString() {
			return token.None, l.fail(startPos, "unterminated string literal")
		}
		return l.emit(token.KindStringLiteral, start, startPos), nil
	case b == '\'' && l.isCharacterLiteral():
		l.advanceN(3)
		return l.emit(token.KindCharacterLiteral, start, startPos), nil
	case b == '\\':
		if !l.scanExtendedIdentifier() {
			return token.None, l.fail(startPos, "unterminated extended identifier")
		}
		return l.emit(token.KindExtendedIdentifier, start, startPos), nil
	}

	for _, op := range fused {
		if bytes.HasPrefix(l.source[l.pos:], []byte(op)) {
			l.advanceN(len(op))
			return l.emit(token.KindFusedCharacter, start, startPos), nil
		}
	}

	_, size := utf8.DecodeRune(l.source[l.pos:])
	l.advanceN(size)
	return l.emit(token.KindCharacter, start, startPos), nil
}

func (l *Lexer) peekAtEquals(offset int, expected byte) bool {
	b, ok := l.peekAt(offset)
	return ok && b == expected
}

// scanLineComment consumes a "--" comment including its line break.
func (l *Lexer) scanLineComment() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		if b == '\n' {
			l.advance()
			return
		}
		if b == '\r' {
			l.advance()
			if next, ok := l.peek(); ok && next == '\n' {
				l.advance()
			}
			return
		}
		l.advance()
	}
}

func (l *Lexer) scanBlockComment() bool {
	l.advanceN(2)
	for {
		b, ok := l.peek()
		if !ok {
			return false
		}
		if b == '*' && l.peekAtEquals(1, '/') {
			l.advanceN(2)
			return true
		}
		l.advance()
	}
}

func (l *Lexer) scanWord() {
	for {
		b, ok := l.peek()
		if !ok || !(isAlphanumeric(b) || b == '_') {
			return
		}
		l.advance()
	}
}

// scanNumber consumes a decimal or based literal with an optional
// exponent: 42, 1_000, 3.14, 1.0E-3, 16#FF#, 2#1010_0101#.
func (l *Lexer) scanNumber() bool {
	l.scanDigits(isDigit)
	if l.peekIs('#') {
		l.advance()
		l.scanDigits(isExtendedDigit)
		if l.peekIs('.') {
			l.advance()
			l.scanDigits(isExtendedDigit)
		}
		if !l.peekIs('#') {
			return false
		}
		l.advance()
	} else if l.peekIs('.') {
		if next, ok := l.peekAt(1); ok && isDigit(next) {
			l.advance()
			l.scanDigits(isDigit)
		}
	}
	if b, ok := l.peek(); ok && (b == 'e' || b == 'E') {
		next, _ := l.peekAt(1)
		switch {
		case isDigit(next):
			l.advance()
			l.scanDigits(isDigit)
		case next == '+' || next == '-':
			if d, ok := l.peekAt(2); ok && isDigit(d) {
				l.advanceN(2)
				l.scanDigits(isDigit)
			}
		}
	}
	return true
}

func (l *Lexer) scanDigits(accept func(byte) bool) {
	for {
		b, ok := l.peek()
		if !ok || !(accept(b) || b == '_') {
			return
		}
		l.advance()
	}
}

func (l *Lexer) peekIs(want byte) bool {
	b, ok := l.peek()
	return ok && b == want
}

// scanString consumes a quoted string. A doubled quote is an escaped
// quote. Strings cannot span lines.
func (l *Lexer) scanString() bool {
	l.advance()
	for {
		b, ok := l.peek()
		if !ok || b == '\n' || b == '\r' {
			return false
		}
		l.advance()
		if b == '"' {
			if l.peekIs('"') {
				l.advance()
				continue
			}
			return true
		}
	}
}

// isCharacterLiteral distinguishes '0' from an attribute tick as in
// clk'event or a qualified expression as in t'('0').
func (l *Lexer) isCharacterLiteral() bool {
	if prev := l.stream.Tail(); prev.IsValid() {
		tok := l.stream.Get(prev)
		if tok.Kind == token.KindWord || tok.Kind == token.KindIdentifier ||
			tok.Kind == token.KindExtendedIdentifier || tok.Value == ")" {
			return false
		}
	}
	c, ok := l.peekAt(1)
	if !ok || c == '\n' || c == '\r' {
		return false
	}
	return l.peekAtEquals(2, '\'')
}

func (l *Lexer) scanExtendedIdentifier() bool {
	l.advance()
	for {
		b, ok := l.peek()
		if !ok || b == '\n' || b == '\r' {
			return false
		}
		l.advance()
		if b == '\\' {
			if l.peekIs('\\') {
				l.advance()
				continue
			}
			return true
		}
	}
}

// isBitStringBase reports whether a word prefixes a bit string literal
// such as X"FF" or UB"0101".
func isBitStringBase(word string) bool {
	switch strings.ToLower(word) {
	case "b", "o", "x", "d", "ub", "uo", "ux", "sb", "so", "sx":
		return true
	default:
		return false
	}
}

func isBlank(b byte) bool {
	return b == ' ' || b == '\t'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isExtendedDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isAlphanumeric(b byte) bool {
	return isAlpha(b) || isDigit(b)
}
