package lexer

import (
	"errors"
	"io"
	"testing"

	"github.com/vhdlblocks/vhdlblocks/internal/testutil"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

func tokenize(t *testing.T, source string) (*token.Stream, []token.ID) {
	t.Helper()
	s := token.NewStream(0)
	first, err := New([]byte(source), s, nil).Tokenize()
	testutil.NoError(t, err, "tokenize %q", source)
	var ids []token.ID
	for id, err := range s.Walk(first, s.Tail()) {
		testutil.NoError(t, err)
		ids = append(ids, id)
	}
	return s, ids
}

func tokenKinds(t *testing.T, source string) []token.Kind {
	t.Helper()
	s, ids := tokenize(t, source)
	kinds := make([]token.Kind, len(ids))
	for i, id := range ids {
		kinds[i] = s.Get(id).Kind
	}
	return kinds
}

// tokenTexts returns the values of all tokens between the sentinels that
// are not spaces.
func tokenTexts(t *testing.T, source string) []string {
	t.Helper()
	s, ids := tokenize(t, source)
	var texts []string
	for _, id := range ids {
		tok := s.Get(id)
		switch tok.Kind {
		case token.KindStartOfDocument, token.KindEndOfDocument, token.KindSpace:
			continue
		}
		texts = append(texts, tok.Value)
	}
	return texts
}

func TestEmptyInput(t *testing.T) {
	kinds := tokenKinds(t, "")
	testutil.SliceEqual(t, []token.Kind{token.KindStartOfDocument, token.KindEndOfDocument}, kinds, "empty input")
}

func TestLibraryClause(t *testing.T) {
	kinds := tokenKinds(t, "library ieee;\n")
	expected := []token.Kind{
		token.KindStartOfDocument,
		token.KindWord, token.KindSpace, token.KindWord, token.KindCharacter,
		token.KindLinebreak,
		token.KindEndOfDocument,
	}
	testutil.SliceEqual(t, expected, kinds, "token kinds")
}

func TestIndentation(t *testing.T) {
	tests := []struct {
		source string
		want   []token.Kind
	}{
		{"  x", []token.Kind{token.KindStartOfDocument, token.KindIndentation, token.KindWord, token.KindEndOfDocument}},
		{"a\n\tb", []token.Kind{token.KindStartOfDocument, token.KindWord, token.KindLinebreak, token.KindIndentation, token.KindWord, token.KindEndOfDocument}},
		{"a \t b", []token.Kind{token.KindStartOfDocument, token.KindWord, token.KindSpace, token.KindWord, token.KindEndOfDocument}},
		{"-- c\n  b", []token.Kind{token.KindStartOfDocument, token.KindSingleLineComment, token.KindIndentation, token.KindWord, token.KindEndOfDocument}},
	}
	for _, tt := range tests {
		testutil.SliceEqual(t, tt.want, tokenKinds(t, tt.source), "kinds of %q", tt.source)
	}
}

func TestLinebreaks(t *testing.T) {
	texts := tokenTexts(t, "a\r\nb\nc")
	testutil.SliceEqual(t, []string{"a", "\r\n", "b", "\n", "c"}, texts)
}

func TestComments(t *testing.T) {
	texts := tokenTexts(t, "a -- note\nb /* x\ny */c -- tail")
	expected := []string{"a", "-- note\n", "b", "/* x\ny */", "c", "-- tail"}
	testutil.SliceEqual(t, expected, texts)

	kinds := tokenKinds(t, "/**/")
	testutil.Equal(t, token.KindMultiLineComment, kinds[1])
}

func TestFusedCharacters(t *testing.T) {
	texts := tokenTexts(t, "a:=b<=c=>d/=e**f<>g>=h?/=i")
	expected := []string{"a", ":=", "b", "<=", "c", "=>", "d", "/=", "e", "**", "f", "<>", "g", ">=", "h", "?/=", "i"}
	testutil.SliceEqual(t, expected, texts)

	kinds := tokenKinds(t, ":=")
	testutil.Equal(t, token.KindFusedCharacter, kinds[1])
	kinds = tokenKinds(t, ":")
	testutil.Equal(t, token.KindCharacter, kinds[1])
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		source string
		kind   token.Kind
	}{
		{`"abc"`, token.KindStringLiteral},
		{`"a""b"`, token.KindStringLiteral},
		{`X"0F"`, token.KindStringLiteral},
		{`ub"0101"`, token.KindStringLiteral},
		{`'0'`, token.KindCharacterLiteral},
		{`' '`, token.KindCharacterLiteral},
		{`42`, token.KindNumericLiteral},
		{`1_000`, token.KindNumericLiteral},
		{`3.14`, token.KindNumericLiteral},
		{`1.0E-3`, token.KindNumericLiteral},
		{`16#FF#`, token.KindNumericLiteral},
		{`2#1010_0101#E2`, token.KindNumericLiteral},
		{`\foo bar\`, token.KindExtendedIdentifier},
		{`\a\\b\`, token.KindExtendedIdentifier},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			s, ids := tokenize(t, tt.source)
			testutil.Len(t, ids, 3)
			tok := s.Get(ids[1])
			testutil.Equal(t, tt.kind, tok.Kind)
			testutil.Equal(t, tt.source, tok.Value)
		})
	}
}

func TestNumberFollowedByRange(t *testing.T) {
	texts := tokenTexts(t, "7 downto 0")
	testutil.SliceEqual(t, []string{"7", "downto", "0"}, texts)
	texts = tokenTexts(t, "1.a")
	testutil.SliceEqual(t, []string{"1", ".", "a"}, texts)
}

func TestTick(t *testing.T) {
	texts := tokenTexts(t, "clk'event")
	testutil.SliceEqual(t, []string{"clk", "'", "event"}, texts)

	texts = tokenTexts(t, "t'('0')")
	testutil.SliceEqual(t, []string{"t", "'", "(", "'0'", ")"}, texts)

	texts = tokenTexts(t, "f(x)'length")
	testutil.SliceEqual(t, []string{"f", "(", "x", ")", "'", "length"}, texts)
}

func TestBitStringNeedsBase(t *testing.T) {
	texts := tokenTexts(t, `foo"1"`)
	testutil.SliceEqual(t, []string{"foo", `"1"`}, texts)
}

func TestPositions(t *testing.T) {
	s, ids := tokenize(t, "ab\n  cd")
	// SOD, ab, \n, indentation, cd, EOD
	testutil.Len(t, ids, 6)
	cd := s.Get(ids[4])
	testutil.Equal(t, 2, cd.Span.Start.Row)
	testutil.Equal(t, 3, cd.Span.Start.Column)
	testutil.Equal(t, 5, int(cd.Span.Start.Offset))
	testutil.Equal(t, 5, cd.Span.End.Column)

	eod := s.Get(ids[5])
	testutil.Equal(t, "2:5", eod.Span.Start.String())
}

func TestColumnsCountRunes(t *testing.T) {
	s, ids := tokenize(t, "-- é\nx")
	x := s.Get(ids[2])
	testutil.Equal(t, 2, x.Span.Start.Row)
	testutil.Equal(t, 1, x.Span.Start.Column)

	s, ids = tokenize(t, `"é" x`)
	x = s.Get(ids[3])
	testutil.Equal(t, 5, x.Span.Start.Column)
}

func TestRoundTrip(t *testing.T) {
	source := "entity e is\r\n  generic (W : natural := 8); -- width\n\t/* c */ end;\n\n"
	s, ids := tokenize(t, source)
	text, err := s.Render(ids[0], ids[len(ids)-1])
	testutil.NoError(t, err)
	testutil.Equal(t, source, text)
	testutil.NoError(t, s.Check(ids[0]))
}

func TestNextStreaming(t *testing.T) {
	s := token.NewStream(0)
	l := New([]byte("x"), s, nil)

	var kinds []token.Kind
	for {
		id, err := l.Next()
		if err == io.EOF {
			break
		}
		testutil.NoError(t, err)
		kinds = append(kinds, s.Get(id).Kind)
	}
	testutil.SliceEqual(t, []token.Kind{token.KindStartOfDocument, token.KindWord, token.KindEndOfDocument}, kinds)

	_, err := l.Next()
	testutil.True(t, err == io.EOF, "exhausted lexer keeps returning EOF")
}

func TestLexicalErrors(t *testing.T) {
	tests := []struct {
		source  string
		message string
	}{
		{`x := "abc`, "unterminated string literal"},
		{"\"ab\ncd\"", "unterminated string literal"},
		{"/* open", "unterminated block comment"},
		{"16#FF", "unterminated based literal"},
		{`\foo`, "unterminated extended identifier"},
		{`X"01`, "unterminated bit string literal"},
	}
	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			s := token.NewStream(0)
			_, err := New([]byte(tt.source), s, nil).Tokenize()
			var lexErr *Error
			testutil.True(t, errors.As(err, &lexErr), "expected *Error, got %v", err)
			testutil.Contains(t, lexErr.Error(), tt.message)
		})
	}
}

func TestErrorStopsLexer(t *testing.T) {
	l := New([]byte(`"open`), token.NewStream(0), nil)
	_, err := l.Next()
	testutil.NoError(t, err)
	_, err = l.Next()
	testutil.True(t, err != nil && err != io.EOF)
	_, err = l.Next()
	testutil.True(t, err == io.EOF)
}
