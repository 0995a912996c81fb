package vhdlblocks

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vhdlblocks/vhdlblocks/internal/testutil"
)

func summaries(t *testing.T, doc *Document) []string {
	t.Helper()
	var out []string
	for _, id := range doc.Blocks() {
		b := doc.Block(id)
		text, err := doc.Text(id)
		require.NoError(t, err)
		out = append(out, testutil.Summary(b.Kind, b.MultiPart, text))
	}
	return out
}

func TestScenarios(t *testing.T) {
	for _, sc := range testutil.LoadScenarios(t, "testdata/scenarios.yaml") {
		t.Run(sc.Name, func(t *testing.T) {
			doc, err := Parse([]byte(sc.Source))
			if sc.Error != "" {
				requireErrorKind(t, err, sc.Error)
				if sc.State != "" {
					var pe *PrematureEndError
					require.ErrorAs(t, err, &pe)
					require.Equal(t, sc.State, pe.State)
				}
				return
			}
			require.NoError(t, err)
			require.NoError(t, doc.Check())

			got := summaries(t, doc)
			var text strings.Builder
			for _, s := range got {
				_, blockText, _ := strings.Cut(s, "|")
				text.WriteString(blockText)
			}
			require.Equal(t, sc.Source, text.String(), "blocks reproduce the source")

			if sc.SyntaxOnly {
				got = testutil.WithoutLayout(got)
			}
			require.Equal(t, sc.Blocks, got)
		})
	}
}

func requireErrorKind(t *testing.T, err error, kind string) {
	t.Helper()
	require.Error(t, err)
	switch kind {
	case "unexpected":
		require.ErrorIs(t, err, ErrUnexpectedToken)
	case "premature":
		require.ErrorIs(t, err, ErrPrematureEnd)
	case "unsupported":
		require.ErrorIs(t, err, ErrUnsupported)
	case "linkage":
		require.ErrorIs(t, err, ErrBrokenChain)
	case "lexer":
		var le *LexError
		require.ErrorAs(t, err, &le)
	default:
		t.Fatalf("unknown error kind %q", kind)
	}
}

func TestParserIncremental(t *testing.T) {
	p := NewParser([]byte("library a;\nuse a.b;\n"))

	id, err := p.Next()
	require.NoError(t, err)
	require.Equal(t, BlockStartOfDocument, p.Chain().Get(id).Kind)

	id, err = p.Next()
	require.NoError(t, err)
	require.Equal(t, BlockLibraryClause, p.Chain().Get(id).Kind)
	// Only the line break after the clause has been read.
	stream := p.Chain().Stream()
	require.Equal(t, "\n", stream.Get(stream.Tail()).Value)

	var kinds []BlockKind
	for id, err := range p.All() {
		require.NoError(t, err)
		kinds = append(kinds, p.Chain().Get(id).Kind)
	}
	require.Equal(t, []BlockKind{
		BlockLinebreak, BlockUseClause, BlockLinebreak, BlockEndOfDocument,
	}, kinds)

	_, err = p.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestParserAllStopsAtError(t *testing.T) {
	p := NewParser([]byte("library a;\nfoo"))
	var n int
	var last error
	for _, err := range p.All() {
		n++
		last = err
	}
	require.ErrorIs(t, last, ErrUnexpectedToken)
	// The line break is still held back for fusion when "foo" fails.
	require.Equal(t, 3, n, "SOD, library clause, error")

	_, err := p.Next()
	require.ErrorIs(t, err, ErrUnexpectedToken, "errors are sticky")
}

func TestParserBreakEarly(t *testing.T) {
	p := NewParser([]byte("library a; library b; library c;"))
	for id := range p.All() {
		if p.Chain().Get(id).Kind == BlockLibraryClause {
			break
		}
	}
	id, err := p.Next()
	require.NoError(t, err)
	require.Equal(t, BlockWhitespace, p.Chain().Get(id).Kind)
}

func TestParseKeepsBlocksBeforeError(t *testing.T) {
	doc, err := Parse([]byte("library a;\nentity e is generic (A : integer"))
	require.ErrorIs(t, err, ErrPrematureEnd)

	var ue *UnexpectedTokenError
	require.False(t, errors.As(err, &ue))
	require.GreaterOrEqual(t, doc.Len(), 3)
	require.Equal(t, BlockLibraryClause, doc.Block(doc.Blocks()[1]).Kind)
	require.Positive(t, doc.TokenCount())
	require.Less(t, doc.TokenCount(), doc.Chain().Stream().Len())
}

func TestDocumentTokenCount(t *testing.T) {
	source := []byte("entity e is end;")
	doc, err := Parse(source)
	require.NoError(t, err)

	stream, first, err := Tokenize(source)
	require.NoError(t, err)
	lexed := 0
	for _, err := range stream.Walk(first, stream.Tail()) {
		require.NoError(t, err)
		lexed++
	}
	require.Equal(t, 10, lexed)
	require.Equal(t, lexed, doc.TokenCount())
	require.Greater(t, doc.Chain().Stream().Len(), doc.TokenCount())

	empty := &Document{}
	require.Zero(t, empty.TokenCount())
}

func TestErrorPositions(t *testing.T) {
	_, err := Parse([]byte("library a;\n  use x y;"))
	var ue *UnexpectedTokenError
	require.ErrorAs(t, err, &ue)
	require.Equal(t, "y", ue.Token.Value)
	require.Equal(t, 2, ue.Token.Span.Start.Row)
	require.Equal(t, 9, ue.Token.Span.Start.Column)
	require.Contains(t, err.Error(), "2:9")
}

func TestIndentationWidth(t *testing.T) {
	source := []byte("entity e is\n\t  port (a : in bit);\nend;\n")
	for _, tc := range []struct {
		tabSize int
		want    int
	}{
		{0, 4},
		{2, 4},
		{4, 6},
		{8, 10},
	} {
		doc, err := Parse(source, WithTabSize(tc.tabSize))
		require.NoError(t, err)
		var found bool
		for _, id := range doc.Blocks() {
			if doc.Block(id).Kind != BlockIndentation {
				continue
			}
			w, err := doc.Indentation(id)
			require.NoError(t, err)
			require.Equal(t, tc.want, w, "tab size %d", tc.tabSize)
			found = true
		}
		require.True(t, found)
	}
}

func TestTokenize(t *testing.T) {
	stream, first, err := Tokenize([]byte("entity e is end;"))
	require.NoError(t, err)

	var values []string
	for id, err := range stream.Walk(first, stream.Tail()) {
		require.NoError(t, err)
		values = append(values, stream.Get(id).Value)
	}
	require.Equal(t, []string{"", "entity", " ", "e", " ", "is", " ", "end", ";", ""}, values)
	require.NoError(t, stream.Check(first))
}

func TestTokenizeError(t *testing.T) {
	_, _, err := Tokenize([]byte("x := \"open"))
	var le *LexError
	require.ErrorAs(t, err, &le)
	require.Equal(t, 1, le.Pos.Row)
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))

	_, err := Parse([]byte("library a;\n"), WithLogger(logger))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "component=engine")
	require.Contains(t, out, "component=lexer")
	require.Contains(t, out, "parse complete")
}

func TestNoLoggerNoOutput(t *testing.T) {
	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace})))
	t.Cleanup(func() { slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil))) })

	_, err := Parse([]byte("library a;\n"))
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
