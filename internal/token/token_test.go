package token

import (
	"errors"
	"sort"
	"testing"

	"github.com/vhdlblocks/vhdlblocks/internal/testutil"
	"github.com/vhdlblocks/vhdlblocks/internal/types"
)

func TestKeywordTableSorted(t *testing.T) {
	testutil.True(t, sort.SliceIsSorted(keywords, func(i, j int) bool {
		return keywords[i].text < keywords[j].text
	}), "keyword table must be sorted")
	for i, e := range keywords {
		testutil.Equal(t, Keyword(i+1), e.kw, "keyword %q out of enum order", e.text)
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		want Keyword
		ok   bool
	}{
		{"entity", KwEntity, true},
		{"ENTITY", KwEntity, true},
		{"Architecture", KwArchitecture, true},
		{"xor", KwXor, true},
		{"abs", KwAbs, true},
		{"clk", KwNone, false},
		{"", KwNone, false},
		{"zzz", KwNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := LookupKeyword(tt.text)
			testutil.Equal(t, tt.ok, ok)
			testutil.Equal(t, tt.want, got)
		})
	}
}

func TestKeywordString(t *testing.T) {
	testutil.Equal(t, "ENTITY", KwEntity.String())
	testutil.Equal(t, "XOR", KwXor.String())
	testutil.Equal(t, "NONE", KwNone.String())
	testutil.Equal(t, "NONE", Keyword(10000).String())
}

func TestKeywordClasses(t *testing.T) {
	testutil.True(t, KwAnd.IsOperator())
	testutil.True(t, KwSll.IsOperator())
	testutil.False(t, KwEntity.IsOperator())
	testutil.True(t, KwInout.IsMode())
	testutil.False(t, KwSignal.IsMode())
}

func TestKindString(t *testing.T) {
	testutil.Equal(t, "StartOfDocument", KindStartOfDocument.String())
	testutil.Equal(t, "FusedCharacter", KindFusedCharacter.String())
	testutil.Equal(t, "Assignment", KindAssignment.String())
	testutil.Equal(t, "Kind(99)", Kind(99).String())
}

func TestKindClasses(t *testing.T) {
	testutil.True(t, KindSpace.IsSpace())
	testutil.True(t, KindIndentation.IsSpace())
	testutil.False(t, KindLinebreak.IsSpace())
	testutil.True(t, KindMultiLineComment.IsComment())
	testutil.True(t, KindCharacterLiteral.IsLiteral())
	testutil.False(t, KindWord.IsReclassified())
	testutil.True(t, KindKeyword.IsReclassified())
	testutil.True(t, KindAssignment.IsReclassified())
}

func TestTokenPredicates(t *testing.T) {
	semi := Token{Kind: KindCharacter, Value: ";"}
	assign := Token{Kind: KindFusedCharacter, Value: ":="}
	word := Token{Kind: KindWord, Value: "Entity"}

	testutil.True(t, semi.Is(";"))
	testutil.True(t, assign.Is(":="))
	testutil.False(t, word.Is("Entity"))
	testutil.True(t, word.IsWord("entity"))
	testutil.False(t, semi.IsWord(";"))
}

// build appends a document made of the given values between the sentinels.
func build(values ...string) (*Stream, []ID) {
	s := NewStream(len(values) + 2)
	ids := []ID{s.Append(KindStartOfDocument, "", types.Span{})}
	for _, v := range values {
		ids = append(ids, s.Append(KindWord, v, types.Span{}))
	}
	ids = append(ids, s.Append(KindEndOfDocument, "", types.Span{}))
	return s, ids
}

func TestStreamAppendLinks(t *testing.T) {
	s, ids := build("a", " ", "b")
	testutil.Len(t, ids, 5)
	testutil.Equal(t, None, s.Prev(ids[0]))
	testutil.Equal(t, None, s.Next(ids[4]))
	for i := 1; i < len(ids); i++ {
		testutil.Equal(t, ids[i], s.Next(ids[i-1]))
		testutil.Equal(t, ids[i-1], s.Prev(ids[i]))
	}
	testutil.Equal(t, ids[4], s.Tail())
	testutil.NoError(t, s.Check(ids[0]))

	text, err := s.Render(ids[0], ids[4])
	testutil.NoError(t, err)
	testutil.Equal(t, "a b", text)
}

func TestStreamReplace(t *testing.T) {
	s, ids := build("entity", " ", "foo")
	kw := s.Replace(ids[1], KindKeyword, KwEntity)

	// Backward side is linked immediately.
	testutil.Equal(t, ids[0], s.Prev(kw))
	testutil.Equal(t, kw, s.Next(ids[0]))
	// Forward side waits for Link.
	testutil.Equal(t, None, s.Next(kw))
	err := s.Check(ids[0])
	testutil.ErrorIs(t, err, ErrBrokenChain)

	s.Link(kw, ids[2])
	testutil.NoError(t, s.Check(ids[0]))

	got := s.Get(kw)
	testutil.Equal(t, KindKeyword, got.Kind)
	testutil.Equal(t, KwEntity, got.Keyword)
	testutil.Equal(t, "entity", got.Value)

	text, err := s.Render(ids[0], ids[4])
	testutil.NoError(t, err)
	testutil.Equal(t, "entity foo", text)

	// The superseded token keeps its content.
	testutil.Equal(t, KindWord, s.Get(ids[1]).Kind)
	testutil.Equal(t, 6, s.Len())
}

func TestStreamWalkBrokenChain(t *testing.T) {
	s, ids := build("a", "b")
	s.tokens[ids[1]].next = None

	var seen []ID
	var walkErr error
	for id, err := range s.Walk(ids[0], ids[3]) {
		if err != nil {
			walkErr = err
			break
		}
		seen = append(seen, id)
	}
	testutil.SliceEqual(t, []ID{ids[0], ids[1]}, seen)
	testutil.ErrorIs(t, walkErr, ErrBrokenChain)

	var le *LinkageError
	testutil.True(t, errors.As(walkErr, &le))
}

func TestStreamWalkStopsEarly(t *testing.T) {
	s, ids := build("a", "b", "c")
	n := 0
	for range s.Walk(ids[0], ids[4]) {
		n++
		if n == 2 {
			break
		}
	}
	testutil.Equal(t, 2, n)
}

func TestStreamCheck(t *testing.T) {
	t.Run("asymmetric", func(t *testing.T) {
		s, ids := build("a", "b")
		s.tokens[ids[2]].prev = ids[0]
		testutil.ErrorIs(t, s.Check(ids[0]), ErrBrokenChain)
	})
	t.Run("no start of document", func(t *testing.T) {
		s, ids := build("a")
		testutil.ErrorIs(t, s.Check(ids[1]), ErrBrokenChain)
		testutil.ErrorIs(t, s.Check(None), ErrBrokenChain)
	})
	t.Run("cycle", func(t *testing.T) {
		s, ids := build("a", "b")
		s.Link(ids[2], ids[1])
		testutil.ErrorIs(t, s.Check(ids[0]), ErrBrokenChain)
	})
}

func TestErrors(t *testing.T) {
	tok := Token{Kind: KindWord, Value: "foo", Span: types.NewSpan(types.Position{Row: 2, Column: 5}, types.Position{Row: 2, Column: 8})}

	tests := []struct {
		name     string
		err      error
		sentinel error
		contains string
	}{
		{"linkage", &LinkageError{Cause: ErrStackUnderflow, Token: tok, Message: "pop 2 of 1"}, ErrStackUnderflow, "pop 2 of 1"},
		{"unexpected", &UnexpectedTokenError{Token: tok, State: "EntityName", Expected: "identifier"}, ErrUnexpectedToken, "expected identifier"},
		{"premature", &PrematureEndError{Token: tok, State: "GenericListItem"}, ErrPrematureEnd, "in GenericListItem"},
		{"unsupported", &UnsupportedError{Token: tok, Construct: "process"}, ErrUnsupported, "process"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.ErrorIs(t, tt.err, tt.sentinel)
			testutil.Contains(t, tt.err.Error(), tt.contains)
			testutil.Contains(t, tt.err.Error(), "2:5")
		})
	}
}
