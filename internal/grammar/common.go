package grammar

import (
	"strings"

	"github.com/vhdlblocks/vhdlblocks/internal/block"
	"github.com/vhdlblocks/vhdlblocks/internal/engine"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

// reserved returns the keyword of a word token.
func reserved(tok token.Token) (token.Keyword, bool) {
	if tok.Kind != token.KindWord {
		return token.KwNone, false
	}
	return token.LookupKeyword(tok.Value)
}

func isKeyword(tok token.Token, kw token.Keyword) bool {
	got, ok := reserved(tok)
	return ok && got == kw
}

// isName reports whether tok can be an identifier.
func isName(tok token.Token) bool {
	switch tok.Kind {
	case token.KindExtendedIdentifier:
		return true
	case token.KindWord:
		_, ok := reserved(tok)
		return !ok
	default:
		return false
	}
}

// classify replaces a word with a keyword or identifier token. Keywords
// that act as operators become operator tokens when asOperator is set.
func classify(ctx engine.Context, asOperator bool) token.ID {
	tok := ctx.Token()
	if tok.Kind == token.KindExtendedIdentifier {
		return ctx.Replace(token.KindIdentifier, token.KwNone)
	}
	kw, ok := reserved(tok)
	switch {
	case !ok:
		return ctx.Replace(token.KindIdentifier, token.KwNone)
	case asOperator && kw.IsOperator():
		return ctx.Replace(token.KindOperator, kw)
	default:
		return ctx.Replace(token.KindKeyword, kw)
	}
}

func lower(kw token.Keyword) string {
	return strings.ToLower(kw.String())
}

// layoutKind returns the block kind for a layout token.
func layoutKind(k token.Kind) block.Kind {
	switch {
	case k == token.KindIndentation:
		return block.KindIndentation
	case k == token.KindLinebreak:
		return block.KindLinebreak
	case k.IsComment():
		return block.KindComment
	default:
		return block.KindWhitespace
	}
}

func isLayout(k token.Kind) bool {
	return k.IsSpace() || k.IsComment() || k == token.KindLinebreak
}

// endsLine reports whether the next token starts a new line.
func endsLine(k token.Kind) bool {
	return k == token.KindLinebreak || k == token.KindSingleLineComment
}

// layout emits a block for a whitespace, line break or comment token
// in a region where such tokens stand alone.
func layout(ctx engine.Context) bool {
	tok := ctx.Token()
	if !isLayout(tok.Kind) {
		return false
	}
	id := ctx.TokenID()
	ctx.Emit(layoutKind(tok.Kind), id, id, false)
	ctx.ClearMarker()
	return true
}

// inClause handles layout tokens inside a construct of the given kind.
// Spaces extend the construct unless nothing has been accumulated yet.
// Comments and line breaks split it: the part so far becomes a
// multi-part block and the interrupting token gets its own block.
func inClause(ctx engine.Context, kind block.Kind) bool {
	tok := ctx.Token()
	switch {
	case tok.Kind.IsSpace():
		if ctx.Marker() == ctx.TokenID() {
			layout(ctx)
		}
		return true
	case tok.Kind.IsComment(), tok.Kind == token.KindLinebreak:
		split(ctx, kind)
		return true
	default:
		return false
	}
}

// split emits the part accumulated before the current layout token as a
// multi-part block, spaces included, and the token as its own block. If
// the construct's closing token comes next, no unmarked part follows and
// the close block completes the construct.
func split(ctx engine.Context, kind block.Kind) {
	tok, id := ctx.Token(), ctx.TokenID()
	if m := ctx.Marker(); m.IsValid() && m != id {
		ctx.Emit(kind, m, ctx.Prev(id), true)
	}
	ctx.Emit(layoutKind(tok.Kind), id, id, false)
	ctx.ClearMarker()
	if endsLine(tok.Kind) {
		ctx.Push(Linebreak)
	}
}

// linebreak runs for the token after a line ending inside a construct.
// Indentation gets its own block; anything else goes back to the
// construct.
func linebreak(ctx engine.Context) error {
	if ctx.Token().Kind == token.KindIndentation {
		id := ctx.TokenID()
		ctx.Emit(block.KindIndentation, id, id, false)
		return ctx.Pop(1)
	}
	if err := ctx.Pop(1); err != nil {
		return err
	}
	ctx.Reissue()
	return nil
}

// closePart emits the part of a construct accumulated before the
// current token. Trailing spaces go to their own block. It returns false
// if there was nothing but spaces to emit.
func closePart(ctx engine.Context, kind block.Kind) bool {
	id, m := ctx.TokenID(), ctx.Marker()
	defer ctx.ClearMarker()
	if !m.IsValid() || m == id {
		return false
	}
	end := ctx.Prev(id)
	last, trail := end, token.None
	for last != m && ctx.TokenAt(last).Kind.IsSpace() {
		trail = last
		last = ctx.Prev(last)
	}
	if ctx.TokenAt(last).Kind.IsSpace() {
		ctx.Emit(layoutKind(ctx.TokenAt(m).Kind), m, end, false)
		return false
	}
	ctx.Emit(kind, m, last, false)
	if trail.IsValid() {
		ctx.Emit(block.KindWhitespace, trail, end, false)
	}
	return true
}

// precedingSyntax returns the closest token before the current one that
// is not layout.
func precedingSyntax(ctx engine.Context) token.Token {
	id := ctx.Prev(ctx.TokenID())
	for id.IsValid() && isLayout(ctx.TokenAt(id).Kind) {
		id = ctx.Prev(id)
	}
	if !id.IsValid() {
		return token.Token{}
	}
	return ctx.TokenAt(id)
}

// name accepts an identifier inside a keyword clause.
func name(kind block.Kind, what string, next engine.State) engine.Handler {
	return func(ctx engine.Context) error {
		if inClause(ctx, kind) {
			return nil
		}
		if !isName(ctx.Token()) {
			return ctx.Unexpected(what)
		}
		ctx.Replace(token.KindIdentifier, token.KwNone)
		ctx.SetNext(next)
		return nil
	}
}

// keyword accepts one keyword inside a keyword clause. If closes is set
// the keyword completes the clause's block.
func keyword(kind block.Kind, kw token.Keyword, next engine.State, closes bool) engine.Handler {
	return func(ctx engine.Context) error {
		if inClause(ctx, kind) {
			return nil
		}
		if !isKeyword(ctx.Token(), kw) {
			return ctx.Unexpected(kw.String())
		}
		repl := ctx.Replace(token.KindKeyword, kw)
		if closes {
			ctx.Emit(kind, ctx.Marker(), repl, false)
			ctx.ClearMarker()
		}
		ctx.SetNext(next)
		return nil
	}
}

// endClause parses "end [kw] [name];". The counter tracks which optional
// parts have been seen.
func endClause(kind block.Kind, kw token.Keyword, next engine.State) engine.Handler {
	return func(ctx engine.Context) error {
		if inClause(ctx, kind) {
			return nil
		}
		tok := ctx.Token()
		switch {
		case tok.Is(";"):
			repl := ctx.Replace(token.KindEnd, token.KwNone)
			ctx.Emit(kind, ctx.Marker(), repl, false)
			ctx.ClearMarker()
			ctx.SetNext(next)
		case ctx.Counter() == 0 && isKeyword(tok, kw):
			ctx.Replace(token.KindKeyword, kw)
			ctx.SetCounter(1)
		case ctx.Counter() < 2 && isName(tok):
			ctx.Replace(token.KindIdentifier, token.KwNone)
			ctx.SetCounter(2)
		default:
			return ctx.Unexpected("';'")
		}
		return nil
	}
}

// startEnd begins an end clause at the current "end" keyword.
func startEnd(ctx engine.Context, next engine.State) {
	ctx.Replace(token.KindKeyword, token.KwEnd)
	ctx.SetCounter(0)
	ctx.SetNext(next)
}
