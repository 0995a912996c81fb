package grammar

import (
	"github.com/vhdlblocks/vhdlblocks/internal/block"
	"github.com/vhdlblocks/vhdlblocks/internal/engine"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

// document handles design units and context clauses at the top level.
func document(ctx engine.Context) error {
	if layout(ctx) {
		return nil
	}
	tok, id := ctx.Token(), ctx.TokenID()
	if tok.Kind == token.KindEndOfDocument {
		ctx.Emit(block.KindEndOfDocument, id, id, false)
		return nil
	}
	kw, ok := reserved(tok)
	if !ok {
		return ctx.Unexpected("design unit or context clause")
	}
	switch kw {
	case token.KwLibrary:
		ctx.Replace(token.KindKeyword, kw)
		ctx.SetNext(LibraryName)
	case token.KwUse:
		ctx.Replace(token.KindKeyword, kw)
		ctx.SetNext(UseName)
	case token.KwEntity:
		ctx.Replace(token.KindKeyword, kw)
		ctx.SetNext(EntityName)
	case token.KwArchitecture:
		ctx.Replace(token.KindKeyword, kw)
		ctx.SetNext(ArchitectureName)
	case token.KwContext, token.KwPackage, token.KwConfiguration:
		return ctx.Unsupported(lower(kw) + " declaration")
	default:
		return ctx.Unexpected("design unit or context clause")
	}
	return nil
}

// libraryNameEnd follows a name in "library a, b;".
func libraryNameEnd(ctx engine.Context) error {
	if inClause(ctx, block.KindLibraryClause) {
		return nil
	}
	tok := ctx.Token()
	switch {
	case tok.Is(","):
		ctx.Replace(token.KindDelimiter, token.KwNone)
		ctx.SetNext(LibraryName)
	case tok.Is(";"):
		finishClause(ctx, block.KindLibraryClause)
	default:
		return ctx.Unexpected("',' or ';'")
	}
	return nil
}

// useSuffix follows a name or suffix in "use lib.pkg.all;".
func useSuffix(ctx engine.Context) error {
	if inClause(ctx, block.KindUseClause) {
		return nil
	}
	tok := ctx.Token()
	switch {
	case tok.Is("."):
		ctx.SetNext(UseSelected)
	case tok.Is(","):
		ctx.Replace(token.KindDelimiter, token.KwNone)
		ctx.SetNext(UseName)
	case tok.Is(";"):
		finishClause(ctx, block.KindUseClause)
	default:
		return ctx.Unexpected("'.', ',' or ';'")
	}
	return nil
}

// useSelected accepts the suffix after a dot: a name, an operator
// symbol, a character literal or ALL.
func useSelected(ctx engine.Context) error {
	if inClause(ctx, block.KindUseClause) {
		return nil
	}
	tok := ctx.Token()
	switch {
	case isKeyword(tok, token.KwAll):
		ctx.Replace(token.KindKeyword, token.KwAll)
	case isName(tok):
		ctx.Replace(token.KindIdentifier, token.KwNone)
	case tok.Kind == token.KindStringLiteral, tok.Kind == token.KindCharacterLiteral:
	default:
		return ctx.Unexpected("suffix")
	}
	ctx.SetNext(UseSuffix)
	return nil
}

// finishClause ends a context clause at the current ";".
func finishClause(ctx engine.Context, kind block.Kind) {
	repl := ctx.Replace(token.KindEnd, token.KwNone)
	ctx.Emit(kind, ctx.Marker(), repl, false)
	ctx.ClearMarker()
	ctx.SetNext(Document)
}
