package grammar

import (
	"github.com/vhdlblocks/vhdlblocks/internal/block"
	"github.com/vhdlblocks/vhdlblocks/internal/engine"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

// architectureDeclarativeRegion handles declarations between "is" and
// "begin".
func architectureDeclarativeRegion(ctx engine.Context) error {
	if layout(ctx) {
		return nil
	}
	kw, ok := reserved(ctx.Token())
	if !ok {
		return ctx.Unexpected("declaration or BEGIN")
	}
	switch kw {
	case token.KwSignal:
		ctx.Replace(token.KindKeyword, kw)
		ctx.SetCounter(0)
		ctx.SetNext(SignalDeclaration)
	case token.KwConstant:
		ctx.Replace(token.KindKeyword, kw)
		ctx.SetCounter(0)
		ctx.SetNext(ConstantDeclaration)
	case token.KwBegin:
		repl := ctx.Replace(token.KindKeyword, kw)
		ctx.Emit(block.KindArchitectureBegin, repl, repl, false)
		ctx.ClearMarker()
		ctx.SetNext(ArchitectureStatements)
	case token.KwEnd:
		return ctx.Unexpected("BEGIN")
	default:
		return ctx.Unsupported(lower(kw) + " declaration")
	}
	return nil
}

// declaration parses "signal|constant names : subtype [:= expression];".
// The part up to ":=" is a multi-part block completed by the ";" after
// the expression.
func declaration(kind block.Kind, end engine.State) engine.Handler {
	return func(ctx engine.Context) error {
		if inClause(ctx, kind) {
			return nil
		}
		tok := ctx.Token()
		depth := ctx.Counter()
		switch {
		case tok.Kind == token.KindWord, tok.Kind == token.KindExtendedIdentifier:
			classify(ctx, depth > 0)
		case tok.Is("("):
			ctx.Replace(token.KindOpeningBracket, token.KwNone)
			ctx.SetCounter(depth + 1)
		case tok.Is(")"):
			if depth == 0 {
				return ctx.Unexpected("';'")
			}
			ctx.Replace(token.KindClosingBracket, token.KwNone)
			ctx.SetCounter(depth - 1)
		case tok.Is(",") && depth == 0:
			ctx.Replace(token.KindDelimiter, token.KwNone)
		case tok.Is(":=") && depth == 0:
			repl := ctx.Replace(token.KindAssignment, token.KwNone)
			ctx.Emit(kind, ctx.Marker(), repl, true)
			ctx.ClearMarker()
			ctx.SetNext(end)
			ctx.Push(Expression)
			ctx.SetCounter(0)
		case tok.Is(";"):
			if depth > 0 {
				return ctx.Unexpected("')'")
			}
			repl := ctx.Replace(token.KindEnd, token.KwNone)
			ctx.Emit(kind, ctx.Marker(), repl, false)
			ctx.ClearMarker()
			ctx.SetNext(ArchitectureDeclarativeRegion)
		case tok.Kind == token.KindEndOfDocument:
			return ctx.Unexpected("';'")
		}
		return nil
	}
}

// declarationEnd takes the ";" reissued after a default expression.
func declarationEnd(kind block.Kind) engine.Handler {
	return func(ctx engine.Context) error {
		if !ctx.Token().Is(";") {
			return ctx.Unexpected("';'")
		}
		repl := ctx.Replace(token.KindEnd, token.KwNone)
		ctx.Emit(kind, repl, repl, false)
		ctx.ClearMarker()
		ctx.SetNext(ArchitectureDeclarativeRegion)
		return nil
	}
}

// architectureStatements handles the concurrent statement part.
func architectureStatements(ctx engine.Context) error {
	if layout(ctx) {
		return nil
	}
	tok := ctx.Token()
	if isName(tok) {
		ctx.Replace(token.KindIdentifier, token.KwNone)
		ctx.SetCounter(0)
		ctx.SetNext(SignalAssignment)
		return nil
	}
	kw, ok := reserved(tok)
	switch {
	case !ok:
		return ctx.Unexpected("concurrent statement or END")
	case kw == token.KwEnd:
		startEnd(ctx, ArchitectureEnd)
		return nil
	default:
		return ctx.Unsupported(lower(kw) + " statement")
	}
}

// signalAssignment parses the target of "target <= expression;".
func signalAssignment(ctx engine.Context) error {
	if inClause(ctx, block.KindSignalAssignment) {
		return nil
	}
	tok := ctx.Token()
	depth := ctx.Counter()
	switch {
	case tok.Is("<=") && depth == 0:
		repl := ctx.Replace(token.KindAssignment, token.KwNone)
		ctx.Emit(block.KindSignalAssignment, ctx.Marker(), repl, true)
		ctx.ClearMarker()
		ctx.SetNext(SignalAssignmentEnd)
		ctx.Push(Expression)
		ctx.SetCounter(0)
	case tok.Is(":") && depth == 0:
		return ctx.Unsupported("labeled statement")
	case tok.Is("("):
		ctx.Replace(token.KindOpeningBracket, token.KwNone)
		ctx.SetCounter(depth + 1)
	case tok.Is(")") && depth > 0:
		ctx.Replace(token.KindClosingBracket, token.KwNone)
		ctx.SetCounter(depth - 1)
	case tok.Kind == token.KindWord, tok.Kind == token.KindExtendedIdentifier:
		classify(ctx, depth > 0)
	case tok.Is(".") || tok.Is(",") && depth > 0:
	case tok.Kind.IsLiteral() && depth > 0:
	default:
		return ctx.Unexpected("'<='")
	}
	return nil
}

// signalAssignmentEnd takes the ";" reissued after the expression.
func signalAssignmentEnd(ctx engine.Context) error {
	if !ctx.Token().Is(";") {
		return ctx.Unexpected("';'")
	}
	repl := ctx.Replace(token.KindEnd, token.KwNone)
	ctx.Emit(block.KindSignalAssignment, repl, repl, false)
	ctx.ClearMarker()
	ctx.SetNext(ArchitectureStatements)
	return nil
}
