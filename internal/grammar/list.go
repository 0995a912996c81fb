package grammar

import (
	"github.com/vhdlblocks/vhdlblocks/internal/block"
	"github.com/vhdlblocks/vhdlblocks/internal/engine"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

// list describes one flavor of interface list: "generic (...);" or
// "port (...);".
//
// The region that sees the keyword pushes the open state. On "(" the
// open state becomes the close state and pushes the item state. Items
// run up to ";" or a ")" at parenthesis depth zero; a ":=" pushes an
// expression for the default value and leaves the item end state to
// take the delimiter when the expression reissues it. The ")" pops back
// to the close state, which emits ");" and pops back to the region.
type list struct {
	name    string
	keyword token.Keyword

	openKind, itemKind, delimiterKind, closeKind block.Kind

	openState, itemState, itemEndState, closeState engine.State

	// unsupported lists leading keywords of interface declarations
	// this list cannot parse.
	unsupported []token.Keyword
}

var genericList = &list{
	name:          "GenericList",
	keyword:       token.KwGeneric,
	openKind:      block.KindGenericListOpen,
	itemKind:      block.KindGenericListItem,
	delimiterKind: block.KindGenericListDelimiter,
	closeKind:     block.KindGenericListClose,
	openState:     GenericListOpen,
	itemState:     GenericListItem,
	itemEndState:  GenericListItemEnd,
	closeState:    GenericListClose,
	unsupported: []token.Keyword{
		token.KwType, token.KwFunction, token.KwProcedure,
		token.KwImpure, token.KwPure, token.KwPackage,
	},
}

var portList = &list{
	name:          "PortList",
	keyword:       token.KwPort,
	openKind:      block.KindPortListOpen,
	itemKind:      block.KindPortListItem,
	delimiterKind: block.KindPortListDelimiter,
	closeKind:     block.KindPortListClose,
	openState:     PortListOpen,
	itemState:     PortListItem,
	itemEndState:  PortListItemEnd,
	closeState:    PortListClose,
}

// begin enters the list at its keyword.
func (l *list) begin(ctx engine.Context) {
	repl := ctx.Replace(token.KindKeyword, l.keyword)
	ctx.ClearMarker()
	ctx.Push(l.openState)
	ctx.SetMarker(repl)
}

func (l *list) open(ctx engine.Context) error {
	if inClause(ctx, l.openKind) {
		return nil
	}
	if !ctx.Token().Is("(") {
		return ctx.Unexpected("'('")
	}
	repl := ctx.Replace(token.KindBoundary, token.KwNone)
	ctx.Emit(l.openKind, ctx.Marker(), repl, false)
	ctx.ClearMarker()
	ctx.SetNext(l.closeState)
	ctx.Push(l.itemState)
	ctx.SetCounter(0)
	return nil
}

func (l *list) item(ctx engine.Context) error {
	if inClause(ctx, l.itemKind) {
		return nil
	}
	tok := ctx.Token()
	depth := ctx.Counter()
	switch {
	case tok.Kind == token.KindWord, tok.Kind == token.KindExtendedIdentifier:
		if kw, ok := reserved(tok); ok && ctx.Marker() == ctx.TokenID() {
			for _, u := range l.unsupported {
				if kw == u {
					return ctx.Unsupported("interface " + lower(kw) + " declaration")
				}
			}
		}
		classify(ctx, depth > 0)
	case tok.Is("("):
		ctx.Replace(token.KindOpeningBracket, token.KwNone)
		ctx.SetCounter(depth + 1)
	case tok.Is(")") && depth > 0:
		ctx.Replace(token.KindClosingBracket, token.KwNone)
		ctx.SetCounter(depth - 1)
	case tok.Is(",") && depth == 0:
		ctx.Replace(token.KindDelimiter, token.KwNone)
	case tok.Is(":=") && depth == 0:
		repl := ctx.Replace(token.KindAssignment, token.KwNone)
		if ctx.Marker() == repl && !l.continues(ctx) {
			return ctx.Unexpected("interface element")
		}
		ctx.Emit(l.itemKind, ctx.Marker(), repl, false)
		ctx.ClearMarker()
		ctx.SetNext(l.itemEndState)
		ctx.Push(Expression)
		ctx.SetCounter(0)
	case tok.Is(";") && depth == 0, tok.Is(")") && depth == 0:
		if !closePart(ctx, l.itemKind) && !l.continues(ctx) {
			return ctx.Unexpected("interface element")
		}
		return l.itemEnd(ctx)
	case tok.Is(";"):
		return ctx.Unexpected("')'")
	case tok.Kind == token.KindEndOfDocument:
		return ctx.Unexpected("')'")
	}
	return nil
}

// continues reports whether an item was split before the current token,
// so that an empty final part still completes it.
func (l *list) continues(ctx engine.Context) bool {
	prev := precedingSyntax(ctx)
	switch prev.Kind {
	case token.KindBoundary, token.KindDelimiter, token.KindStartOfDocument:
		return false
	default:
		return true
	}
}

// itemEnd takes the ";" or ")" after an item.
func (l *list) itemEnd(ctx engine.Context) error {
	tok := ctx.Token()
	switch {
	case tok.Is(";"):
		repl := ctx.Replace(token.KindDelimiter, token.KwNone)
		ctx.Emit(l.delimiterKind, repl, repl, false)
		ctx.ClearMarker()
		ctx.SetNext(l.itemState)
	case tok.Is(")"):
		if err := ctx.Pop(1); err != nil {
			return err
		}
		repl := ctx.Replace(token.KindBoundary, token.KwNone)
		ctx.SetMarker(repl)
	default:
		return ctx.Unexpected("';' or ')'")
	}
	return nil
}

// close takes the ";" after the closing parenthesis.
func (l *list) close(ctx engine.Context) error {
	if inClause(ctx, l.closeKind) {
		return nil
	}
	if !ctx.Token().Is(";") {
		return ctx.Unexpected("';'")
	}
	repl := ctx.Replace(token.KindEnd, token.KwNone)
	ctx.Emit(l.closeKind, ctx.Marker(), repl, false)
	ctx.ClearMarker()
	return ctx.Pop(1)
}
