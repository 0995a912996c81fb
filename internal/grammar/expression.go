package grammar

import (
	"github.com/vhdlblocks/vhdlblocks/internal/block"
	"github.com/vhdlblocks/vhdlblocks/internal/engine"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

// operators lists the symbols reclassified as operators inside
// expressions.
var operators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "&": true,
	"=": true, "<": true, ">": true, "??": true,
	"**": true, "/=": true, "<=": true, ">=": true,
	"?=": true, "?/=": true, "?<": true, "?<=": true, "?>": true, "?>=": true,
}

// expression accumulates an expression until ";" or an unmatched ")".
// The counter is the parenthesis depth. The caller pushes this state
// with the counter at zero; the terminating token is reissued to the
// caller after the pop.
func expression(ctx engine.Context) error {
	if inClause(ctx, block.KindExpression) {
		return nil
	}
	tok := ctx.Token()
	depth := ctx.Counter()
	switch {
	case tok.Kind == token.KindWord, tok.Kind == token.KindExtendedIdentifier:
		classify(ctx, true)
	case tok.Is("("):
		ctx.Replace(token.KindOpeningBracket, token.KwNone)
		ctx.SetCounter(depth + 1)
	case tok.Is(")") && depth > 0:
		ctx.Replace(token.KindClosingBracket, token.KwNone)
		ctx.SetCounter(depth - 1)
	case tok.Is(";") && depth == 0, tok.Is(")") && depth == 0:
		if !closePart(ctx, block.KindExpression) && precedingSyntax(ctx).Kind == token.KindAssignment {
			return ctx.Unexpected("expression")
		}
		if err := ctx.Pop(1); err != nil {
			return err
		}
		ctx.Reissue()
	case tok.Is(";"):
		return ctx.Unexpected("')'")
	case tok.Is(","):
		if depth == 0 {
			return ctx.Unexpected("';' or ')'")
		}
		ctx.Replace(token.KindDelimiter, token.KwNone)
	case tok.Kind == token.KindCharacter || tok.Kind == token.KindFusedCharacter:
		if operators[tok.Value] {
			ctx.Replace(token.KindOperator, token.KwNone)
		}
	case tok.Kind == token.KindEndOfDocument:
		return ctx.Unexpected("';'")
	}
	return nil
}
