package grammar

import (
	"github.com/vhdlblocks/vhdlblocks/internal/engine"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

// entityDeclarativeRegion handles the entity header: generic and port
// clauses up to "end".
func entityDeclarativeRegion(ctx engine.Context) error {
	if layout(ctx) {
		return nil
	}
	tok := ctx.Token()
	kw, ok := reserved(tok)
	if !ok {
		return ctx.Unexpected("GENERIC, PORT or END")
	}
	switch kw {
	case token.KwGeneric:
		genericList.begin(ctx)
	case token.KwPort:
		portList.begin(ctx)
	case token.KwEnd:
		startEnd(ctx, EntityEnd)
	case token.KwBegin:
		return ctx.Unsupported("entity statement part")
	default:
		return ctx.Unsupported(lower(kw) + " declaration in entity")
	}
	return nil
}
