// Package grammar implements the VHDL state handlers that turn tokens
// into blocks: context clauses, entities with generic and port lists,
// architectures with object declarations and concurrent signal
// assignments, and the expressions inside them.
package grammar

import (
	"log/slog"
	"sync"

	"github.com/vhdlblocks/vhdlblocks/internal/block"
	"github.com/vhdlblocks/vhdlblocks/internal/engine"
	"github.com/vhdlblocks/vhdlblocks/internal/token"
)

// Parser states. Document is the initial state.
const (
	Document engine.State = iota
	Linebreak

	LibraryName
	LibraryNameEnd
	UseName
	UseSuffix
	UseSelected

	EntityName
	EntityIs
	EntityDeclarativeRegion
	EntityEnd

	GenericListOpen
	GenericListItem
	GenericListItemEnd
	GenericListClose
	PortListOpen
	PortListItem
	PortListItemEnd
	PortListClose

	Expression

	ArchitectureName
	ArchitectureOf
	ArchitectureEntity
	ArchitectureIs
	ArchitectureDeclarativeRegion
	SignalDeclaration
	SignalDeclarationEnd
	ConstantDeclaration
	ConstantDeclarationEnd
	ArchitectureStatements
	SignalAssignment
	SignalAssignmentEnd
	ArchitectureEnd

	numStates
)

var (
	tableOnce sync.Once
	table     *engine.Table
)

// Table returns the dispatch table for all states.
func Table() *engine.Table {
	tableOnce.Do(func() {
		table = build()
	})
	return table
}

// New returns a parser state that reads tokens from src and appends
// blocks to chain, starting at Document.
func New(src engine.Source, chain *block.Chain, logger *slog.Logger) *engine.ParserState {
	return engine.New(src, chain, Table(), Document, logger)
}

func build() *engine.Table {
	t := &engine.Table{}

	t.Bind(Document, "Document", document)
	t.Bind(Linebreak, "Linebreak", linebreak)

	t.Bind(LibraryName, "LibraryName", name(block.KindLibraryClause, "library name", LibraryNameEnd))
	t.Bind(LibraryNameEnd, "LibraryNameEnd", libraryNameEnd)
	t.Bind(UseName, "UseName", name(block.KindUseClause, "library name", UseSuffix))
	t.Bind(UseSuffix, "UseSuffix", useSuffix)
	t.Bind(UseSelected, "UseSelected", useSelected)

	t.Bind(EntityName, "EntityName", name(block.KindEntityName, "entity name", EntityIs))
	t.Bind(EntityIs, "EntityIs", keyword(block.KindEntityName, token.KwIs, EntityDeclarativeRegion, true))
	t.Bind(EntityDeclarativeRegion, "EntityDeclarativeRegion", entityDeclarativeRegion)
	t.Bind(EntityEnd, "EntityEnd", endClause(block.KindEntityEnd, token.KwEntity, Document))

	for _, l := range []*list{genericList, portList} {
		t.Bind(l.openState, l.name+"Open", l.open)
		t.Bind(l.itemState, l.name+"Item", l.item)
		t.Bind(l.itemEndState, l.name+"ItemEnd", l.itemEnd)
		t.Bind(l.closeState, l.name+"Close", l.close)
	}

	t.Bind(Expression, "Expression", expression)

	t.Bind(ArchitectureName, "ArchitectureName", name(block.KindArchitectureName, "architecture name", ArchitectureOf))
	t.Bind(ArchitectureOf, "ArchitectureOf", keyword(block.KindArchitectureName, token.KwOf, ArchitectureEntity, false))
	t.Bind(ArchitectureEntity, "ArchitectureEntity", name(block.KindArchitectureName, "entity name", ArchitectureIs))
	t.Bind(ArchitectureIs, "ArchitectureIs", keyword(block.KindArchitectureName, token.KwIs, ArchitectureDeclarativeRegion, true))
	t.Bind(ArchitectureDeclarativeRegion, "ArchitectureDeclarativeRegion", architectureDeclarativeRegion)
	t.Bind(SignalDeclaration, "SignalDeclaration", declaration(block.KindSignalDeclaration, SignalDeclarationEnd))
	t.Bind(SignalDeclarationEnd, "SignalDeclarationEnd", declarationEnd(block.KindSignalDeclaration))
	t.Bind(ConstantDeclaration, "ConstantDeclaration", declaration(block.KindConstantDeclaration, ConstantDeclarationEnd))
	t.Bind(ConstantDeclarationEnd, "ConstantDeclarationEnd", declarationEnd(block.KindConstantDeclaration))
	t.Bind(ArchitectureStatements, "ArchitectureStatements", architectureStatements)
	t.Bind(SignalAssignment, "SignalAssignment", signalAssignment)
	t.Bind(SignalAssignmentEnd, "SignalAssignmentEnd", signalAssignmentEnd)
	t.Bind(ArchitectureEnd, "ArchitectureEnd", endClause(block.KindArchitectureEnd, token.KwArchitecture, Document))

	return t
}
