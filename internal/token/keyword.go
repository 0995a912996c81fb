package token

import (
	"sort"
	"strings"
)

// Keyword identifies a VHDL reserved word.
type Keyword int

const (
	KwNone Keyword = iota
	KwAbs
	KwAfter
	KwAlias
	KwAll
	KwAnd
	KwArchitecture
	KwAssert
	KwAttribute
	KwBegin
	KwBlock
	KwBuffer
	KwBus
	KwCase
	KwComponent
	KwConfiguration
	KwConstant
	KwContext
	KwDownto
	KwElse
	KwEnd
	KwEntity
	KwFile
	KwFor
	KwFunction
	KwGenerate
	KwGeneric
	KwIf
	KwImpure
	KwIn
	KwInout
	KwIs
	KwLibrary
	KwLinkage
	KwLoop
	KwMap
	KwMod
	KwNand
	KwNor
	KwNot
	KwNull
	KwOf
	KwOr
	KwOthers
	KwOut
	KwPackage
	KwPort
	KwProcedure
	KwProcess
	KwPure
	KwRange
	KwRegister
	KwRem
	KwReport
	KwRol
	KwRor
	KwSelect
	KwShared
	KwSignal
	KwSla
	KwSll
	KwSra
	KwSrl
	KwSubtype
	KwThen
	KwTo
	KwType
	KwUse
	KwVariable
	KwWait
	KwWhen
	KwWith
	KwXnor
	KwXor
)

// keywords is the sorted keyword table for binary search.
// IMPORTANT: This slice MUST remain sorted alphabetically by text.
// Texts are lower case; lookups fold the input first.
var keywords = []struct {
	text string
	kw   Keyword
}{
	{"abs", KwAbs},
	{"after", KwAfter},
	{"alias", KwAlias},
	{"all", KwAll},
	{"and", KwAnd},
	{"architecture", KwArchitecture},
	{"assert", KwAssert},
	{"attribute", KwAttribute},
	{"begin", KwBegin},
	{"block", KwBlock},
	{"buffer", KwBuffer},
	{"bus", KwBus},
	{"case", KwCase},
	{"component", KwComponent},
	{"configuration", KwConfiguration},
	{"constant", KwConstant},
	{"context", KwContext},
	{"downto", KwDownto},
	{"else", KwElse},
	{"end", KwEnd},
	{"entity", KwEntity},
	{"file", KwFile},
	{"for", KwFor},
	{"function", KwFunction},
	{"generate", KwGenerate},
	{"generic", KwGeneric},
	{"if", KwIf},
	{"impure", KwImpure},
	{"in", KwIn},
	{"inout", KwInout},
	{"is", KwIs},
	{"library", KwLibrary},
	{"linkage", KwLinkage},
	{"loop", KwLoop},
	{"map", KwMap},
	{"mod", KwMod},
	{"nand", KwNand},
	{"nor", KwNor},
	{"not", KwNot},
	{"null", KwNull},
	{"of", KwOf},
	{"or", KwOr},
	{"others", KwOthers},
	{"out", KwOut},
	{"package", KwPackage},
	{"port", KwPort},
	{"procedure", KwProcedure},
	{"process", KwProcess},
	{"pure", KwPure},
	{"range", KwRange},
	{"register", KwRegister},
	{"rem", KwRem},
	{"report", KwReport},
	{"rol", KwRol},
	{"ror", KwRor},
	{"select", KwSelect},
	{"shared", KwShared},
	{"signal", KwSignal},
	{"sla", KwSla},
	{"sll", KwSll},
	{"sra", KwSra},
	{"srl", KwSrl},
	{"subtype", KwSubtype},
	{"then", KwThen},
	{"to", KwTo},
	{"type", KwType},
	{"use", KwUse},
	{"variable", KwVariable},
	{"wait", KwWait},
	{"when", KwWhen},
	{"with", KwWith},
	{"xnor", KwXnor},
	{"xor", KwXor},
}

// LookupKeyword returns the Keyword for a word, or (KwNone, false) if the
// word is not reserved. Matching is case-insensitive.
func LookupKeyword(text string) (Keyword, bool) {
	text = strings.ToLower(text)
	idx := sort.Search(len(keywords), func(i int) bool {
		return keywords[i].text >= text
	})
	if idx < len(keywords) && keywords[idx].text == text {
		return keywords[idx].kw, true
	}
	return KwNone, false
}

// String returns the keyword in upper case, or "NONE".
func (k Keyword) String() string {
	// The table is in enum order, so the keyword's index is k-1.
	if k > KwNone && int(k) <= len(keywords) {
		return strings.ToUpper(keywords[k-1].text)
	}
	return "NONE"
}

// IsOperator returns true for keywords that act as operators in
// expressions.
func (k Keyword) IsOperator() bool {
	switch k {
	case KwAbs, KwAnd, KwMod, KwNand, KwNor, KwNot, KwOr, KwRem,
		KwRol, KwRor, KwSla, KwSll, KwSra, KwSrl, KwXnor, KwXor:
		return true
	default:
		return false
	}
}

// IsMode returns true for interface modes (in, out, inout, buffer, linkage).
func (k Keyword) IsMode() bool {
	switch k {
	case KwIn, KwOut, KwInout, KwBuffer, KwLinkage:
		return true
	default:
		return false
	}
}
