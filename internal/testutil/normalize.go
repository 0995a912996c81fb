package testutil

import (
	"fmt"
	"strings"
)

// Summary formats a block as "Kind|text". A star after the kind marks
// a multi-part block.
func Summary(kind fmt.Stringer, multiPart bool, text string) string {
	var b strings.Builder
	b.WriteString(kind.String())
	if multiPart {
		b.WriteByte('*')
	}
	b.WriteByte('|')
	b.WriteString(text)
	return b.String()
}

// layoutKinds are the block kinds that carry no syntax.
var layoutKinds = map[string]bool{
	"Whitespace":  true,
	"Indentation": true,
	"Linebreak":   true,
	"EmptyLine":   true,
	"Comment":     true,
}

// WithoutLayout drops the summaries of layout blocks.
func WithoutLayout(summaries []string) []string {
	var out []string
	for _, s := range summaries {
		kind, _, _ := strings.Cut(s, "|")
		if !layoutKinds[strings.TrimSuffix(kind, "*")] {
			out = append(out, s)
		}
	}
	return out
}
