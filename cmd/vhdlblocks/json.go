package main

import (
	"github.com/vhdlblocks/vhdlblocks"
)

// TokenJSON holds the JSON form of a token.
type TokenJSON struct {
	Kind    string `json:"kind"`
	Keyword string `json:"keyword,omitempty"`
	Value   string `json:"value"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// BlockJSON holds the JSON form of a block.
type BlockJSON struct {
	Kind      string `json:"kind"`
	MultiPart bool   `json:"multiPart,omitempty"`
	Text      string `json:"text"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// FileJSON holds the result of checking one file.
type FileJSON struct {
	Path   string `json:"path"`
	Tokens int    `json:"tokens"`
	Blocks int    `json:"blocks"`
	Error  string `json:"error,omitempty"`
}

func tokenJSON(tok vhdlblocks.Token) TokenJSON {
	out := TokenJSON{
		Kind:  tok.Kind.String(),
		Value: tok.Value,
		Start: tok.Span.Start.String(),
		End:   tok.Span.End.String(),
	}
	if tok.Keyword != vhdlblocks.NoKeyword {
		out.Keyword = tok.Keyword.String()
	}
	return out
}

func blockJSON(chain *vhdlblocks.Chain, id vhdlblocks.BlockID) (BlockJSON, error) {
	b := chain.Get(id)
	text, err := chain.Text(id)
	if err != nil {
		return BlockJSON{}, err
	}
	tokens := chain.Stream()
	return BlockJSON{
		Kind:      b.Kind.String(),
		MultiPart: b.MultiPart,
		Text:      text,
		Start:     tokens.Get(b.Start).Span.Start.String(),
		End:       tokens.Get(b.End).Span.End.String(),
	}, nil
}

func fileJSON(r vhdlblocks.FileResult) FileJSON {
	out := FileJSON{Path: r.Path, Tokens: r.Tokens, Blocks: r.Blocks}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return out
}
