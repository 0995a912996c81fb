package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vhdlblocks/vhdlblocks"
	"github.com/vhdlblocks/vhdlblocks/cmd/internal/cliutil"
)

func (c *cli) newTokensCmd() *cobra.Command {
	var (
		format cliutil.Format
		parsed bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the tokens of a VHDL file",
		Long: `Print the tokens of a VHDL file, or of stdin when no file is given.

By default the raw tokenizer output is shown. With --parsed the file is
parsed first and the tokens appear as reclassified by the parser:
keywords, identifiers, delimiters, operators and so on.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := cliutil.ReadInput(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			w, done, err := cliutil.GetOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer done()

			var (
				stream      *vhdlblocks.TokenStream
				first, last vhdlblocks.TokenID
			)
			if parsed {
				doc, perr := vhdlblocks.Parse(source, c.options()...)
				// Stop at the last released block: after an error the
				// pending token may not be linked forward yet.
				if n := doc.Len(); n > 0 {
					stream = doc.Chain().Stream()
					first = doc.Block(doc.Blocks()[0]).Start
					last = doc.Block(doc.Blocks()[n-1]).End
				}
				err = perr
			} else {
				stream, first, err = vhdlblocks.Tokenize(source, c.options()...)
				last = stream.Tail()
			}
			if stream != nil && first != vhdlblocks.NoToken {
				if werr := writeTokens(w, stream, first, last, format); werr != nil {
					return werr
				}
			}
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return nil
		},
	}
	cmd.Flags().VarP(&format, "format", "f", "output format (text or json)")
	cmd.Flags().BoolVar(&parsed, "parsed", false, "show tokens as reclassified by the parser")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func writeTokens(w io.Writer, stream *vhdlblocks.TokenStream, first, last vhdlblocks.TokenID, format cliutil.Format) error {
	var list []TokenJSON
	for id, err := range stream.Walk(first, last) {
		if err != nil {
			return err
		}
		tok := stream.Get(id)
		if format == cliutil.FormatJSON {
			list = append(list, tokenJSON(tok))
			continue
		}
		if _, err := fmt.Fprintf(w, "%-9s %-18s %s\n", tok.Span.Start, tok.Kind, strconv.Quote(tok.Value)); err != nil {
			return err
		}
	}
	if format == cliutil.FormatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}
	return nil
}
