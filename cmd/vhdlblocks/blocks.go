package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vhdlblocks/vhdlblocks"
	"github.com/vhdlblocks/vhdlblocks/cmd/internal/cliutil"
)

func (c *cli) newBlocksCmd() *cobra.Command {
	var (
		format cliutil.Format
		syntax bool
		output string
	)
	cmd := &cobra.Command{
		Use:   "blocks [file]",
		Short: "Print the blocks of a VHDL file",
		Long: `Parse a VHDL file, or stdin when no file is given, and print its
blocks in source order. Text output is printed as blocks are produced,
so the blocks before a parse error are still shown.

A star after the kind marks a block that continues in a later part.`,
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

			p := vhdlblocks.NewParser(source, c.options()...)
			chain := p.Chain()
			var list []BlockJSON
			var perr error
			for id, err := range p.All() {
				if err != nil {
					perr = err
					break
				}
				if syntax && chain.Get(id).Kind.IsLayout() {
					continue
				}
				if format == cliutil.FormatJSON {
					b, err := blockJSON(chain, id)
					if err != nil {
						return err
					}
					list = append(list, b)
					continue
				}
				if _, err := fmt.Fprintln(w, chain.String(id)); err != nil {
					return err
				}
			}
			if format == cliutil.FormatJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(list); err != nil {
					return err
				}
			}
			if perr != nil {
				return fmt.Errorf("%s: %w", name, perr)
			}
			return nil
		},
	}
	cmd.Flags().VarP(&format, "format", "f", "output format (text or json)")
	cmd.Flags().BoolVarP(&syntax, "syntax", "s", false, "omit whitespace, line break and comment blocks")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
