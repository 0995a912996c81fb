package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vhdlblocks/vhdlblocks"
)

func (c *cli) newPathsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Show the configuration file and design search paths",
		Long: `Show the configuration file in use and the design directories that
check uses without arguments: -p paths and configured paths, adjusted by
VHDLBLOCKS_PATH and filtered to existing directories.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if c.configFrom != "" {
				fmt.Fprintf(w, "config: %s\n", c.configFrom)
			} else {
				fmt.Fprintln(w, "config: none")
			}
			configured := append(append([]string(nil), c.config.Paths...), c.paths...)
			dirs := vhdlblocks.SearchPath(configured, c.logger())
			if len(dirs) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no search paths found")
				return nil
			}
			for _, d := range dirs {
				fmt.Fprintln(w, d)
			}
			return nil
		},
	}
}
