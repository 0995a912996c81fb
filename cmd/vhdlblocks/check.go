package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vhdlblocks/vhdlblocks"
	"github.com/vhdlblocks/vhdlblocks/cmd/internal/cliutil"
)

func (c *cli) newCheckCmd() *cobra.Command {
	var (
		format  cliutil.Format
		workers int
		quiet   bool
	)
	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Parse design files and verify their block chains",
		Long: `Parse every design file below the given files and directories
concurrently. Without arguments the directories from -p, the
configuration file and VHDLBLOCKS_PATH are checked.

The exit status is 1 when any file fails.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options()
			if workers > 0 {
				opts = append(opts, vhdlblocks.WithWorkers(workers))
			}
			src, err := c.checkSource(args, opts)
			if err != nil {
				return err
			}
			results, err := vhdlblocks.CheckFiles(cmd.Context(), src, opts...)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			failed := 0
			var list []FileJSON
			for _, r := range results {
				if r.Err != nil {
					failed++
				}
				switch {
				case format == cliutil.FormatJSON:
					list = append(list, fileJSON(r))
				case r.Err != nil:
					fmt.Fprintf(w, "FAIL %s: %v\n", r.Path, r.Err)
				case !quiet:
					fmt.Fprintf(w, "ok   %s (%d blocks)\n", r.Path, r.Blocks)
				}
			}
			if format == cliutil.FormatJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				if err := enc.Encode(list); err != nil {
					return err
				}
			} else if !quiet {
				fmt.Fprintf(w, "%d files, %d failed\n", len(results), failed)
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d files", errFailed, failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().VarP(&format, "format", "f", "output format (text or json)")
	cmd.Flags().IntVarP(&workers, "workers", "j", 0, "files parsed at once (default: number of CPUs)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only report failures")
	return cmd
}

// checkSource builds the source for check from the arguments, or from
// the search path when there are none.
func (c *cli) checkSource(args []string, opts []vhdlblocks.Option) (vhdlblocks.Source, error) {
	if len(args) == 0 {
		configured := append(append([]string(nil), c.config.Paths...), c.paths...)
		dirs := vhdlblocks.SearchPath(configured, c.logger())
		if len(dirs) == 0 {
			return nil, vhdlblocks.ErrNoSources
		}
		return vhdlblocks.SearchSources(dirs, opts...), nil
	}

	var sources []vhdlblocks.Source
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		src, err := vhdlblocks.DirTree(arg, opts...)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	if len(files) > 0 {
		sources = append(sources, vhdlblocks.Files(files...))
	}
	if len(sources) == 0 {
		return nil, errors.New("nothing to check")
	}
	return vhdlblocks.Multi(sources...), nil
}
