// Command vhdlblocks splits VHDL files into blocks and checks design trees.
package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vhdlblocks/vhdlblocks"
	"github.com/vhdlblocks/vhdlblocks/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK    = 0 // success
	exitError = 1 // user error or parse failure
)

type cli struct {
	verbose    int
	configPath string
	paths      []string

	config     *vhdlblocks.FileConfig
	configFrom string
	stderr     io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	c := &cli{stderr: stderr}
	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		cliutil.PrintError(stderr, "%v", err)
		return exitError
	}
	return exitOK
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "vhdlblocks",
		Short: "Split VHDL source into blocks",
		Long: `vhdlblocks tokenizes VHDL source and groups the tokens into blocks:
clauses, interface elements, declarations, statements, comments and
line breaks. Every character of the input belongs to exactly one block.

Settings are read from --config, or from the first of .vhdlblocks.yaml,
the user configuration directory and the home directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.CountVarP(&c.verbose, "verbose", "v", "enable debug logging (-vv for trace)")
	flags.StringVar(&c.configPath, "config", "", "configuration file")
	flags.StringSliceVarP(&c.paths, "path", "p", nil, "design directory to check (repeatable)")

	root.AddCommand(c.newTokensCmd())
	root.AddCommand(c.newBlocksCmd())
	root.AddCommand(c.newCheckCmd())
	root.AddCommand(c.newPathsCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func (c *cli) loadConfig() error {
	path := c.configPath
	if path == "" {
		found, ok := vhdlblocks.FindConfig()
		if !ok {
			c.config = &vhdlblocks.FileConfig{}
			return nil
		}
		path = found
	}
	cfg, err := vhdlblocks.LoadConfig(path)
	if err != nil {
		return err
	}
	c.config, c.configFrom = cfg, path
	return nil
}

// logger returns nil unless -v was given or the configuration sets a
// log level.
func (c *cli) logger() *slog.Logger {
	if c.verbose == 0 && c.config.LogLevel == "" {
		return nil
	}
	configured, err := c.config.Level()
	if err != nil {
		configured = slog.LevelWarn
	}
	level := cliutil.LogLevel(c.verbose, configured, vhdlblocks.LevelTrace)
	return slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))
}

func (c *cli) options() []vhdlblocks.Option {
	opts := c.config.Options()
	if logger := c.logger(); logger != nil {
		opts = append(opts, vhdlblocks.WithLogger(logger))
	}
	return opts
}

var errFailed = errors.New("check failed")
