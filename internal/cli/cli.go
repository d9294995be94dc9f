// Package cli wires the rejx command surface: fix, diff, ls, tree and
// clean, sharing discovery flags and an explicitly constructed logger.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rejx-dev/rejx/internal/config"
	"github.com/rejx-dev/rejx/internal/discover"
	"github.com/rejx-dev/rejx/internal/logging"
	"github.com/rejx-dev/rejx/internal/runner"
	"github.com/rejx-dev/rejx/pkg/rej"
)

// flagError marks command-line usage mistakes so Run can map them to a
// distinct exit code.
type flagError struct {
	err error
}

func (e flagError) Error() string {
	return e.err.Error()
}

// Run executes the rejx CLI using the provided arguments and writers.
// It returns a POSIX-style exit code: 0 when the command carried out its
// intended action (individual file failures are reported, not fatal),
// 1 for setup or execution errors, 2 for usage errors.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine, but other errors should be surfaced to help with debugging.
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintf(stderr, "failed to load .env: %v\n", err)
			return 1
		}
	}

	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if a.log != nil {
		_ = a.log.Close()
	}
	if err != nil {
		var fe flagError
		if errors.As(err, &fe) {
			return 2
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// app carries the flag values and the shared collaborators commands use.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// flag storage
	configPath    string
	includeHidden bool
	ignore        []string
	logPath       string
	verbose       bool
	strict        bool

	// built in setup
	cfg *config.Config
	log *logging.Logger
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "rejx",
		Short:         "Merge rejected patch hunks (.rej files) back into their targets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultFileName+" if present)")
	flags.BoolVar(&a.includeHidden, "include-hidden", false, "also discover hidden .rej files")
	flags.StringArrayVar(&a.ignore, "ignore", nil, "regexp of paths to skip during discovery (repeatable)")
	flags.StringVar(&a.logPath, "log", "", "append JSON logs to this file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug output")
	flags.BoolVar(&a.strict, "strict", false, "fail on malformed hunk headers instead of tolerating them")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return flagError{err: err}
	})

	root.AddCommand(
		a.fixCommand(),
		a.diffCommand(),
		a.lsCommand(),
		a.treeCommand(),
		a.cleanCommand(),
	)
	return root
}

// setup loads the config file, layers changed flags on top and constructs
// the logger every command shares.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("include-hidden") {
		cfg.IncludeHidden = a.includeHidden
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbose = a.verbose
	}
	if flags.Changed("log") {
		cfg.Log.Path = a.logPath
	}
	cfg.Ignore = append(cfg.Ignore, a.ignore...)

	log, err := logging.New(logging.Options{
		Console:  a.stderr,
		FilePath: cfg.Log.Path,
		Verbose:  cfg.Log.Verbose,
	})
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	a.cfg = cfg
	a.log = log
	return nil
}

// newRunner builds the batch runner from the effective config.
func (a *app) newRunner() *runner.Runner {
	return runner.New(a.log, rej.Options{Strict: a.cfg.Strict})
}

// findFiles discovers .rej files under root using the effective config.
func (a *app) findFiles(root string) ([]string, error) {
	return discover.Find(root, discover.Options{
		IncludeHidden: a.cfg.IncludeHidden,
		Ignore:        a.cfg.Ignore,
	})
}

// noFilesMessage is shared by every command that discovers .rej files.
const noFilesMessage = "no .rej files found"
