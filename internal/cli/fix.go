package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rejx-dev/rejx/internal/render"
	"github.com/rejx-dev/rejx/internal/runner"
	"github.com/rejx-dev/rejx/pkg/rej"
)

func (a *app) fixCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "fix [path]",
		Short: "Apply the changes from .rej files to their original files",
		Long: "Apply the changes recorded in a .rej file to its corresponding " +
			"original file, or, with --all, every .rej file found under the path.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			r := a.newRunner()

			if !all {
				if !strings.HasSuffix(path, rej.Extension) {
					return flagError{err: fmt.Errorf("%q is not a %s file; use --all to fix a directory", path, rej.Extension)}
				}
				result := r.Apply(cmd.Context(), path)
				if !result.OK() {
					return result.Err
				}
				a.printResult(result)
				return nil
			}

			files, err := a.findFiles(path)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(a.stdout, noFilesMessage)
				return nil
			}

			results := r.ApplyAll(cmd.Context(), files)
			for _, result := range results {
				a.printResult(result)
			}
			summary := runner.Summarize(results)
			fmt.Fprintf(a.stdout, "%d applied, %d failed\n", summary.Succeeded, summary.Failed)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "fix every .rej file under the path")
	return cmd
}

// printResult writes one per-file outcome line.
func (a *app) printResult(result runner.FileResult) {
	if result.OK() {
		fmt.Fprintf(a.stdout, "%s %s -> %s\n", render.Success.Render("applied"), result.RejPath, result.TargetPath)
		return
	}
	fmt.Fprintf(a.stdout, "%s %s: %v\n", render.Failure.Render("failed"), result.RejPath, result.Err)
}
