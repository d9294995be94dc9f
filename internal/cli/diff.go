package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rejx-dev/rejx/internal/render"
	"github.com/rejx-dev/rejx/pkg/rej"
)

func (a *app) diffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [path]",
		Short: "Preview the changes .rej files would make, without writing",
		Long: "Compute the merge result for each .rej file and show a unified " +
			"diff against the current original. Nothing is written to disk.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}

			var files []string
			if strings.HasSuffix(path, rej.Extension) {
				files = []string{path}
			} else {
				found, err := a.findFiles(path)
				if err != nil {
					return err
				}
				files = found
			}
			if len(files) == 0 {
				fmt.Fprintln(a.stdout, noFilesMessage)
				return nil
			}

			diffs, failures := a.newRunner().PreviewAll(cmd.Context(), files)
			for _, failure := range failures {
				fmt.Fprintf(a.stderr, "%s %s: %v\n", render.Failure.Render("failed"), failure.RejPath, failure.Err)
			}
			if len(diffs) == 0 {
				return nil
			}

			rendered := make([]render.Diff, 0, len(diffs))
			for _, diff := range diffs {
				rendered = append(rendered, render.Diff{Title: diff.RejPath, Text: diff.DiffText})
			}

			if render.Plain() {
				render.WriteDiffs(a.stdout, rendered)
				return nil
			}
			return render.PageDiffs("Diff Preview", rendered)
		},
	}
	return cmd
}
