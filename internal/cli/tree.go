package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rejx-dev/rejx/internal/render"
)

func (a *app) treeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tree [path]",
		Short: "Show the .rej files under a path as a directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			files, err := a.findFiles(path)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintln(a.stdout, noFilesMessage)
				return nil
			}
			fmt.Fprintln(a.stdout, render.FileTree(files))
			return nil
		},
	}
}
