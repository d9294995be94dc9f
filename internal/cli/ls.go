package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) lsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [path]",
		Short: "List the .rej files under a path",
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
			for _, file := range files {
				fmt.Fprintln(a.stdout, file)
			}
			return nil
		},
	}
}
