package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/rejx-dev/rejx/internal/render"
)

func (a *app) cleanCommand() *cobra.Command {
	var preview bool

	cmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "Delete the .rej files under a path",
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

			if preview {
				fmt.Fprintln(a.stdout, render.Warning.Render("these files will be deleted:"))
				for _, file := range files {
					fmt.Fprintf(a.stdout, " - %s\n", file)
				}
				confirmed, err := confirmDeletion(len(files))
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(a.stdout, "aborted, nothing deleted")
					return nil
				}
			}

			deleted := 0
			for _, file := range files {
				if err := os.Remove(file); err != nil {
					fmt.Fprintf(a.stdout, "%s %s: %v\n", render.Failure.Render("failed"), file, err)
					continue
				}
				a.log.Deleted(file)
				fmt.Fprintf(a.stdout, "%s %s\n", render.Success.Render("deleted"), file)
				deleted++
			}
			fmt.Fprintf(a.stdout, "%d of %d file(s) deleted\n", deleted, len(files))
			return nil
		},
	}

	cmd.Flags().BoolVar(&preview, "preview", false, "list the files and ask for confirmation before deleting")
	return cmd
}

// confirmDeletion asks the user to approve removing count files.
func confirmDeletion(count int) (bool, error) {
	confirmed := false
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Delete %d file(s)?", count)).
			Affirmative("Delete").
			Negative("Keep").
			Value(&confirmed),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}
