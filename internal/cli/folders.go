package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func foldersCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "folders",
		Aliases: []string{"folder"},
		Short:   "Whiteboard folders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List folders with their whiteboards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := a.client.ListFolders(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(folders) == 0 {
				faint.Fprintln(out, "no folders")
				return nil
			}
			for _, f := range folders {
				heading.Fprintf(out, "%s", f.Name)
				faint.Fprintf(out, "  %s\n", f.Id)
				if len(f.Documents) == 0 {
					faint.Fprintln(out, "  (empty)")
				}
				for _, d := range f.Documents {
					fmt.Fprintf(out, "  - %s  %s\n", d.Title, faint.Sprint(d.Id))
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Create a folder",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := a.client.CreateFolder(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			ok.Fprintf(cmd.OutOrStdout(), "Folder created: %s (%s)\n", folder.Name, folder.Id)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a folder",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			folder, err := a.client.RenameFolder(cmd.Context(), id, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			ok.Fprintf(cmd.OutOrStdout(), "Folder renamed to %s\n", folder.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a folder. Its whiteboards are kept outside any folder",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.DeleteFolder(cmd.Context(), id); err != nil {
				return err
			}
			ok.Fprintln(cmd.OutOrStdout(), "Folder deleted")
			return nil
		},
	})

	return cmd
}
