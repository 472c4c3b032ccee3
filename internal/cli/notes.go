package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func notesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"note"},
		Short:   "Manage notes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List notes, latest edit first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes, err := a.client.ListNotes(cmd.Context())
			if err != nil {
				return err
			}
			printNotes(cmd.OutOrStdout(), notes)
			return nil
		},
	})

	var addTitle string
	add := &cobra.Command{
		Use:   "add <content>",
		Short: "Create a note. Without --title the first line becomes the title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			note, err := a.client.CreateNote(cmd.Context(), addTitle, strings.Join(args, " "))
			if err != nil {
				return err
			}
			ok.Fprintf(cmd.OutOrStdout(), "Note created: %s (%s)\n", note.Title, note.Id)
			return nil
		},
	}
	add.Flags().StringVar(&addTitle, "title", "", "note title")
	cmd.AddCommand(add)

	var editTitle, editContent string
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace the title and/or content of a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") {
				return fmt.Errorf("nothing to change: pass --title and/or --content")
			}
			current, err := a.client.GetNote(cmd.Context(), id)
			if err != nil {
				return err
			}
			title, content := current.Title, current.Content
			if cmd.Flags().Changed("title") {
				title = editTitle
			}
			if cmd.Flags().Changed("content") {
				content = editContent
			}
			note, err := a.client.UpdateNote(cmd.Context(), id, title, content)
			if err != nil {
				return err
			}
			ok.Fprintf(cmd.OutOrStdout(), "Note updated: %s\n", note.Title)
			return nil
		},
	}
	edit.Flags().StringVar(&editTitle, "title", "", "new title")
	edit.Flags().StringVar(&editContent, "content", "", "new content")
	cmd.AddCommand(edit)

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a note",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.DeleteNote(cmd.Context(), id); err != nil {
				return err
			}
			ok.Fprintln(cmd.OutOrStdout(), "Note deleted")
			return nil
		},
	})

	return cmd
}
