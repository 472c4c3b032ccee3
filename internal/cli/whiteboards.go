package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"minddock/pkg/workspace"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func whiteboardsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "whiteboards",
		Aliases: []string{"whiteboard", "wb"},
		Short:   "Whiteboard documents",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List whiteboards, latest edit first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			boards, err := a.client.ListWhiteboards(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(boards) == 0 {
				faint.Fprintln(out, "no whiteboards")
				return nil
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "ID\tFOLDER\tUPDATED\tTITLE")
			for _, b := range boards {
				folder := "-"
				if b.FolderId != nil {
					folder = b.FolderId.String()
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.Id, folder, b.UpdatedAt.Local().Format("2006-01-02 15:04"), b.Title)
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print the canvas JSON of a whiteboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			board, err := a.client.GetWhiteboard(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), board.ExcalidrawJson)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a whiteboard",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if err := a.client.DeleteWhiteboard(cmd.Context(), id); err != nil {
				return err
			}
			ok.Fprintln(cmd.OutOrStdout(), "Whiteboard deleted")
			return nil
		},
	})

	cmd.AddCommand(watchCommand(a))
	return cmd
}

func watchCommand(a *app) *cobra.Command {
	var (
		boardID  string
		title    string
		folderID string
	)

	cmd := &cobra.Command{
		Use:   "watch <canvas.json>",
		Short: "Auto-save a local canvas file to a whiteboard while it is edited",
		Long: `Watches a canvas JSON file and saves it after a quiet period.
Without --id the first save creates a new whiteboard. Ctrl-C saves any
pending change before exiting.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			opts := []workspace.EditorOption{
				workspace.WithAutosaveDelay(a.autosaveDelay),
				workspace.WithStatus(func(state workspace.SaveState, err error) {
					reportSave(out, state, err)
				}),
			}

			var editor *workspace.WhiteboardEditor
			if boardID != "" {
				id, err := parseID(boardID)
				if err != nil {
					return err
				}
				if editor, err = workspace.OpenWhiteboard(ctx, a.client, id, opts...); err != nil {
					return err
				}
			} else {
				editor = workspace.NewWhiteboardEditor(a.client, opts...)
			}
			defer editor.Close()

			if title != "" {
				editor.Rename(title)
			}
			if folderID != "" {
				id, err := parseID(folderID)
				if err != nil {
					return err
				}
				editor.MoveTo(&id)
			}

			path := args[0]
			if err := loadCanvas(editor, path); err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			faint.Fprintf(out, "watching %s (autosave after %s)\n", path, a.autosaveDelay)
			watchErr := watchCanvas(ctx, editor, path, out)

			// leaving the workspace saves immediately
			flushCtx, cancel := context.WithTimeout(context.WithoutCancel(cmd.Context()), a.autosaveDelay)
			defer cancel()
			if err := editor.Blur(flushCtx); err != nil {
				return fmt.Errorf("final save failed, local file is unchanged: %w", err)
			}
			if id, persisted := editor.ID(); persisted {
				fmt.Fprintf(out, "whiteboard %s\n", id)
			}
			return watchErr
		},
	}
	cmd.Flags().StringVar(&boardID, "id", "", "existing whiteboard to update")
	cmd.Flags().StringVar(&title, "title", "", "whiteboard title")
	cmd.Flags().StringVar(&folderID, "folder", "", "folder to file the whiteboard in")
	return cmd
}

func loadCanvas(editor *workspace.WhiteboardEditor, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if string(raw) != editor.Canvas() {
		editor.Change(string(raw))
	}
	return nil
}

// watchCanvas watches the parent directory so editors that replace the
// file on save are still followed.
func watchCanvas(ctx context.Context, editor *workspace.WhiteboardEditor, path string, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, open := <-watcher.Events:
			if !open {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := loadCanvas(editor, abs); err != nil {
				warn.Fprintf(out, "could not read %s: %v\n", path, err)
			}
		case err, open := <-watcher.Errors:
			if !open {
				return nil
			}
			warn.Fprintf(out, "watch error: %v\n", err)
		}
	}
}

func reportSave(out io.Writer, state workspace.SaveState, err error) {
	switch state {
	case workspace.StateSaved:
		ok.Fprintln(out, "✓ saved")
	case workspace.StateFailed:
		fail.Fprintf(out, "save failed: %s (changes kept locally)\n", describeErr(err))
	case workspace.StateDirty:
		faint.Fprintln(out, "● unsaved changes")
	}
}
