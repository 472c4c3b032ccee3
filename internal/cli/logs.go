package cli

import (
	"fmt"
	"time"

	"minddock/pkg/workspace"

	"github.com/spf13/cobra"
)

func logsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "logs",
		Aliases: []string{"log"},
		Short:   "Daily logs, one per day",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List daily logs, newest day first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logs, err := a.client.ListDailyLogs(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(logs) == 0 {
				faint.Fprintln(out, "no daily logs")
				return nil
			}
			tw := newTable(out)
			fmt.Fprintln(tw, "DATE\tWORKED ON\tTOMORROW")
			for _, l := range logs {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Date, firstLine(l.WorkedOn), firstLine(l.TomorrowFocus))
			}
			return tw.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show [YYYY-MM-DD]",
		Short: "Show the log of a day (today by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.dateArg(args)
			if err != nil {
				return err
			}
			log, err := a.client.GetDailyLog(cmd.Context(), date)
			if err != nil {
				return err
			}
			printDailyLog(cmd.OutOrStdout(), log)
			return nil
		},
	})

	var draft workspace.DailyLogDraft
	edit := &cobra.Command{
		Use:   "edit [YYYY-MM-DD]",
		Short: "Write the log of a day, creating it when missing",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := a.dateArg(args)
			if err != nil {
				return err
			}
			editor, err := workspace.OpenDailyLog(cmd.Context(), a.client, date)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("worked-on") {
				editor.Draft.WorkedOn = draft.WorkedOn
			}
			if flags.Changed("blockers") {
				editor.Draft.Blockers = draft.Blockers
			}
			if flags.Changed("learned") {
				editor.Draft.Learned = draft.Learned
			}
			if flags.Changed("tomorrow") {
				editor.Draft.TomorrowFocus = draft.TomorrowFocus
			}

			saved, err := editor.Save(cmd.Context())
			if err != nil {
				return err
			}
			ok.Fprintf(cmd.OutOrStdout(), "Saved daily log %s\n", saved.Date)
			return nil
		},
	}
	edit.Flags().StringVar(&draft.WorkedOn, "worked-on", "", "what you worked on")
	edit.Flags().StringVar(&draft.Blockers, "blockers", "", "what blocked you")
	edit.Flags().StringVar(&draft.Learned, "learned", "", "what you learned")
	edit.Flags().StringVar(&draft.TomorrowFocus, "tomorrow", "", "focus for tomorrow")
	cmd.AddCommand(edit)

	return cmd
}

func (a *app) dateArg(args []string) (string, error) {
	if len(args) == 0 {
		return a.today(), nil
	}
	if _, err := time.Parse("2006-01-02", args[0]); err != nil {
		return "", fmt.Errorf("date must be YYYY-MM-DD (got %q)", args[0])
	}
	return args[0], nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
