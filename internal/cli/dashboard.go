package cli

import (
	"fmt"
	"io"
	"strings"

	"minddock/pkg/workspace"

	"github.com/spf13/cobra"
)

func dashboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Today at a glance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dash, err := workspace.LoadDashboard(cmd.Context(), a.client, a.now())
			if err != nil {
				return err
			}
			printDashboard(cmd.OutOrStdout(), dash)
			return nil
		},
	}
}

func printDashboard(out io.Writer, dash *workspace.Dashboard) {
	s := dash.Stats
	heading.Fprintln(out, "Quick stats")
	fmt.Fprintf(out, "  tasks today %d   doing %d   done %d   notes %d   logs this week %d\n\n",
		s.TasksToday, s.TasksDoing, s.TasksCompleted, s.TotalNotes, s.LogsThisWeek)

	heading.Fprintln(out, "Today's tasks")
	if len(dash.Today) == 0 {
		faint.Fprintln(out, "  nothing in progress or due today")
	}
	for _, t := range dash.Today {
		fmt.Fprintf(out, "  [%s] %s\n", statusColor(t.Status).Sprint(t.Status), t.Title)
	}
	fmt.Fprintln(out)

	heading.Fprintf(out, "Summary %s\n", dash.Summary.Date)
	for _, t := range dash.Summary.Tasks {
		fmt.Fprintf(out, "  [%s] %s\n", statusColor(t.Status).Sprint(t.Status), t.Title)
	}
	if dash.Summary.Log == nil {
		warn.Fprintln(out, "  no daily log yet")
	} else if dash.Summary.Log.WorkedOn != "" {
		fmt.Fprintf(out, "  worked on: %s\n", firstLine(dash.Summary.Log.WorkedOn))
	}
	for _, n := range dash.Summary.Notes {
		fmt.Fprintf(out, "  note: %s\n", n.Title)
	}
	fmt.Fprintln(out)

	heading.Fprintln(out, "Calendar")
	printCalendar(out, dash.Calendar)
	fmt.Fprintln(out)

	heading.Fprintln(out, "Recent whiteboard")
	if dash.Whiteboard == nil {
		faint.Fprintln(out, "  none yet")
	} else {
		fmt.Fprintf(out, "  %s  %s\n", dash.Whiteboard.Title, faint.Sprint(dash.Whiteboard.Id))
	}
}

// printCalendar lays the month out in rows of seven starting on the first.
func printCalendar(out io.Writer, days []workspace.CalendarDay) {
	var row strings.Builder
	for i, d := range days {
		cell := fmt.Sprintf("%2d", d.Day)
		if d.HasTask {
			cell += "*"
		} else {
			cell += " "
		}
		switch d.State {
		case workspace.DayToday:
			cell = heading.Sprint(cell)
		case workspace.DayPastLogged:
			cell = ok.Sprint(cell)
		case workspace.DayPastMissed:
			cell = fail.Sprint(cell)
		}
		row.WriteString("  " + cell)
		if (i+1)%7 == 0 || i == len(days)-1 {
			fmt.Fprintln(out, row.String())
			row.Reset()
		}
	}
	faint.Fprintln(out, "  green logged, red missed, * task created")
}
