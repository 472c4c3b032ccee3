package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"minddock/internal/dto"
	"minddock/pkg/client"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

var (
	ok      = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
	fail    = color.New(color.FgRed)
	heading = color.New(color.FgCyan, color.Bold)
	faint   = color.New(color.Faint)
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func statusColor(status string) *color.Color {
	switch status {
	case "Done":
		return ok
	case "Doing":
		return warn
	default:
		return color.New(color.Reset)
	}
}

// normalizeStatus accepts any casing of Todo, Doing or Done.
func normalizeStatus(raw string) (string, error) {
	for _, s := range []string{"Todo", "Doing", "Done"} {
		if strings.EqualFold(raw, s) {
			return s, nil
		}
	}
	return "", fmt.Errorf("status must be one of Todo, Doing, Done (got %q)", raw)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%q is not a valid id", raw)
	}
	return id, nil
}

func printTasks(w io.Writer, tasks []*dto.TaskResponse) {
	if len(tasks) == 0 {
		faint.Fprintln(w, "no tasks")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tSTATUS\tDUE\tTITLE")
	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Local().Format("2006-01-02")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Id, statusColor(t.Status).Sprint(t.Status), due, t.Title)
	}
	tw.Flush()
}

func printNotes(w io.Writer, notes []*dto.NoteResponse) {
	if len(notes) == 0 {
		faint.Fprintln(w, "no notes")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tUPDATED\tTITLE")
	for _, n := range notes {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", n.Id, n.UpdatedAt.Local().Format("2006-01-02 15:04"), n.Title)
	}
	tw.Flush()
}

func printDailyLog(w io.Writer, log *dto.DailyLogResponse) {
	heading.Fprintf(w, "Daily log %s\n", log.Date)
	section := func(label, value string) {
		fmt.Fprintf(w, "%s\n", color.New(color.Bold).Sprint(label))
		if strings.TrimSpace(value) == "" {
			faint.Fprintln(w, "  (empty)")
			return
		}
		for _, line := range strings.Split(value, "\n") {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	section("Worked on", log.WorkedOn)
	section("Blockers", log.Blockers)
	section("Learned", log.Learned)
	section("Tomorrow focus", log.TomorrowFocus)
}

// describeErr prefers the server's own message for API failures.
func describeErr(err error) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
