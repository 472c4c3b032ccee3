package workspace

import (
	"context"
	"fmt"
	"sort"
	"time"

	"minddock/internal/dto"
	"minddock/pkg/client"
)

const (
	dayLayout        = "2006-01-02"
	taskStatusDoing  = "Doing"
	taskStatusDone   = "Done"
	summaryNoteCount = 3
	weekWindowDays   = 7
)

type QuickStats struct {
	TasksToday     int
	TasksDoing     int
	TasksCompleted int
	TotalNotes     int
	LogsThisWeek   int
}

// DayKey is the YYYY-MM-DD of t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayLayout)
}

func ComputeQuickStats(tasks []*dto.TaskResponse, notes []*dto.NoteResponse, logs []*dto.DailyLogResponse, now time.Time) QuickStats {
	today := DayKey(now, now.Location())
	weekAgo := DayKey(now.AddDate(0, 0, -weekWindowDays), now.Location())

	stats := QuickStats{TotalNotes: len(notes)}
	for _, t := range tasks {
		if DayKey(t.CreatedAt, now.Location()) == today {
			stats.TasksToday++
		}
		switch t.Status {
		case taskStatusDoing:
			stats.TasksDoing++
		case taskStatusDone:
			stats.TasksCompleted++
		}
	}
	for _, l := range logs {
		if l.Date >= weekAgo {
			stats.LogsThisWeek++
		}
	}
	return stats
}

// TodaysTasks lists open tasks that are in progress or due today.
func TodaysTasks(tasks []*dto.TaskResponse, now time.Time) []*dto.TaskResponse {
	today := DayKey(now, now.Location())
	out := make([]*dto.TaskResponse, 0)
	for _, t := range tasks {
		if t.Status == taskStatusDone {
			continue
		}
		dueToday := t.DueDate != nil && DayKey(*t.DueDate, now.Location()) == today
		if t.Status == taskStatusDoing || dueToday {
			out = append(out, t)
		}
	}
	return out
}

type DailySummary struct {
	Date  string
	Tasks []*dto.TaskResponse
	Log   *dto.DailyLogResponse
	Notes []*dto.NoteResponse
}

// BuildDailySummary collects the tasks created on day, open ones first.
func BuildDailySummary(day time.Time, tasks []*dto.TaskResponse, log *dto.DailyLogResponse, notes []*dto.NoteResponse) DailySummary {
	key := DayKey(day, day.Location())

	dayTasks := make([]*dto.TaskResponse, 0)
	for _, t := range tasks {
		if DayKey(t.CreatedAt, day.Location()) == key {
			dayTasks = append(dayTasks, t)
		}
	}
	sort.SliceStable(dayTasks, func(i, j int) bool {
		return dayTasks[i].Status != taskStatusDone && dayTasks[j].Status == taskStatusDone
	})

	if len(notes) > summaryNoteCount {
		notes = notes[:summaryNoteCount]
	}
	return DailySummary{Date: key, Tasks: dayTasks, Log: log, Notes: notes}
}

type DayState string

const (
	DayToday      DayState = "today"
	DayPastLogged DayState = "past-logged"
	DayPastMissed DayState = "past-missing"
	DayFuture     DayState = "future"
)

type CalendarDay struct {
	Date    string
	Day     int
	HasLog  bool
	HasTask bool
	State   DayState
}

// MonthCalendar marks each day of month with its log and task presence.
// Tasks count on the day they were created.
func MonthCalendar(year int, month time.Month, tasks []*dto.TaskResponse, logs []*dto.DailyLogResponse, now time.Time) []CalendarDay {
	loc := now.Location()
	today := DayKey(now, loc)

	logDates := make(map[string]bool, len(logs))
	for _, l := range logs {
		logDates[l.Date] = true
	}
	taskDates := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		taskDates[DayKey(t.CreatedAt, loc)] = true
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := make([]CalendarDay, 0, 31)
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		key := d.Format(dayLayout)
		cd := CalendarDay{
			Date:    key,
			Day:     d.Day(),
			HasLog:  logDates[key],
			HasTask: taskDates[key],
		}
		switch {
		case key == today:
			cd.State = DayToday
		case key > today:
			cd.State = DayFuture
		case cd.HasLog:
			cd.State = DayPastLogged
		default:
			cd.State = DayPastMissed
		}
		days = append(days, cd)
	}
	return days
}

// RecentWhiteboard is the most recently edited whiteboard, or nil.
func RecentWhiteboard(boards []*dto.WhiteboardResponse) *dto.WhiteboardResponse {
	var recent *dto.WhiteboardResponse
	for _, b := range boards {
		if recent == nil || b.UpdatedAt.After(recent.UpdatedAt) {
			recent = b
		}
	}
	return recent
}

type DashboardSource interface {
	ListTasks(ctx context.Context) ([]*dto.TaskResponse, error)
	ListNotes(ctx context.Context) ([]*dto.NoteResponse, error)
	ListDailyLogs(ctx context.Context) ([]*dto.DailyLogResponse, error)
	ListWhiteboards(ctx context.Context) ([]*dto.WhiteboardResponse, error)
	GetDailyLog(ctx context.Context, date string) (*dto.DailyLogResponse, error)
}

type Dashboard struct {
	Stats      QuickStats
	Today      []*dto.TaskResponse
	Summary    DailySummary
	Calendar   []CalendarDay
	Whiteboard *dto.WhiteboardResponse
}

// LoadDashboard fetches every list once and derives all panels from it.
func LoadDashboard(ctx context.Context, src DashboardSource, now time.Time) (*Dashboard, error) {
	tasks, err := src.ListTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	notes, err := src.ListNotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notes: %w", err)
	}
	logs, err := src.ListDailyLogs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load daily logs: %w", err)
	}
	boards, err := src.ListWhiteboards(ctx)
	if err != nil {
		return nil, fmt.Errorf("load whiteboards: %w", err)
	}

	todayLog, err := src.GetDailyLog(ctx, DayKey(now, now.Location()))
	if err != nil {
		if !client.IsNotFound(err) {
			return nil, fmt.Errorf("load today's log: %w", err)
		}
		todayLog = nil
	}

	return &Dashboard{
		Stats:      ComputeQuickStats(tasks, notes, logs, now),
		Today:      TodaysTasks(tasks, now),
		Summary:    BuildDailySummary(now, tasks, todayLog, notes),
		Calendar:   MonthCalendar(now.Year(), now.Month(), tasks, logs, now),
		Whiteboard: RecentWhiteboard(boards),
	}, nil
}
