package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveNoteTitle(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "short", content: "buy milk", want: "buy milk"},
		{name: "exactly forty", content: strings.Repeat("a", 40), want: strings.Repeat("a", 40)},
		{name: "hard cut mid word", content: "Meeting notes about the quarterly roadmap review", want: "Meeting notes about the quarterly roadma"},
		{name: "multibyte", content: strings.Repeat("é", 45), want: strings.Repeat("é", 40)},
		{name: "empty", content: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveNoteTitle(tt.content))
		})
	}
}

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2026-02-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), day)

	for _, bad := range []string{"", "2026-2-1", "01/02/2026", "2026-02-30", "tomorrow"} {
		_, err := ParseDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestTaskStatusValid(t *testing.T) {
	assert.True(t, TaskStatusTodo.Valid())
	assert.True(t, TaskStatusDoing.Valid())
	assert.True(t, TaskStatusDone.Valid())
	assert.False(t, TaskStatus("done").Valid())
	assert.False(t, TaskStatus("").Valid())
}
