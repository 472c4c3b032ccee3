package logger

import (
	"bufio"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLoggerWritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "activity.log")

	l := NewIsolatedLogger(path)
	l.Info("activity", "note.created", map[string]interface{}{"id": "abc"})
	l.Error("activity", "forward failed", map[string]interface{}{"error": errors.New("nats down")})
	l.Debug("activity", "below file level", nil)
	require.NoError(t, l.Sync())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.Len(t, lines, 2)

	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "note.created", lines[0]["message"])
	assert.Equal(t, "activity", lines[0]["module"])

	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "nats down", lines[1]["error"])
}

func TestNopLoggerAcceptsNilDetails(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Info("test", "hello", nil)
		l.Error("test", "boom", nil)
	})
}
