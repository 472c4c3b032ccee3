// Package capture classifies a single line of quick-capture text into a task
// or a note.
package capture

import (
	"errors"
	"strings"
)

type Kind string

const (
	KindTask Kind = "task"
	KindNote Kind = "note"
)

const (
	todoPrefix = "todo "
	notePrefix = "note "
)

// ErrEmptyText is returned for blank input. A prefix followed only by
// whitespace trims down to the bare keyword, so it never reaches a branch
// with an empty remainder.
var ErrEmptyText = errors.New("capture text is required")

// Result is what a line of text should become. Body is the task title for
// KindTask and the note content for KindNote.
type Result struct {
	Kind     Kind
	Body     string
	Prefixed bool
}

// Classify matches the todo and note prefixes case-insensitively, in that
// order. The prefix includes its trailing space, so a bare "todo" is a note.
func Classify(text string) (Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Result{}, ErrEmptyText
	}

	if rest, ok := cutPrefixFold(trimmed, todoPrefix); ok {
		return Result{Kind: KindTask, Body: rest, Prefixed: true}, nil
	}

	if rest, ok := cutPrefixFold(trimmed, notePrefix); ok {
		return Result{Kind: KindNote, Body: rest, Prefixed: true}, nil
	}

	return Result{Kind: KindNote, Body: trimmed}, nil
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(s[len(prefix):]), true
}
