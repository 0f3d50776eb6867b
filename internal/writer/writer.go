// Package writer inserts task lines into board documents.
//
// All functions are pure: they take the current document text and return
// the new text. Committing the result is up to the caller, normally through
// vault.Store.Commit with the mutators returned by Insert and Replace.
package writer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nibzard/kantask/internal/board"
	"github.com/nibzard/kantask/internal/task"
	"github.com/nibzard/kantask/internal/vault"
)

var (
	// ErrLaneNotFound indicates the document has no heading for the task lane.
	ErrLaneNotFound = errors.New("lane not found")
	// ErrInvalidLineIndex indicates a line index outside the document.
	ErrInvalidLineIndex = errors.New("invalid line index")
)

// LaneNotFoundError names the lane that could not be found.
type LaneNotFoundError struct {
	Lane string
}

func (e *LaneNotFoundError) Error() string {
	return fmt.Sprintf("lane %q not found", e.Lane)
}

// Is makes errors.Is(err, ErrLaneNotFound) hold.
func (e *LaneNotFoundError) Is(target error) bool {
	return target == ErrLaneNotFound
}

// InvalidLineIndexError reports a line index outside [0, Count).
type InvalidLineIndexError struct {
	Index int
	Count int
}

func (e *InvalidLineIndexError) Error() string {
	return fmt.Sprintf("invalid line index %d, document has %d lines", e.Index, e.Count)
}

// Is makes errors.Is(err, ErrInvalidLineIndex) hold.
func (e *InvalidLineIndexError) Is(target error) bool {
	return target == ErrInvalidLineIndex
}

// splitLines splits text on LF. A CR before the LF stays on its line, so
// documents with mixed line endings keep every line addressable.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// lineEnding returns "\r" when line carries a CRLF ending.
func lineEnding(line string) string {
	if strings.HasSuffix(line, "\r") {
		return "\r"
	}
	return ""
}

// FindLane returns the index of the first heading line whose lane label is
// lane, using the same labelling as the board parser.
func FindLane(lines []string, lane string) (int, bool) {
	for i, line := range lines {
		if name, ok := board.LaneLabel(line); ok && name == lane {
			return i, true
		}
	}
	return -1, false
}

// insertionPoint returns the index of the first non-blank line after the
// heading at laneIndex, or len(lines) when only blank lines follow.
func insertionPoint(lines []string, laneIndex int) int {
	i := laneIndex + 1
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	return i
}

// InsertTask returns text with the task line added as the first entry of
// the task's lane. Blank lines right after the heading stay above the new
// line. When several headings name the lane, the first one is used. The new
// line takes the line ending of the lane heading.
func InsertTask(text string, t task.Task) (string, error) {
	lines := splitLines(text)

	laneIndex, ok := FindLane(lines, t.Lane)
	if !ok {
		return "", &LaneNotFoundError{Lane: t.Lane}
	}
	at := insertionPoint(lines, laneIndex)
	cr := lineEnding(lines[laneIndex])

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	if at == len(lines) {
		// Appended last: the previous line gains the terminator instead.
		out[at-1] += cr
		out = append(out, task.Format(t))
	} else {
		out = append(out, task.Format(t)+cr)
		out = append(out, lines[at:]...)
	}
	return strings.Join(out, "\n"), nil
}

// ReplaceTaskLine returns text with line lineIndex (0-based) replaced by the
// task line. No other line changes and the line keeps its ending.
func ReplaceTaskLine(text string, lineIndex int, t task.Task) (string, error) {
	lines := splitLines(text)

	if lineIndex < 0 || lineIndex >= len(lines) {
		return "", &InvalidLineIndexError{Index: lineIndex, Count: len(lines)}
	}

	out := make([]string, len(lines))
	copy(out, lines)
	out[lineIndex] = task.Format(t) + lineEnding(lines[lineIndex])
	return strings.Join(out, "\n"), nil
}

// Line returns line lineIndex (0-based) of text without its line ending.
func Line(text string, lineIndex int) (string, error) {
	lines := splitLines(text)
	if lineIndex < 0 || lineIndex >= len(lines) {
		return "", &InvalidLineIndexError{Index: lineIndex, Count: len(lines)}
	}
	return strings.TrimSuffix(lines[lineIndex], "\r"), nil
}

// LaneAt returns the lane that line lineIndex belongs to: the nearest lane
// heading at or above it.
func LaneAt(text string, lineIndex int) (string, bool) {
	lines := splitLines(text)
	if lineIndex >= len(lines) {
		lineIndex = len(lines) - 1
	}
	for i := lineIndex; i >= 0; i-- {
		if name, ok := board.LaneLabel(lines[i]); ok {
			return name, true
		}
	}
	return "", false
}

// Insert returns a mutator that applies InsertTask.
func Insert(t task.Task) vault.Mutator {
	return func(text string) (string, error) {
		return InsertTask(text, t)
	}
}

// Replace returns a mutator that applies ReplaceTaskLine.
func Replace(lineIndex int, t task.Task) vault.Mutator {
	return func(text string) (string, error) {
		return ReplaceTaskLine(text, lineIndex, t)
	}
}
