// Package task renders kanban task lines and validates task input.
//
// A task line has a fixed shape:
//
//	- [ ] <title> <tag1> <tag2> ... @{<date>} @{<time>}
//
// Tags, date and time are optional; absent parts add no token and no
// whitespace.
package task

import (
	"errors"
	"strings"
)

// Task is one task to be written to a board lane.
// Empty Date and Time mean the task has none.
type Task struct {
	Title string
	Lane  string
	Date  string
	Time  string
	Tags  []string
}

// New builds a Task from raw input: the title is trimmed and blank tags are
// dropped.
func New(title, lane, date, clock string, tags []string) Task {
	t := Task{
		Title: strings.TrimSpace(title),
		Lane:  lane,
		Date:  strings.TrimSpace(date),
		Time:  strings.TrimSpace(clock),
	}
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			t.Tags = append(t.Tags, tag)
		}
	}
	return t
}

// ErrNotTaskLine indicates a line is not a task line.
var ErrNotTaskLine = errors.New("not a task line")

const (
	openPrefix = "- [ ] "
	donePrefix = "- [x] "
)

// Format renders t as a task line.
func Format(t Task) string {
	parts := make([]string, 0, len(t.Tags)+4)
	parts = append(parts, "- [ ]", t.Title)
	parts = append(parts, t.Tags...)
	if t.Date != "" {
		parts = append(parts, "@{"+t.Date+"}")
	}
	if t.Time != "" {
		parts = append(parts, "@{"+t.Time+"}")
	}
	return strings.Join(parts, " ")
}

// ParseLine reads a task line back into a Task. Lane is left empty.
//
// Up to two trailing @{...} tokens are taken as date and time; a single one
// is a time when it looks like H:MM or HH:MM, otherwise a date. Trailing
// words starting with '#' are tags. Titles ending in a '#' word are
// therefore read back as tags.
func ParseLine(line string) (Task, error) {
	rest := strings.TrimLeft(line, " \t")
	rest = strings.TrimRight(rest, " \t\r")
	switch {
	case strings.HasPrefix(rest, openPrefix):
		rest = rest[len(openPrefix):]
	case strings.HasPrefix(rest, donePrefix):
		rest = rest[len(donePrefix):]
	default:
		return Task{}, ErrNotTaskLine
	}

	var stamps []string
	for len(stamps) < 2 && strings.HasSuffix(rest, "}") {
		i := strings.LastIndex(rest, " @{")
		if i < 0 {
			break
		}
		value := rest[i+len(" @{") : len(rest)-1]
		if strings.Contains(value, "}") {
			break
		}
		stamps = append([]string{value}, stamps...)
		rest = rest[:i]
	}

	var t Task
	switch len(stamps) {
	case 2:
		t.Date, t.Time = stamps[0], stamps[1]
	case 1:
		if clockLike(stamps[0]) {
			t.Time = stamps[0]
		} else {
			t.Date = stamps[0]
		}
	}

	for {
		head, last := lastWord(rest)
		if head == "" || !strings.HasPrefix(last, "#") {
			break
		}
		t.Tags = append([]string{last}, t.Tags...)
		rest = head
	}

	t.Title = rest
	if strings.TrimSpace(t.Title) == "" {
		return Task{}, ErrNotTaskLine
	}
	return t, nil
}

// lastWord splits s at its last space. head is empty when s has no space.
func lastWord(s string) (head, last string) {
	i := strings.LastIndexByte(s, ' ')
	if i < 0 {
		return "", s
	}
	return s[:i], s[i+1:]
}

// clockLike reports whether s has the H:MM or HH:MM shape.
func clockLike(s string) bool {
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(h) < 1 || len(h) > 2 || len(m) != 2 {
		return false
	}
	for _, c := range h + m {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
