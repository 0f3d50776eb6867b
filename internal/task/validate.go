package task

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nibzard/kantask/internal/board"
	"github.com/nibzard/kantask/internal/dates"
)

// ValidationError reports an invalid task field.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks t against the board it will be written to.
func Validate(t Task, b *board.Board) error {
	if t.Lane == "" {
		return &ValidationError{Field: "lane", Err: errors.New("please select a lane")}
	}
	if !b.HasLane(t.Lane) {
		return &ValidationError{
			Field: "lane",
			Err:   fmt.Errorf("unknown lane %q, must be one of: %s", t.Lane, strings.Join(b.Lanes, ", ")),
		}
	}

	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Field: "title", Err: errors.New("please enter a task title")}
	}
	if strings.ContainsAny(t.Title, "\r\n") {
		return &ValidationError{Field: "title", Err: errors.New("title must be a single line")}
	}

	if t.Date != "" && !dates.Valid(t.Date, b.Settings.DateFormat) {
		return &ValidationError{
			Field: "date",
			Err:   fmt.Errorf("invalid date format %q, expected: %s", t.Date, b.Settings.DateFormat),
		}
	}
	if t.Time != "" && !dates.ValidClock(t.Time) {
		return &ValidationError{Field: "time", Err: dates.ErrInvalidTime}
	}

	for _, tag := range t.Tags {
		if strings.ContainsAny(tag, " \t\r\n") {
			return &ValidationError{Field: "tags", Err: fmt.Errorf("tag %q contains whitespace", tag)}
		}
	}
	return nil
}
