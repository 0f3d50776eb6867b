package task

import (
	"errors"
	"reflect"
	"testing"

	"github.com/nibzard/kantask/internal/board"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{
			name: "title only",
			task: Task{Title: "Buy milk"},
			want: "- [ ] Buy milk",
		},
		{
			name: "tags date and time",
			task: Task{Title: "Buy milk", Tags: []string{"#home", "#errand"}, Date: "01.01.2025", Time: "09:30"},
			want: "- [ ] Buy milk #home #errand @{01.01.2025} @{09:30}",
		},
		{
			name: "date only",
			task: Task{Title: "Pay rent", Date: "01.02.2025"},
			want: "- [ ] Pay rent @{01.02.2025}",
		},
		{
			name: "time only",
			task: Task{Title: "Call", Time: "18:00"},
			want: "- [ ] Call @{18:00}",
		},
		{
			name: "tags are not transformed",
			task: Task{Title: "x", Tags: []string{"home", "#Work"}},
			want: "- [ ] x home #Work",
		},
		{
			name: "lane does not appear",
			task: Task{Title: "x", Lane: "To Do"},
			want: "- [ ] x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.task)
			if got != tt.want {
				t.Errorf("Format: got %q, want %q", got, tt.want)
			}
			if again := Format(tt.task); again != got {
				t.Errorf("Format is not stable: %q then %q", got, again)
			}
		})
	}
}

func TestNew(t *testing.T) {
	got := New("  Buy milk \n", "To Do", " 01.01.2025 ", "", []string{"#home", "  ", ""})
	want := Task{Title: "Buy milk", Lane: "To Do", Date: "01.01.2025", Tags: []string{"#home"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("New: got %#v, want %#v", got, want)
	}
}

func TestParseLineRoundTrip(t *testing.T) {
	tasks := []Task{
		{Title: "Buy milk"},
		{Title: "Buy milk", Tags: []string{"#home"}, Date: "01.01.2025"},
		{Title: "Two  spaces inside", Tags: []string{"#a", "#b"}, Date: "2025-01-01", Time: "9:05"},
		{Title: "Only time", Time: "23:59"},
		{Title: "Only date", Date: "March 7"},
		{Title: "Email: re budget", Tags: []string{"#work"}},
	}

	for _, want := range tasks {
		t.Run(want.Title, func(t *testing.T) {
			got, err := ParseLine(Format(want))
			if err != nil {
				t.Fatalf("ParseLine: unexpected error %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("round trip:\n got %#v\nwant %#v", got, want)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	t.Run("done task", func(t *testing.T) {
		got, err := ParseLine("  - [x] Shipped #release @{01.01.2025}")
		if err != nil {
			t.Fatalf("ParseLine: %v", err)
		}
		if got.Title != "Shipped" || got.Date != "01.01.2025" || !reflect.DeepEqual(got.Tags, []string{"#release"}) {
			t.Errorf("ParseLine: got %#v", got)
		}
	})

	t.Run("crlf", func(t *testing.T) {
		got, err := ParseLine("- [ ] Buy milk\r")
		if err != nil || got.Title != "Buy milk" {
			t.Errorf("ParseLine: got %#v, %v", got, err)
		}
	})

	for _, line := range []string{"", "## To Do", "- item", "- [ ] ", "- [ ]   "} {
		t.Run("rejects "+line, func(t *testing.T) {
			if _, err := ParseLine(line); !errors.Is(err, ErrNotTaskLine) {
				t.Errorf("ParseLine(%q): got %v, want ErrNotTaskLine", line, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	b := &board.Board{
		ID:       "board.md",
		Lanes:    []string{"To Do", "Done"},
		Settings: board.DefaultSettings(),
	}

	tests := []struct {
		name      string
		task      Task
		wantField string
	}{
		{"valid", Task{Title: "x", Lane: "To Do", Date: "01.01.2025", Time: "9:30", Tags: []string{"#a"}}, ""},
		{"missing lane", Task{Title: "x"}, "lane"},
		{"unknown lane", Task{Title: "x", Lane: "Archive"}, "lane"},
		{"blank title", Task{Title: "   ", Lane: "Done"}, "title"},
		{"multi line title", Task{Title: "a\nb", Lane: "Done"}, "title"},
		{"date in wrong format", Task{Title: "x", Lane: "Done", Date: "2025-01-01"}, "date"},
		{"impossible date", Task{Title: "x", Lane: "Done", Date: "31.02.2025"}, "date"},
		{"bad time", Task{Title: "x", Lane: "Done", Time: "25:00"}, "time"},
		{"tag with space", Task{Title: "x", Lane: "Done", Tags: []string{"#a b"}}, "tags"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.task, b)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("Validate: unexpected error %v", err)
				}
				return
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate: got %v, want *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field: got %q, want %q", ve.Field, tt.wantField)
			}
		})
	}
}

func TestValidateUsesBoardDateFormat(t *testing.T) {
	b := &board.Board{
		Lanes:    []string{"A"},
		Settings: board.Settings{DateFormat: "YYYY-MM-DD", DateDisplayFormat: "YYYY-MM-DD"},
	}
	if err := Validate(Task{Title: "x", Lane: "A", Date: "2025-01-31"}, b); err != nil {
		t.Errorf("Validate: unexpected error %v", err)
	}
	if err := Validate(Task{Title: "x", Lane: "A", Date: "31.01.2025"}, b); err == nil {
		t.Error("Validate: expected date error")
	}
}
