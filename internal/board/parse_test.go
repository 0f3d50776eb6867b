package board

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParseLanes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"two lanes", "## To Do\n\n- [ ] a\n\n## Done\n", []string{"To Do", "Done"}},
		{"labels are trimmed", "##   Spaced   \n", []string{"Spaced"}},
		{"indented heading", "   ## Indented\n", []string{"Indented"}},
		{"crlf endings", "## One\r\n\r\n## Two\r\n", []string{"One", "Two"}},
		{"duplicates kept", "## A\n## B\n## A\n", []string{"A", "B", "A"}},
		{"level 1 and 3 ignored", "# Title\n### Sub\n## Lane\n", []string{"Lane"}},
		{"no space after markers", "##Lane\n", nil},
		{"empty label", "## \n##\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLanes(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseLanes: got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLanesCountsHeadingLines(t *testing.T) {
	text := "## A\nx\n## B\n  ## C  \n## A\n### D\n"
	headings := 0
	for _, line := range strings.Split(text, "\n") {
		if _, ok := LaneLabel(line); ok {
			headings++
		}
	}
	if got := len(ParseLanes(text)); got != headings {
		t.Errorf("ParseLanes count: got %d, want %d", got, headings)
	}
}

func TestParse(t *testing.T) {
	t.Run("board with settings", func(t *testing.T) {
		b, err := Parse("boards/home.md", settingsDoc(`{"date-format":"YYYY-MM-DD"}`))
		if err != nil {
			t.Fatalf("Parse: unexpected error %v", err)
		}
		if b.ID != "boards/home.md" {
			t.Errorf("ID: got %q", b.ID)
		}
		if !reflect.DeepEqual(b.Lanes, []string{"To Do", "Done"}) {
			t.Errorf("Lanes: got %q", b.Lanes)
		}
		if b.Settings.DateFormat != "YYYY-MM-DD" {
			t.Errorf("DateFormat: got %q", b.Settings.DateFormat)
		}
		if b.SettingsErr != nil {
			t.Errorf("SettingsErr: got %v, want nil", b.SettingsErr)
		}
		if !b.HasLane("Done") || b.HasLane("Archive") {
			t.Errorf("HasLane gave wrong answers for %q", b.Lanes)
		}
		if b.DefaultLane() != "To Do" {
			t.Errorf("DefaultLane: got %q", b.DefaultLane())
		}
	})

	t.Run("malformed settings still parse", func(t *testing.T) {
		b, err := Parse("b.md", settingsDoc(`[`))
		if err != nil {
			t.Fatalf("Parse: unexpected error %v", err)
		}
		if !errors.Is(b.SettingsErr, ErrMalformedSettings) {
			t.Errorf("SettingsErr: got %v, want ErrMalformedSettings", b.SettingsErr)
		}
		if !reflect.DeepEqual(b.Settings, DefaultSettings()) {
			t.Errorf("Settings: got %#v, want defaults", b.Settings)
		}
	})

	t.Run("no settings block", func(t *testing.T) {
		b, err := Parse("b.md", "## Only\n")
		if err != nil {
			t.Fatalf("Parse: unexpected error %v", err)
		}
		if !errors.Is(b.SettingsErr, ErrSettingsNotFound) {
			t.Errorf("SettingsErr: got %v, want ErrSettingsNotFound", b.SettingsErr)
		}
	})

	t.Run("no lanes", func(t *testing.T) {
		b, err := Parse("notes.md", "# Just a note\n\nSome text.\n")
		if !errors.Is(err, ErrNoLanesFound) {
			t.Fatalf("Parse error: got %v, want ErrNoLanesFound", err)
		}
		if b != nil {
			t.Errorf("Parse: got board %#v, want nil", b)
		}
		if !strings.Contains(err.Error(), "notes.md") {
			t.Errorf("error should name the document, got %q", err)
		}
	})
}
