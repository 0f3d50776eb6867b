package dates

import (
	"errors"
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 14, 5, 9, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{"DD.MM.YYYY", "07.03.2025"},
		{"YYYY-MM-DD", "2025-03-07"},
		{"D/M/YY", "7/3/25"},
		{"MMMM D, YYYY", "March 7, 2025"},
		{"ddd, MMM DD", "Fri, Mar 07"},
		{"dddd", "Friday"},
		{"HH:mm:ss", "14:05:09"},
		{"h:mm A", "2:05 PM"},
		{"hh:mm a", "02:05 pm"},
		{"Do MMMM YYYY", "7th March 2025"},
		{"[Week of] YYYY", "Week of 2025"},
		{"YYYY[T]HH", "2025T14"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := Format(ts, tt.format); got != tt.want {
				t.Errorf("Format(%q): got %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		format  string
		want    string // time.DateTime layout
		wantErr bool
	}{
		{"default format", "01.01.2025", "DD.MM.YYYY", "2025-01-01 00:00:00", false},
		{"iso", "2024-02-29", "YYYY-MM-DD", "2024-02-29 00:00:00", false},
		{"short forms", "7/3/25", "D/M/YY", "2025-03-07 00:00:00", false},
		{"month name", "March 7, 2025", "MMMM D, YYYY", "2025-03-07 00:00:00", false},
		{"ordinal day", "7th March 2025", "Do MMMM YYYY", "2025-03-07 00:00:00", false},
		{"with time", "07.03.2025 2:05 PM", "DD.MM.YYYY h:mm A", "2025-03-07 14:05:00", false},
		{"wrong weekday", "Mon 07.03.2025", "ddd DD.MM.YYYY", "", true},
		{"not a leap year", "2025-02-29", "YYYY-MM-DD", "", true},
		{"month out of range", "01.13.2025", "DD.MM.YYYY", "", true},
		{"padding required", "1.1.2025", "DD.MM.YYYY", "", true},
		{"wrong separator", "01/01/2025", "DD.MM.YYYY", "", true},
		{"trailing text", "01.01.2025x", "DD.MM.YYYY", "", true},
		{"empty value", "", "DD.MM.YYYY", "", true},
		{"hour out of range", "25:00", "HH:mm", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.value, tt.format)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q, %q): expected error, got %v", tt.value, tt.format, got)
				}
				if !errors.Is(err, ErrInvalidDate) {
					t.Errorf("error should wrap ErrInvalidDate, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q, %q): unexpected error %v", tt.value, tt.format, err)
			}
			if s := got.Format(time.DateTime); s != tt.want {
				t.Errorf("Parse(%q, %q): got %s, want %s", tt.value, tt.format, s, tt.want)
			}
		})
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	formats := []string{"DD.MM.YYYY", "YYYY-MM-DD", "D MMMM YYYY", "Do MMMM YYYY", "MMM D YYYY", "DD.MM.YYYY HH:mm"}
	ts := time.Date(2026, time.October, 18, 9, 30, 0, 0, time.Local)

	for _, format := range formats {
		value := Format(ts, format)
		if !Valid(value, format) {
			t.Errorf("Format(%q) produced %q which does not parse back", format, value)
		}
	}
}

func TestClock(t *testing.T) {
	tests := []struct {
		value   string
		h, m    int
		wantErr bool
	}{
		{"09:30", 9, 30, false},
		{"9:30", 9, 30, false},
		{"23:59", 23, 59, false},
		{"00:00", 0, 0, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"1230", 0, 0, true},
		{"", 0, 0, true},
		{" 9:30", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			h, m, err := ParseClock(tt.value)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTime) {
					t.Errorf("ParseClock(%q): got err %v, want ErrInvalidTime", tt.value, err)
				}
				if ValidClock(tt.value) {
					t.Errorf("ValidClock(%q): got true", tt.value)
				}
				return
			}
			if err != nil || h != tt.h || m != tt.m {
				t.Errorf("ParseClock(%q): got %d, %d, %v", tt.value, h, m, err)
			}
		})
	}

	if got := FormatClock(7, 5); got != "07:05" {
		t.Errorf("FormatClock: got %q, want 07:05", got)
	}
}

func TestTodayAndNow(t *testing.T) {
	now := time.Date(2025, 1, 2, 8, 4, 0, 0, time.UTC)
	if got := Today(now, "DD.MM.YYYY"); got != "02.01.2025" {
		t.Errorf("Today: got %q", got)
	}
	if got := Now(now); got != "08:04" {
		t.Errorf("Now: got %q", got)
	}
}
