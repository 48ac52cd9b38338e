package nlp

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"10", "10:00"},
		{"10 am", "10:00"},
		{"10:30", "10:30"},
		{"10:30 pm", "22:30"},
		{"12 pm", "12:00"},
		{"12 am", "00:00"},
		{"7pm", "19:00"},
		{"tomorrow at 10 AM", "10:00"},
		{"xyz", "09:00"},
		{"", "09:00"},
	}

	for _, tc := range cases {
		if got := ParseTime(tc.input); got != tc.want {
			t.Errorf("ParseTime(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestHasClockTime(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"10 am", true},
		{"10:30", true},
		{"tomorrow", false},
		{"today", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := HasClockTime(tc.input); got != tc.want {
			t.Errorf("HasClockTime(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseDate(t *testing.T) {
	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	if got := ParseDate("today please"); got != today {
		t.Errorf("ParseDate(today) = %q, want %q", got, today)
	}
	if got := ParseDate("Tomorrow please"); got != tomorrow {
		t.Errorf("ParseDate(tomorrow) = %q, want %q", got, tomorrow)
	}
	if got := ParseDate("next friday"); got != today {
		t.Errorf("ParseDate(unrecognized) = %q, want today %q", got, today)
	}
}
