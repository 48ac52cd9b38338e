package nlp

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultTime is returned whenever a time expression cannot be parsed.
const DefaultTime = "09:00"

var timePattern = regexp.MustCompile(`(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// ParseDate resolves a relative date expression to a local YYYY-MM-DD date.
// "tomorrow" (case-insensitive, anywhere in the input) means today plus one
// day; everything else resolves to today. No other relative expressions are
// recognized.
func ParseDate(input string) string {
	d := time.Now()
	if strings.Contains(strings.ToLower(input), "tomorrow") {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format("2006-01-02")
}

// HasClockTime reports whether the input contains a clock expression
// ParseTime would actually parse, as opposed to falling back to the
// default.
func HasClockTime(input string) bool {
	return timePattern.MatchString(strings.ToLower(input))
}

// ParseTime normalizes expressions like "10", "10 am", "10:30", "10:30 pm"
// to 24-hour HH:MM. Minutes default to zero. Unparsable input yields
// DefaultTime.
func ParseTime(input string) string {
	m := timePattern.FindStringSubmatch(strings.ToLower(input))
	if m == nil {
		return DefaultTime
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil {
		return DefaultTime
	}

	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil {
			return DefaultTime
		}
	}

	switch m[3] {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	}

	return fmt.Sprintf("%02d:%02d", hour, minute)
}
