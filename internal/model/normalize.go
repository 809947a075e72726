package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var canonicalDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// dateLayouts are the accepted free-form date shapes, tried in order.
// Day-first forms are deliberately absent: "03-04-2025" is ambiguous
// and gets rejected rather than guessed.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// NormalizeDate parses a date-like string into canonical YYYY-MM-DD.
// Already-canonical input passes through unchanged. Returns false when
// the input cannot be parsed unambiguously.
func NormalizeDate(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", false
	}

	// RFC3339 timestamps keep only their date part.
	if i := strings.IndexByte(s, 'T'); i > 0 {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.Format("2006-01-02"), true
		}
		s = s[:i]
	}

	if canonicalDateRe.MatchString(s) {
		// Still validate: "2024-13-40" matches the shape but is no date.
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return "", false
		}
		return s, true
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}

	return "", false
}

var (
	clockRe   = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::\d{2})?$`)
	twelveHRe = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*(am|pm)$`)
)

// NormalizeTime parses a time-of-day string into canonical 24-hour
// HH:MM. Accepts HH:MM, HH:MM:SS, H:MM and 12-hour forms with am/pm.
// Already-canonical input passes through unchanged.
func NormalizeTime(input string) (string, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", false
	}

	if m := twelveHRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return "", false
		}
		if strings.EqualFold(m[3], "pm") && hour != 12 {
			hour += 12
		}
		if strings.EqualFold(m[3], "am") && hour == 12 {
			hour = 0
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), true
	}

	if m := clockRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return "", false
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), true
	}

	return "", false
}
