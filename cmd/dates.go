package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rnwolfe/studycal/internal/calendar"
)

// parseDay resolves a day argument relative to now in cal.
// Supports: "today", "yesterday", weekday names (the most recent such day,
// today included), "-N" (N days ago), "2006-01-02", "Jan 2" and "January 2"
// (current year).
func parseDay(s string, cal calendar.Calendar, now time.Time) (time.Time, error) {
	today := cal.StartOfDay(now)
	s = strings.TrimSpace(strings.ToLower(s))

	switch s {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if wd, ok := parseWeekday(s); ok {
		back := (int(today.Weekday()) - int(wd) + 7) % 7
		return today.AddDate(0, 0, -back), nil
	}

	if rest, ok := strings.CutPrefix(s, "-"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 0 {
			return today.AddDate(0, 0, -n), nil
		}
	}

	if t, err := time.Parse(calendar.DateLayout, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, today.Location()), nil
	}
	// Month names match case-insensitively.
	for _, layout := range []string{"Jan 2", "January 2"} {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(today.Year(), t.Month(), t.Day(), 0, 0, 0, 0, today.Location()), nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q (try today, yesterday, monday, -2, 2006-01-02 or Jan 2)", s)
}

func parseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, true
		}
	}
	return 0, false
}
