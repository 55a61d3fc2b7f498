package calendar

import (
	"fmt"
	"strings"
	"time"
)

// Calendar fixes the time zone and first day of the week used to lay out
// months. The zero value is the local calendar with weeks starting on Sunday.
type Calendar struct {
	Location     *time.Location
	FirstWeekday time.Weekday
}

// Local returns the local calendar with Sunday as the first day of the week.
func Local() Calendar {
	return Calendar{Location: time.Local, FirstWeekday: time.Sunday}
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// StartOfDay returns midnight of the day containing t.
func (c Calendar) StartOfDay(t time.Time) time.Time {
	y, m, d := t.In(c.loc()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, c.loc())
}

// StartOfMonth returns the first date of the month containing t.
func (c Calendar) StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.In(c.loc()).Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, c.loc())
}

// EndOfMonth returns the last date of the month containing t.
func (c Calendar) EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.In(c.loc()).Date()
	return time.Date(y, m+1, 0, 0, 0, 0, 0, c.loc())
}

// WeekdayIndex returns t's column in a week row, 0 being FirstWeekday.
func (c Calendar) WeekdayIndex(t time.Time) int {
	return (int(t.In(c.loc()).Weekday()) - int(c.FirstWeekday) + 7) % 7
}

// StartOfCalendarGrid returns the date of the first cell in the month grid
// for t's month: the 1st, moved back to the start of its week.
func (c Calendar) StartOfCalendarGrid(t time.Time) time.Time {
	first := c.StartOfMonth(t)
	return first.AddDate(0, 0, -c.WeekdayIndex(first))
}

// WeekdayInitials returns single-letter weekday headers in column order.
func (c Calendar) WeekdayInitials() []string {
	out := make([]string, 7)
	for i := range out {
		out[i] = ((c.FirstWeekday + time.Weekday(i)) % 7).String()[:1]
	}
	return out
}

// StartOfDay returns midnight of the day containing t in t's location.
func StartOfDay(t time.Time) time.Time {
	return Calendar{Location: t.Location()}.StartOfDay(t)
}

// StartOfMonth returns the first date of t's month in the local calendar.
func StartOfMonth(t time.Time) time.Time { return Local().StartOfMonth(t) }

// EndOfMonth returns the last date of t's month in the local calendar.
func EndOfMonth(t time.Time) time.Time { return Local().EndOfMonth(t) }

// StartOfCalendarGrid returns the first grid cell date for t's month in the
// local calendar.
func StartOfCalendarGrid(t time.Time) time.Time { return Local().StartOfCalendarGrid(t) }

// ParseWeekStart parses "sunday" or "monday" (case-insensitive).
func ParseWeekStart(s string) (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sunday", "sun":
		return time.Sunday, nil
	case "monday", "mon":
		return time.Monday, nil
	}
	return time.Sunday, fmt.Errorf("invalid week start %q: expected sunday or monday", s)
}
