package calendar

import (
	"fmt"
	"time"
)

// Fetcher supplies study days for an inclusive date range, ascending by date
// with at most one record per date. A zero from means no lower bound.
type Fetcher interface {
	Fetch(from, to time.Time) ([]StudyDay, error)
}

// LoadMonth fetches the records covering month's grid and builds it.
func (c Calendar) LoadMonth(f Fetcher, month Month) ([]Cell, error) {
	if !month.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMonth, month)
	}
	first := month.First(c.loc())
	days, err := f.Fetch(c.StartOfCalendarGrid(first), c.EndOfMonth(first))
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", month, err)
	}
	return c.BuildMonthGrid(Normalize(days), month)
}

// CurrentStreak fetches every record up to today and computes the streaks
// as of now.
func (c Calendar) CurrentStreak(f Fetcher, now time.Time) (StreakInfo, error) {
	today := c.StartOfDay(now)
	days, err := f.Fetch(time.Time{}, today)
	if err != nil {
		return StreakInfo{}, fmt.Errorf("fetching study days: %w", err)
	}
	return Streaks(Normalize(days), today), nil
}
