package calendar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidMonth is returned when a Month does not name a real calendar month.
var ErrInvalidMonth = errors.New("invalid month")

// MonthLayout is the textual form accepted by ParseMonth.
const MonthLayout = "2006-01"

// Month identifies a calendar month independent of time zone.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t, read in t's location.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a month in "YYYY-MM" form.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w %q: expected YYYY-MM", ErrInvalidMonth, s)
	}
	return MonthOf(t), nil
}

// Valid reports whether m names a month in years 1 through 9999.
func (m Month) Valid() bool {
	return m.Month >= time.January && m.Month <= time.December &&
		m.Year >= 1 && m.Year <= 9999
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Title returns a display title such as "March 2023".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Next returns the following month.
func (m Month) Next() Month {
	return m.add(1)
}

// Prev returns the preceding month.
func (m Month) Prev() Month {
	return m.add(-1)
}

func (m Month) add(n int) Month {
	return MonthOf(time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC))
}

// Days returns the number of days in m.
func (m Month) Days() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// First returns midnight of the 1st of m in loc.
func (m Month) First(loc *time.Location) time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, loc)
}
