// Package calendar holds the study calendar's domain logic: per-day study
// records, month grids aligned to the week, and streak counting.
//
// Everything here is a pure function of its inputs. Persistence lives behind
// the Fetcher interface and rendering is left to callers.
package calendar

import (
	"cmp"
	"errors"
	"slices"
	"time"
)

// ErrMissingDate is returned when a study day is built without a date.
var ErrMissingDate = errors.New("study day has no date")

// StudyDay is one calendar day's study status.
type StudyDay struct {
	Date     time.Time
	DidStudy bool
}

// NewStudyDay builds a StudyDay normalized to midnight in date's location.
func NewStudyDay(date time.Time, didStudy bool) (StudyDay, error) {
	if date.IsZero() {
		return StudyDay{}, ErrMissingDate
	}
	return StudyDay{Date: StartOfDay(date), DidStudy: didStudy}, nil
}

// Key returns the day in "2006-01-02" form.
func (d StudyDay) Key() string {
	return d.Date.Format(DateLayout)
}

// DateLayout is the storage and display format for calendar dates.
const DateLayout = "2006-01-02"

// dayNumber returns the number of days since the Unix epoch for t's calendar
// date as read in t's own location. Two times on the same civil date map to
// the same number regardless of their clock time.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return dayNumber(a) == dayNumber(b)
}

// Normalize returns days sorted ascending by date with duplicate dates
// removed. When a date appears more than once the later entry wins.
func Normalize(days []StudyDay) []StudyDay {
	out := make([]StudyDay, 0, len(days))
	for _, d := range days {
		if d.Date.IsZero() {
			continue
		}
		out = append(out, d)
	}
	slices.SortStableFunc(out, func(a, b StudyDay) int {
		return cmp.Compare(dayNumber(a.Date), dayNumber(b.Date))
	})

	deduped := out[:0]
	for _, d := range out {
		if n := len(deduped); n > 0 && SameDay(deduped[n-1].Date, d.Date) {
			deduped[n-1] = d
			continue
		}
		deduped = append(deduped, d)
	}
	return deduped
}
