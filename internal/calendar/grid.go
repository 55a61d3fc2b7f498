package calendar

import (
	"fmt"
	"time"
)

// Cell is one slot in a month grid. Blank cells pad the grid before the 1st
// and after the last day of the month. Leading blanks carry the date they
// cover. Trailing blanks are undated: their Day is the zero StudyDay, and a
// zero Day.Date means "no date", not January 1 of year 1.
type Cell struct {
	Blank bool
	Day   StudyDay
}

// BuildMonthGrid lays month out as full 7-day weeks. Each date of the month
// maps to its record in days, or to an unstudied day when there is none.
func (c Calendar) BuildMonthGrid(days []StudyDay, month Month) ([]Cell, error) {
	if !month.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMonth, month)
	}

	first := month.First(c.loc())
	lead := c.WeekdayIndex(first)
	n := month.Days()

	total := lead + n
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	byDay := make(map[int64]StudyDay, len(days))
	for _, d := range days {
		byDay[dayNumber(d.Date)] = d
	}

	cells := make([]Cell, 0, total)
	for i := lead; i > 0; i-- {
		cells = append(cells, Cell{
			Blank: true,
			Day:   StudyDay{Date: first.AddDate(0, 0, -i)},
		})
	}
	for d := 1; d <= n; d++ {
		date := time.Date(month.Year, month.Month, d, 0, 0, 0, 0, c.loc())
		day, ok := byDay[dayNumber(date)]
		if !ok {
			day = StudyDay{Date: date}
		}
		cells = append(cells, Cell{Day: day})
	}
	for len(cells) < total {
		cells = append(cells, Cell{Blank: true})
	}
	return cells, nil
}

// BuildMonthGrid lays month out using the local calendar.
func BuildMonthGrid(days []StudyDay, month Month) ([]Cell, error) {
	return Local().BuildMonthGrid(days, month)
}

// Weeks splits a grid into rows of seven cells.
func Weeks(cells []Cell) [][]Cell {
	var rows [][]Cell
	for start := 0; start < len(cells); start += 7 {
		end := min(start+7, len(cells))
		rows = append(rows, cells[start:end])
	}
	return rows
}
