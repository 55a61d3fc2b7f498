package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/studycal/internal/calendar"
)

// GridOptions controls how RenderGrid draws a month.
type GridOptions struct {
	// Today is underlined when it falls in the grid.
	Today time.Time
	// Cursor is drawn reversed. Zero means no cursor.
	Cursor time.Time
	// Compact uses three-column cells instead of four.
	Compact bool
}

// RenderGrid draws a weekday header followed by one line per week.
func RenderGrid(cal calendar.Calendar, cells []calendar.Cell, opts GridOptions) string {
	width := 4
	if opts.Compact {
		width = 3
	}
	cell := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	var header []string
	for _, d := range cal.WeekdayInitials() {
		header = append(header, cell.Render(WeekdayHeader.Render(d)))
	}
	b.WriteString(strings.Join(header, ""))

	for _, week := range calendar.Weeks(cells) {
		b.WriteString("\n")
		for _, c := range week {
			b.WriteString(cell.Render(renderDay(c, opts)))
		}
	}
	return b.String()
}

func renderDay(c calendar.Cell, opts GridOptions) string {
	if c.Blank {
		return ""
	}
	label := fmt.Sprintf("%2d", c.Day.Date.Day())

	style := UnstudiedDay
	if c.Day.DidStudy {
		style = StudiedDay
	}
	if !opts.Today.IsZero() && calendar.SameDay(c.Day.Date, opts.Today) {
		style = style.Inherit(TodayMark)
	}
	if !opts.Cursor.IsZero() && calendar.SameDay(c.Day.Date, opts.Cursor) {
		style = style.Inherit(Cursor)
	}
	return style.Render(label)
}

// CountStudied returns the number of studied day cells in a grid.
func CountStudied(cells []calendar.Cell) (studied, total int) {
	for _, c := range cells {
		if c.Blank {
			continue
		}
		total++
		if c.Day.DidStudy {
			studied++
		}
	}
	return studied, total
}
