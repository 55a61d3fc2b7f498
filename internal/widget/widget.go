// Package widget builds the at-a-glance streak snapshot shown by
// `studycal widget`: the current streak beside a mini calendar of the month.
package widget

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rnwolfe/studycal/internal/calendar"
	"github.com/rnwolfe/studycal/internal/ui"
)

// NarrowWidth is the terminal width below which only the one-line form fits.
const NarrowWidth = 40

// Snapshot is everything the widget shows, computed at one instant.
type Snapshot struct {
	Calendar calendar.Calendar
	Today    time.Time
	Month    calendar.Month
	Cells    []calendar.Cell
	Streak   calendar.StreakInfo
}

// Build loads the current month and streak from f as of now.
func Build(cal calendar.Calendar, f calendar.Fetcher, now time.Time) (Snapshot, error) {
	today := cal.StartOfDay(now)
	month := calendar.MonthOf(today)

	cells, err := cal.LoadMonth(f, month)
	if err != nil {
		return Snapshot{}, err
	}
	streak, err := cal.CurrentStreak(f, now)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Calendar: cal,
		Today:    today,
		Month:    month,
		Cells:    cells,
		Streak:   streak,
	}, nil
}

// Line renders the snapshot as a single line for prompts and status bars.
func (s Snapshot) Line() string {
	studied, total := ui.CountStudied(s.Cells)
	return fmt.Sprintf("%s %s %s %d/%d",
		ui.IconFire,
		ui.StreakStyle(s.Streak.Current).Render(fmt.Sprint(s.Streak.Current)),
		ui.Muted.Render(ui.IconDot),
		studied, total)
}

// Render draws the streak block, followed by the mini grid when withGrid is set.
func (s Snapshot) Render(withGrid bool) string {
	number := ui.StreakStyle(s.Streak.Current).
		Width(12).
		Align(lipgloss.Center).
		Render(fmt.Sprint(s.Streak.Current))
	caption := ui.Muted.Width(12).Align(lipgloss.Center).Render("day streak")
	block := lipgloss.JoinVertical(lipgloss.Center, "", number, caption)

	if !withGrid {
		return block
	}
	grid := ui.RenderGrid(s.Calendar, s.Cells, ui.GridOptions{Today: s.Today, Compact: true})
	return lipgloss.JoinHorizontal(lipgloss.Top, block, "  ", grid)
}

// Fit picks the rendering for a terminal of the given width. A width of 0
// or less means unknown and gets the full form.
func (s Snapshot) Fit(width int, withGrid bool) string {
	if width > 0 && width < NarrowWidth {
		return s.Line()
	}
	return s.Render(withGrid)
}
