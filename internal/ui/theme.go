package ui

import "github.com/charmbracelet/lipgloss"

// studycal's palette: orange for studied days, stone for the rest.
var (
	Orange = lipgloss.Color("#FF9500")
	Peach  = lipgloss.Color("#FFCC80")
	Pink   = lipgloss.Color("#FF2D55")
	Stone  = lipgloss.Color("#8B8680")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#50C878")
	Blue   = lipgloss.Color("#0F52BA")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Orange)

	Success = lipgloss.NewStyle().
		Foreground(Green)

	Error = lipgloss.NewStyle().
		Foreground(Pink)

	Warning = lipgloss.NewStyle().
		Foreground(Peach)

	Info = lipgloss.NewStyle().
		Foreground(Blue)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Orange).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Orange).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)

	// Calendar cells.
	WeekdayHeader = lipgloss.NewStyle().
			Foreground(Orange).
			Bold(true)

	StudiedDay = lipgloss.NewStyle().
			Foreground(Bright).
			Background(Orange).
			Bold(true)

	UnstudiedDay = lipgloss.NewStyle().
			Foreground(Stone)

	TodayMark = lipgloss.NewStyle().
			Underline(true)

	Cursor = lipgloss.NewStyle().
		Reverse(true)

	// StreakLive colors a non-zero streak; StreakZero a zero one.
	StreakLive = lipgloss.NewStyle().Foreground(Orange).Bold(true)
	StreakZero = lipgloss.NewStyle().Foreground(Pink).Bold(true)
)

const (
	IconCal   = "📅 "
	IconFire  = "🔥"
	IconStar  = "⭐"
	IconWarn  = "⚠️ "
	IconError = "✗ "
	IconOk    = "✓ "
	IconDot   = "·"
)

// StreakStyle picks the streak color the way the calendar view does.
func StreakStyle(n int) lipgloss.Style {
	if n > 0 {
		return StreakLive
	}
	return StreakZero
}
