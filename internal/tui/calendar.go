package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rnwolfe/studycal/internal/calendar"
	"github.com/rnwolfe/studycal/internal/ui"
)

// DayStore is what the calendar view needs from the day record store.
type DayStore interface {
	calendar.Fetcher
	Toggle(date time.Time) (bool, error)
	EnsureMonth(month calendar.Month) (int, error)
}

type calDataMsg struct {
	month  calendar.Month
	cells  []calendar.Cell
	streak calendar.StreakInfo
}

type calErrMsg struct{ err error }

type toggledMsg struct {
	date    time.Time
	studied bool
}

// CalendarModel is the Bubbletea model for the month view.
type CalendarModel struct {
	store DayStore
	cal   calendar.Calendar
	now   func() time.Time

	month  calendar.Month
	cursor time.Time
	cells  []calendar.Cell
	streak calendar.StreakInfo

	help    help.Model
	width   int
	height  int
	loading bool
	status  string
	err     error
}

// NewCalendarModel opens on the current month with the cursor on today.
func NewCalendarModel(store DayStore, cal calendar.Calendar, now func() time.Time) *CalendarModel {
	if now == nil {
		now = time.Now
	}
	today := cal.StartOfDay(now())
	return &CalendarModel{
		store:   store,
		cal:     cal,
		now:     now,
		month:   calendar.MonthOf(today),
		cursor:  today,
		help:    help.New(),
		width:   80,
		height:  24,
		loading: true,
	}
}

// RunCalendar runs the calendar view until the user quits.
func RunCalendar(store DayStore, cal calendar.Calendar) error {
	m := NewCalendarModel(store, cal, time.Now)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("calendar: %w", err)
	}
	return nil
}

// IsTTY returns true when stdin and stdout are both terminals.
func IsTTY() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func (m *CalendarModel) Init() tea.Cmd {
	return m.load()
}

func (m *CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width - 2
		return m, nil

	case calDataMsg:
		if msg.month != m.month {
			// Stale load for a month we've navigated away from.
			return m, nil
		}
		m.loading = false
		m.err = nil
		m.cells = msg.cells
		m.streak = msg.streak
		return m, nil

	case calErrMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case toggledMsg:
		if msg.studied {
			m.status = "Studied on " + msg.date.Format("Mon Jan 2")
		} else {
			m.status = "Cleared " + msg.date.Format("Mon Jan 2")
		}
		return m, m.load()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *CalendarModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Left):
		return m, m.moveCursor(m.cursor.AddDate(0, 0, -1))
	case key.Matches(msg, keys.Right):
		return m, m.moveCursor(m.cursor.AddDate(0, 0, 1))
	case key.Matches(msg, keys.Up):
		return m, m.moveCursor(m.cursor.AddDate(0, 0, -7))
	case key.Matches(msg, keys.Down):
		return m, m.moveCursor(m.cursor.AddDate(0, 0, 7))
	case key.Matches(msg, keys.PrevMonth):
		return m, m.moveCursor(m.dayIn(m.month.Prev()))
	case key.Matches(msg, keys.NextMonth):
		return m, m.moveCursor(m.dayIn(m.month.Next()))
	case key.Matches(msg, keys.Today):
		return m, m.moveCursor(m.cal.StartOfDay(m.now()))
	case key.Matches(msg, keys.Toggle):
		return m, m.toggle()
	case key.Matches(msg, keys.Reload):
		m.loading = true
		return m, m.load()
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// dayIn keeps the cursor's day of month in target, clamped to its last day.
func (m *CalendarModel) dayIn(target calendar.Month) time.Time {
	d := min(m.cursor.Day(), target.Days())
	return time.Date(target.Year, target.Month, d, 0, 0, 0, 0, m.cursor.Location())
}

// moveCursor moves to date, reloading when the month changes.
func (m *CalendarModel) moveCursor(date time.Time) tea.Cmd {
	m.cursor = m.cal.StartOfDay(date)
	m.status = ""
	if month := calendar.MonthOf(m.cursor); month != m.month {
		m.month = month
		m.cells = nil
		m.loading = true
		return m.load()
	}
	return nil
}

func (m *CalendarModel) toggle() tea.Cmd {
	if m.loading {
		return nil
	}
	date := m.cursor
	if date.After(m.cal.StartOfDay(m.now())) {
		m.status = "Can't mark a day that hasn't happened yet."
		return nil
	}
	store := m.store
	return func() tea.Msg {
		studied, err := store.Toggle(date)
		if err != nil {
			return calErrMsg{err: err}
		}
		return toggledMsg{date: date, studied: studied}
	}
}

// load fetches the displayed month and the streak. Days of the current
// month are created on first display.
func (m *CalendarModel) load() tea.Cmd {
	store, cal, month, now := m.store, m.cal, m.month, m.now()
	return func() tea.Msg {
		if month == calendar.MonthOf(cal.StartOfDay(now)) {
			if _, err := store.EnsureMonth(month); err != nil {
				return calErrMsg{err: err}
			}
		}
		cells, err := cal.LoadMonth(store, month)
		if err != nil {
			return calErrMsg{err: err}
		}
		streak, err := cal.CurrentStreak(store, now)
		if err != nil {
			return calErrMsg{err: err}
		}
		return calDataMsg{month: month, cells: cells, streak: streak}
	}
}

func (m *CalendarModel) View() string {
	if m.err != nil {
		return "\n  " + ui.Error.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.loading && m.cells == nil {
		return "\n  " + ui.Muted.Render("Loading…") + "\n"
	}

	title := ui.Title.Render(m.month.Title())
	grid := ui.RenderGrid(m.cal, m.cells, ui.GridOptions{
		Today:   m.cal.StartOfDay(m.now()),
		Cursor:  m.cursor,
		Compact: m.width < 40,
	})
	streak := renderStreakPanel(m.streak)

	var body string
	if m.width >= 60 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, grid, "    ", streak)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, streak, "", grid)
	}

	var b strings.Builder
	b.WriteString("\n  " + title + "\n\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("  " + ui.Info.Render(m.status) + "\n")
	}
	b.WriteString("  " + m.help.View(keys) + "\n")
	return b.String()
}

// renderStreakPanel shows the current streak large and the longest below.
func renderStreakPanel(s calendar.StreakInfo) string {
	current := ui.StreakStyle(s.Current).Render(fmt.Sprintf("%s %d", ui.IconFire, s.Current))
	return lipgloss.JoinVertical(lipgloss.Left,
		current,
		ui.Muted.Render("Current Streak"),
		"",
		ui.Muted.Render("Longest: "+ui.StreakLabel(s.Longest)),
	)
}
