package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rnwolfe/studycal/internal/calendar"
)

// memStore is an in-memory DayStore keyed by date.
type memStore struct {
	days    map[string]bool
	ensured []calendar.Month
}

func newMemStore() *memStore {
	return &memStore{days: map[string]bool{}}
}

func (s *memStore) Fetch(from, to time.Time) ([]calendar.StudyDay, error) {
	var out []calendar.StudyDay
	for k, v := range s.days {
		d, _ := time.ParseInLocation(calendar.DateLayout, k, time.UTC)
		if (from.IsZero() || !d.Before(from)) && !d.After(to) {
			out = append(out, calendar.StudyDay{Date: d, DidStudy: v})
		}
	}
	return calendar.Normalize(out), nil
}

func (s *memStore) Toggle(date time.Time) (bool, error) {
	k := date.Format(calendar.DateLayout)
	v, ok := s.days[k]
	s.days[k] = !ok || !v
	return s.days[k], nil
}

func (s *memStore) EnsureMonth(month calendar.Month) (int, error) {
	s.ensured = append(s.ensured, month)
	n := 0
	for i := 0; i < month.Days(); i++ {
		k := month.First(time.UTC).AddDate(0, 0, i).Format(calendar.DateLayout)
		if _, ok := s.days[k]; !ok {
			s.days[k] = false
			n++
		}
	}
	return n, nil
}

var fixedNow = time.Date(2023, time.March, 15, 10, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, store *memStore) *CalendarModel {
	t.Helper()
	m := NewCalendarModel(store, calendar.Calendar{Location: time.UTC}, func() time.Time { return fixedNow })
	run(m, m.Init())
	return m
}

// run executes cmd synchronously and feeds its message back into m.
func run(m *CalendarModel, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		_, cmd = m.Update(msg)
	}
}

func press(m *CalendarModel, key string) {
	var msg tea.KeyMsg
	switch key {
	case "space":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	_, cmd := m.Update(msg)
	run(m, cmd)
}

func TestCalendarModel_InitLoadsCurrentMonth(t *testing.T) {
	store := newMemStore()
	m := newTestModel(t, store)

	if m.loading {
		t.Fatal("model still loading after Init")
	}
	if len(store.ensured) != 1 || store.ensured[0] != (calendar.Month{Year: 2023, Month: time.March}) {
		t.Errorf("ensured = %v, want March 2023", store.ensured)
	}
	if len(m.cells)%7 != 0 || len(m.cells) == 0 {
		t.Errorf("cells = %d", len(m.cells))
	}
	if !strings.Contains(m.View(), "March 2023") {
		t.Errorf("view missing title:\n%s", m.View())
	}
}

func TestCalendarModel_ToggleUpdatesStreak(t *testing.T) {
	store := newMemStore()
	store.days["2023-03-13"] = true
	store.days["2023-03-14"] = true
	m := newTestModel(t, store)

	if m.streak.Current != 2 {
		t.Fatalf("initial streak = %d, want 2", m.streak.Current)
	}
	press(m, "space")
	if !store.days["2023-03-15"] {
		t.Fatal("space should mark today studied")
	}
	if m.streak.Current != 3 {
		t.Errorf("streak after toggle = %d, want 3", m.streak.Current)
	}
	if !strings.Contains(m.status, "Studied") {
		t.Errorf("status = %q", m.status)
	}
}

func TestCalendarModel_FutureToggleRefused(t *testing.T) {
	store := newMemStore()
	m := newTestModel(t, store)

	press(m, "right")
	press(m, "space")
	if store.days["2023-03-16"] {
		t.Fatal("future day must not be marked")
	}
	if !strings.Contains(m.status, "hasn't happened") {
		t.Errorf("status = %q", m.status)
	}
}

func TestCalendarModel_MonthNavigation(t *testing.T) {
	store := newMemStore()
	store.days["2023-02-10"] = true
	m := newTestModel(t, store)

	press(m, "[")
	if m.month != (calendar.Month{Year: 2023, Month: time.February}) {
		t.Fatalf("month = %s, want 2023-02", m.month)
	}
	if m.cursor.Format(calendar.DateLayout) != "2023-02-15" {
		t.Errorf("cursor = %s", m.cursor.Format(calendar.DateLayout))
	}
	var studied int
	for _, c := range m.cells {
		if !c.Blank && c.Day.DidStudy {
			studied++
		}
	}
	if studied != 1 {
		t.Errorf("studied cells in February = %d, want 1", studied)
	}
	// Past months are not materialized.
	if len(store.ensured) != 1 {
		t.Errorf("EnsureMonth calls = %d, want 1", len(store.ensured))
	}

	press(m, "t")
	if m.month != (calendar.Month{Year: 2023, Month: time.March}) {
		t.Errorf("t should jump back to March, got %s", m.month)
	}

	// Month jumps from the end of a long month clamp to the target's last day.
	for _, tt := range []struct {
		today time.Time
		key   string
		want  string
	}{
		{time.Date(2023, time.March, 31, 9, 0, 0, 0, time.UTC), "[", "2023-02-28"},
		{time.Date(2023, time.January, 31, 9, 0, 0, 0, time.UTC), "]", "2023-02-28"},
		{time.Date(2024, time.March, 30, 9, 0, 0, 0, time.UTC), "[", "2024-02-29"},
		{time.Date(2023, time.December, 31, 9, 0, 0, 0, time.UTC), "]", "2024-01-31"},
	} {
		today := tt.today
		m := NewCalendarModel(newMemStore(), calendar.Calendar{Location: time.UTC}, func() time.Time { return today })
		run(m, m.Init())
		press(m, tt.key)
		if got := m.cursor.Format(calendar.DateLayout); got != tt.want {
			t.Errorf("%s + %q: cursor = %s, want %s", today.Format(calendar.DateLayout), tt.key, got, tt.want)
		}
		if want := calendar.MonthOf(m.cursor); m.month != want {
			t.Errorf("%s + %q: month = %s, want %s", today.Format(calendar.DateLayout), tt.key, m.month, want)
		}
	}
}

func TestCalendarModel_CursorCrossesMonth(t *testing.T) {
	m := newTestModel(t, newMemStore())
	for i := 0; i < 15; i++ {
		press(m, "left")
	}
	if m.month != (calendar.Month{Year: 2023, Month: time.February}) {
		t.Errorf("month = %s after moving past the 1st", m.month)
	}
	if m.cursor.Format(calendar.DateLayout) != "2023-02-28" {
		t.Errorf("cursor = %s", m.cursor.Format(calendar.DateLayout))
	}
}

func TestCalendarModel_StaleLoadIgnored(t *testing.T) {
	m := newTestModel(t, newMemStore())
	before := len(m.cells)
	m.Update(calDataMsg{month: calendar.Month{Year: 2022, Month: time.January}})
	if len(m.cells) != before {
		t.Error("stale month data replaced the grid")
	}
}

func TestCalendarModel_Quit(t *testing.T) {
	m := newTestModel(t, newMemStore())
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Fatalf("%s: expected quit command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected tea.QuitMsg", key)
		}
	}
}

func TestCalendarModel_NarrowLayout(t *testing.T) {
	m := newTestModel(t, newMemStore())
	m.Update(tea.WindowSizeMsg{Width: 30, Height: 20})
	view := m.View()
	if !strings.Contains(view, "Current Streak") {
		t.Errorf("narrow view missing streak panel:\n%s", view)
	}
}

func TestCalendarModel_HelpToggle(t *testing.T) {
	m := newTestModel(t, newMemStore())
	if strings.Contains(m.View(), "prev week") {
		t.Fatal("full help shown before ? was pressed")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if !strings.Contains(m.View(), "prev week") {
		t.Errorf("? should expand the help bar:\n%s", m.View())
	}
}
