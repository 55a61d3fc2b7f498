package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rnwolfe/studycal/internal/calendar"
	"github.com/rnwolfe/studycal/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// monthFlag is a --month value in YYYY-MM form. Unset means the current month.
type monthFlag struct {
	month calendar.Month
	set   bool
}

var _ pflag.Value = (*monthFlag)(nil)

func (f *monthFlag) String() string {
	if !f.set {
		return ""
	}
	return f.month.String()
}

func (f *monthFlag) Set(s string) error {
	m, err := calendar.ParseMonth(s)
	if err != nil {
		return err
	}
	f.month, f.set = m, true
	return nil
}

func (f *monthFlag) Type() string { return "YYYY-MM" }

// or returns the flag's month, falling back to def when unset.
func (f *monthFlag) or(def calendar.Month) calendar.Month {
	if f.set {
		return f.month
	}
	return def
}

var calMonth monthFlag

var calCmd = &cobra.Command{
	Use:   "cal",
	Short: "Print a month of the study calendar",
	Long: `Print one month as a week-aligned grid. Studied days are highlighted.

Examples:
  studycal cal
  studycal cal --month 2023-03`,
	Args: cobra.NoArgs,
	RunE: runCal,
}

func init() {
	calCmd.Flags().Var(&calMonth, "month", "Month to show (default: current month)")
}

func runCal(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	now := nowFunc()
	current := calendar.MonthOf(s.cal.StartOfDay(now))
	month := calMonth.or(current)
	if month == current {
		if _, err := s.days.EnsureMonth(month); err != nil {
			return err
		}
	}

	cells, err := s.cal.LoadMonth(s.days, month)
	if err != nil {
		return err
	}

	ui.Header(month.Title())
	fmt.Println()
	printGrid(s.cal, cells, now)
	studied, total := ui.CountStudied(cells)
	fmt.Println()
	fmt.Println(ui.Muted.Render(fmt.Sprintf("  %d/%d days studied", studied, total)))
	fmt.Println()
	return nil
}

// printGrid prints the month grid indented two spaces.
func printGrid(cal calendar.Calendar, cells []calendar.Cell, now time.Time) {
	grid := ui.RenderGrid(cal, cells, ui.GridOptions{Today: cal.StartOfDay(now)})
	for _, line := range strings.Split(grid, "\n") {
		fmt.Println("  " + line)
	}
}
