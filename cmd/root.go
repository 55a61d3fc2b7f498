package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/rnwolfe/studycal/internal/calendar"
	"github.com/rnwolfe/studycal/internal/tui"
	"github.com/rnwolfe/studycal/internal/ui"
	"github.com/spf13/cobra"
)

// nowFunc is swapped in tests to pin "today".
var nowFunc = time.Now

var rootCmd = &cobra.Command{
	Use:   "studycal",
	Short: "Study streak calendar",
	Long: `studycal tracks one thing: did you study today?

Mark days as studied, see the month at a glance, and keep your streak alive.
Run it with no arguments for the interactive calendar.`,
	RunE: runRoot,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(calCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(unmarkCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(widgetCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func runRoot(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if tui.IsTTY() {
		return tui.RunCalendar(s.days, s.cal)
	}
	return runDashboard(s)
}

// runDashboard is the non-interactive at-a-glance view.
func runDashboard(s *session) error {
	now := nowFunc()
	month := calendar.MonthOf(s.cal.StartOfDay(now))
	if _, err := s.days.EnsureMonth(month); err != nil {
		return err
	}

	cells, err := s.cal.LoadMonth(s.days, month)
	if err != nil {
		return err
	}
	streak, err := s.cal.CurrentStreak(s.days, now)
	if err != nil {
		return err
	}

	fmt.Println(ui.Greet(s.cfg.User.Name))
	fmt.Println()
	ui.Kv(ui.IconFire+" Streak", ui.StreakStyle(streak.Current).Render(ui.StreakLabel(streak.Current)))
	ui.Kv("  Longest", ui.StreakLabel(streak.Longest))
	studied, total := ui.CountStudied(cells)
	ui.Kv("  "+month.Month.String(), fmt.Sprintf("%d/%d days studied", studied, total))
	fmt.Println()
	printGrid(s.cal, cells, now)

	today, _, err := s.days.Get(s.cal.StartOfDay(now))
	if err != nil {
		return err
	}
	if today.DidStudy {
		ui.Tip("Studied today. Nice.")
	} else {
		ui.Tip(fmt.Sprintf("%s once you've studied today.", ui.Accent.Render("studycal mark")))
	}
	fmt.Println()
	return nil
}
