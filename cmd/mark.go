package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/rnwolfe/studycal/internal/ui"
	"github.com/spf13/cobra"
)

var markCmd = &cobra.Command{
	Use:   "mark [date]",
	Short: "Mark a day as studied (default: today)",
	Long: `Mark a day as studied. The date defaults to today.

Examples:
  studycal mark
  studycal mark yesterday
  studycal mark 2023-03-02`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error { return runSetDay(args, true) },
}

var unmarkCmd = &cobra.Command{
	Use:   "unmark [date]",
	Short: "Clear the studied mark on a day (default: today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  func(_ *cobra.Command, args []string) error { return runSetDay(args, false) },
}

var toggleCmd = &cobra.Command{
	Use:   "toggle [date]",
	Short: "Flip the studied mark on a day (default: today)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runToggle,
}

func runSetDay(args []string, studied bool) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	date, err := pastDay(s, args)
	if err != nil {
		return err
	}
	if err := s.days.Set(date, studied); err != nil {
		return err
	}
	return reportDay(s, date, studied)
}

func runToggle(_ *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	date, err := pastDay(s, args)
	if err != nil {
		return err
	}
	studied, err := s.days.Toggle(date)
	if err != nil {
		return err
	}
	return reportDay(s, date, studied)
}

// pastDay parses the optional date argument and rejects future days.
func pastDay(s *session, args []string) (day time.Time, err error) {
	now := nowFunc()
	day, err = parseDay(strings.Join(args, " "), s.cal, now)
	if err != nil {
		return day, err
	}
	if day.After(s.cal.StartOfDay(now)) {
		return day, fmt.Errorf("%s is in the future; only past days and today can be marked",
			day.Format("Mon Jan 2"))
	}
	return day, nil
}

func reportDay(s *session, date time.Time, studied bool) error {
	label := date.Format("Mon Jan 2")
	if studied {
		ui.Ok(fmt.Sprintf("Studied on %s", label))
	} else {
		ui.Ok(fmt.Sprintf("Cleared %s", label))
	}

	info, err := s.cal.CurrentStreak(s.days, nowFunc())
	if err != nil {
		return err
	}
	fmt.Printf("  %s %s\n", ui.IconFire, ui.StreakStyle(info.Current).Render(ui.StreakLabel(info.Current)))
	return nil
}
