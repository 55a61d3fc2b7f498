package cmd

import (
	"fmt"

	"github.com/rnwolfe/studycal/internal/ui"
	"github.com/spf13/cobra"
)

var streakShort bool

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show current and longest study streak",
	Args:  cobra.NoArgs,
	RunE:  runStreak,
}

func init() {
	streakCmd.Flags().BoolVar(&streakShort, "short", false, "Print only the current streak number")
}

func runStreak(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	info, err := s.cal.CurrentStreak(s.days, nowFunc())
	if err != nil {
		return err
	}

	if streakShort {
		fmt.Println(info.Current)
		return nil
	}

	fmt.Println()
	ui.Kv(ui.IconFire+" Current", ui.StreakStyle(info.Current).Render(ui.StreakLabel(info.Current)))
	ui.Kv(ui.IconStar+" Longest", ui.StreakLabel(info.Longest))
	if info.Current == 0 {
		ui.Tip(fmt.Sprintf("Start a new streak: %s", ui.Accent.Render("studycal mark")))
	}
	fmt.Println()
	return nil
}
