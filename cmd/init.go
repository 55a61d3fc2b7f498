package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rnwolfe/studycal/internal/calendar"
	"github.com/rnwolfe/studycal/internal/config"
	"github.com/rnwolfe/studycal/internal/days"
	"github.com/rnwolfe/studycal/internal/store"
	"github.com/rnwolfe/studycal/internal/ui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up studycal for the first time",
	Long:  `Initialize studycal with your preferences. Creates config and data directories.`,
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	return runInitWithReader(bufio.NewReader(os.Stdin))
}

func runInitWithReader(reader *bufio.Reader) error {
	fmt.Println(ui.Title.Render(ui.IconCal + "Welcome to studycal!"))
	fmt.Println()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cfg.User.Name = prompt(reader, "  What should I call you?", firstNonEmpty(cfg.User.Name, os.Getenv("USER")))

	for {
		answer := prompt(reader, "  Weeks start on sunday or monday?", firstNonEmpty(cfg.Calendar.WeekStart, "sunday"))
		wd, err := calendar.ParseWeekStart(answer)
		if err == nil {
			cfg.Calendar.WeekStart = strings.ToLower(wd.String())
			break
		}
		ui.Warn(err.Error())
		cfg.Calendar.WeekStart = "sunday"
	}
	fmt.Println()

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	cal, err := cfg.Calendar.Calendar()
	if err != nil {
		return err
	}
	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	defer db.Close()

	month := calendar.MonthOf(cal.StartOfDay(nowFunc()))
	if _, err := days.NewStore(db.Conn(), cal.Location).EnsureMonth(month); err != nil {
		return fmt.Errorf("preparing %s: %w", month.Title(), err)
	}

	paths := config.GetPaths()
	ui.Ok("Config saved to " + paths.ConfigFile)
	ui.Ok("Study log at " + paths.DBFile)
	ui.Tip(fmt.Sprintf("Studied today? Run %s.", ui.Accent.Render("studycal mark")))
	fmt.Println()
	return nil
}

func prompt(reader *bufio.Reader, question, defaultVal string) string {
	if defaultVal != "" {
		fmt.Printf("%s %s ", question, ui.Muted.Render(fmt.Sprintf("(%s)", defaultVal)))
	} else {
		fmt.Printf("%s ", question)
	}

	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return defaultVal
	}
	return input
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
