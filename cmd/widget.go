package cmd

import (
	"fmt"
	"os"

	"github.com/rnwolfe/studycal/internal/calendar"
	"github.com/rnwolfe/studycal/internal/widget"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	widgetLine bool
	widgetGrid bool
)

var widgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Compact streak + month snapshot for status bars and prompts",
	Long: `Print the current streak next to a mini calendar of this month.

The one-line form (--line, or any terminal narrower than 40 columns) suits
tmux status bars and shell prompts.`,
	Args: cobra.NoArgs,
	RunE: runWidget,
}

func init() {
	widgetCmd.Flags().BoolVar(&widgetLine, "line", false, "Print the one-line form")
	widgetCmd.Flags().BoolVar(&widgetGrid, "grid", true, "Show the mini month grid (overrides widget.grid)")
}

func runWidget(cmd *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	now := nowFunc()
	if _, err := s.days.EnsureMonth(calendar.MonthOf(s.cal.StartOfDay(now))); err != nil {
		return err
	}
	snap, err := widget.Build(s.cal, s.days, now)
	if err != nil {
		return err
	}

	showGrid := s.cfg.Widget.ShowGrid()
	if cmd.Flags().Changed("grid") {
		showGrid = widgetGrid
	}

	if widgetLine {
		fmt.Println(snap.Line())
		return nil
	}
	fmt.Println(snap.Fit(terminalWidth(), showGrid))
	return nil
}

// terminalWidth returns stdout's width, or 0 when it isn't a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
