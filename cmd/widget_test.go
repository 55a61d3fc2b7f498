package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/rnwolfe/studycal/internal/config"
)

func TestRunWidget_Line(t *testing.T) {
	configTestEnv(t)
	pinNow(t, time.Date(2023, time.March, 15, 12, 0, 0, 0, time.Local))

	captureStdout(t, func() {
		for _, day := range []string{"-1", "today"} {
			if err := runSetDay([]string{day}, true); err != nil {
				t.Fatal(err)
			}
		}
	})

	widgetLine = true
	t.Cleanup(func() { widgetLine = false })
	out := captureStdout(t, func() {
		if err := runWidget(widgetCmd, nil); err != nil {
			t.Fatal(err)
		}
	})
	if !strings.Contains(out, "2/31") {
		t.Errorf("expected 2/31 in widget line, got: %q", out)
	}
	if strings.Count(strings.TrimSpace(out), "\n") != 0 {
		t.Errorf("--line should print one line, got: %q", out)
	}
}

func TestRunWidget_GridFromConfig(t *testing.T) {
	configTestEnv(t)
	pinNow(t, time.Date(2023, time.March, 15, 12, 0, 0, 0, time.Local))
	widgetLine = false

	if err := config.Save(&config.Config{Widget: config.WidgetConfig{Grid: config.BoolPtr(false)}}); err != nil {
		t.Fatal(err)
	}

	out := captureStdout(t, func() {
		if err := runWidget(widgetCmd, nil); err != nil {
			t.Fatal(err)
		}
	})
	if !strings.Contains(out, "day streak") {
		t.Errorf("expected streak caption, got: %q", out)
	}
	if strings.Contains(out, "31") {
		t.Errorf("grid disabled in config but month days rendered: %q", out)
	}
}

func TestRunDashboard(t *testing.T) {
	configTestEnv(t)
	pinNow(t, time.Date(2023, time.March, 15, 12, 0, 0, 0, time.Local))

	if err := config.Save(&config.Config{User: config.UserConfig{Name: "Ada"}}); err != nil {
		t.Fatal(err)
	}

	s, err := openSession()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	out := captureStdout(t, func() {
		if err := runDashboard(s); err != nil {
			t.Fatalf("runDashboard: %v", err)
		}
	})
	for _, want := range []string{"Hey Ada!", "0 days", "0/31 days studied", "studycal mark"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard missing %q:\n%s", want, out)
		}
	}
}
