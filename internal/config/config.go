package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata" // calendar.timezone must resolve on hosts without zoneinfo

	"github.com/BurntSushi/toml"
	"github.com/rnwolfe/studycal/internal/calendar"
)

// AppName names the XDG subdirectories and the database file.
const AppName = "studycal"

// Config holds the top-level studycal configuration.
type Config struct {
	User     UserConfig     `toml:"user"`
	Calendar CalendarConfig `toml:"calendar"`
	Widget   WidgetConfig   `toml:"widget"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

// CalendarConfig controls how months are laid out and what "today" means.
type CalendarConfig struct {
	// WeekStart is "sunday" or "monday". Empty means sunday.
	WeekStart string `toml:"week_start"`
	// Timezone is an IANA zone name. Empty means the system local zone.
	Timezone string `toml:"timezone"`
}

// Calendar resolves the configured week start and time zone.
func (c CalendarConfig) Calendar() (calendar.Calendar, error) {
	first, err := calendar.ParseWeekStart(c.WeekStart)
	if err != nil {
		return calendar.Calendar{}, err
	}
	loc := time.Local
	if c.Timezone != "" {
		loc, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return calendar.Calendar{}, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	return calendar.Calendar{Location: loc, FirstWeekday: first}, nil
}

// WidgetConfig controls `studycal widget` output.
type WidgetConfig struct {
	// Grid includes the mini month grid next to the streak.
	// Defaults to true when not set.
	Grid *bool `toml:"grid,omitempty"`
}

// ShowGrid treats a missing setting as true.
func (w WidgetConfig) ShowGrid() bool {
	if w.Grid == nil {
		return true
	}
	return *w.Grid
}

// Paths returns standard XDG-compliant paths.
type Paths struct {
	ConfigDir  string
	DataDir    string
	CacheDir   string
	StateDir   string
	ConfigFile string
	DBFile     string
}

// GetPaths returns the resolved paths, respecting XDG env vars.
func GetPaths() Paths {
	home, _ := os.UserHomeDir()

	configDir := filepath.Join(envOr("XDG_CONFIG_HOME", filepath.Join(home, ".config")), AppName)
	dataDir := filepath.Join(envOr("XDG_DATA_HOME", filepath.Join(home, ".local", "share")), AppName)

	return Paths{
		ConfigDir:  configDir,
		DataDir:    dataDir,
		CacheDir:   filepath.Join(envOr("XDG_CACHE_HOME", filepath.Join(home, ".cache")), AppName),
		StateDir:   filepath.Join(envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state")), AppName),
		ConfigFile: filepath.Join(configDir, "config.toml"),
		DBFile:     filepath.Join(dataDir, AppName+".db"),
	}
}

// EnsureDirs creates all required directories.
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.ConfigDir, p.DataDir, p.CacheDir, p.StateDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return err
		}
	}
	return nil
}

// Load reads config from disk, returning defaults if not found.
func Load() (*Config, error) {
	data, err := os.ReadFile(GetPaths().ConfigFile)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, err
	}

	cfg := defaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes config to disk.
func Save(cfg *Config) error {
	paths := GetPaths()
	if err := paths.EnsureDirs(); err != nil {
		return err
	}

	f, err := os.Create(paths.ConfigFile)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Initialized returns true if studycal has been set up.
func Initialized() bool {
	_, err := os.Stat(GetPaths().ConfigFile)
	return err == nil
}

// BoolPtr returns a pointer to a bool value.
func BoolPtr(v bool) *bool {
	return &v
}

func defaultConfig() *Config {
	return &Config{
		Calendar: CalendarConfig{WeekStart: "sunday"},
		Widget:   WidgetConfig{Grid: BoolPtr(true)},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
