package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rnwolfe/studycal/internal/calendar"
)

// KeyType represents the data type of a config key.
type KeyType string

const (
	KeyTypeString KeyType = "string"
	KeyTypeBool   KeyType = "bool"
)

// KeyEntry describes a known, settable config key.
type KeyEntry struct {
	Type KeyType
	// Desc is shown by `studycal config list`.
	Desc       string
	DefaultStr string

	get   func(*Config) string
	set   func(cfg *Config, value string) error
	unset func(cfg *Config)
}

// Get returns the current value of the key as a string.
func (e *KeyEntry) Get(cfg *Config) string { return e.get(cfg) }

// Set validates and sets the value, returning a descriptive error on type mismatch.
func (e *KeyEntry) Set(cfg *Config, value string) error { return e.set(cfg, value) }

// Unset resets the key to its schema default.
func (e *KeyEntry) Unset(cfg *Config) { e.unset(cfg) }

// SchemaKeys is the registry of all settable config keys, in dot-notation
// matching the TOML sections.
var SchemaKeys = map[string]*KeyEntry{
	"user.name": {
		Type:       KeyTypeString,
		Desc:       "Display name",
		DefaultStr: "",
		get:        func(cfg *Config) string { return cfg.User.Name },
		set:        func(cfg *Config, v string) error { cfg.User.Name = v; return nil },
		unset:      func(cfg *Config) { cfg.User.Name = "" },
	},
	"calendar.week_start": {
		Type:       KeyTypeString,
		Desc:       "First day of the week (sunday, monday)",
		DefaultStr: "sunday",
		get:        func(cfg *Config) string { return cfg.Calendar.WeekStart },
		set: func(cfg *Config, v string) error {
			wd, err := calendar.ParseWeekStart(v)
			if err != nil {
				return err
			}
			cfg.Calendar.WeekStart = strings.ToLower(wd.String())
			return nil
		},
		unset: func(cfg *Config) { cfg.Calendar.WeekStart = "sunday" },
	},
	"calendar.timezone": {
		Type:       KeyTypeString,
		Desc:       "IANA time zone for \"today\" (empty = system local)",
		DefaultStr: "",
		get:        func(cfg *Config) string { return cfg.Calendar.Timezone },
		set: func(cfg *Config, v string) error {
			if _, err := time.LoadLocation(v); err != nil {
				return fmt.Errorf("invalid timezone %q: %w", v, err)
			}
			cfg.Calendar.Timezone = v
			return nil
		},
		unset: func(cfg *Config) { cfg.Calendar.Timezone = "" },
	},
	"widget.grid": {
		Type:       KeyTypeBool,
		Desc:       "Show the mini month grid in `studycal widget`",
		DefaultStr: "true",
		get:        func(cfg *Config) string { return fmt.Sprintf("%t", cfg.Widget.ShowGrid()) },
		set: func(cfg *Config, v string) error {
			b, err := ParseBoolValue(v)
			if err != nil {
				return fmt.Errorf("invalid value %q for widget.grid: %w", v, err)
			}
			cfg.Widget.Grid = BoolPtr(b)
			return nil
		},
		unset: func(cfg *Config) { cfg.Widget.Grid = BoolPtr(true) },
	},
}

// ValidKeyNames returns the sorted list of all known config key names.
func ValidKeyNames() []string {
	names := make([]string, 0, len(SchemaKeys))
	for k := range SchemaKeys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// LookupKey returns the KeyEntry for a known config key.
func LookupKey(key string) (*KeyEntry, bool) {
	entry, ok := SchemaKeys[key]
	return entry, ok
}

// ParseBoolValue accepts true/false, 1/0, yes/no and on/off.
func ParseBoolValue(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("not a boolean: %q (use one of: true/false, 1/0, yes/no, on/off)", s)
	}
}
