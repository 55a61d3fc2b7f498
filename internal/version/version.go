// Package version reports which build of studycal is running.
package version

import (
	"runtime/debug"
	"strings"
)

// Set at build time via
//
//	-ldflags "-X github.com/rnwolfe/studycal/internal/version.Version=v0.3.0 ..."
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// Info is the resolved build identity.
type Info struct {
	Version string
	Commit  string
	Date    string
	Dirty   bool
}

// Get resolves Info from ldflags, falling back to the module build info
// embedded by `go install` / `go build`.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info = fillFromBuildInfo(info, bi)
	}
	return info
}

// String renders "v1.2.3 (abc1234, 2024-01-02T...)", omitting unknown parts.
func (i Info) String() string {
	var meta []string
	if i.Commit != "" {
		c := i.Commit
		if i.Dirty {
			c += "-dirty"
		}
		meta = append(meta, c)
	}
	if i.Date != "" {
		meta = append(meta, i.Date)
	}
	if len(meta) == 0 {
		return i.Version
	}
	return i.Version + " (" + strings.Join(meta, ", ") + ")"
}

func Full() string  { return Get().String() }
func Short() string { return Get().Version }

// fillFromBuildInfo only fills fields still at their ldflags default.
func fillFromBuildInfo(info Info, bi *debug.BuildInfo) Info {
	if bi == nil {
		return info
	}
	// "(devel)" is what untagged builds report; keep "dev" for those.
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	fromVCS := info.Commit == ""
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if fromVCS && s.Value != "" {
				info.Commit = s.Value[:min(len(s.Value), 7)]
			}
		case "vcs.time":
			if info.Date == "" {
				info.Date = s.Value
			}
		case "vcs.modified":
			if fromVCS {
				info.Dirty = s.Value == "true"
			}
		}
	}
	return info
}
