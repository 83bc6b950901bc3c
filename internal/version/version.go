// Package version reports build information for the abagen binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Set via -ldflags "-X github.com/katalvlaran/abasp/internal/version.VersionTag=..."
var (
	VersionTag = "dev"
	CommitHash = ""
	BuildTime  = ""
)

// Info is the build information of the running binary.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildTime string `json:"build_time,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information, falling back to the module build info
// for the commit when it was not injected.
func Get() Info {
	info := Info{
		Version:   VersionTag,
		Commit:    CommitHash,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
	if info.Commit == "" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" {
					info.Commit = s.Value
				}
			}
		}
	}
	return info
}

func (i Info) String() string {
	s := "abagen " + i.Version
	if i.Commit != "" {
		short := i.Commit
		if len(short) > 12 {
			short = short[:12]
		}
		s += fmt.Sprintf(" (%s)", short)
	}
	if i.BuildTime != "" {
		s += " built " + i.BuildTime
	}
	return s
}
