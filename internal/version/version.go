// Package version reports the julint build version.
package version

import (
	"runtime"
	"runtime/debug"
	"slices"
)

// version is set at build time with -ldflags "-X ...version.version=v1.2.3".
var version = "dev"

// Version returns the version string, with the VCS revision appended for
// development builds.
func Version() string {
	if version == "dev" {
		if commit := readCommit(); commit != "" {
			return version + " (" + commit + ")"
		}
	}
	return version
}

// RawVersion returns the semantic version string without any suffix.
func RawVersion() string {
	return version
}

// GoVersion returns the Go toolchain version used for the build.
func GoVersion() string {
	return runtime.Version()
}

// readCommit extracts the short VCS revision from the build info.
func readCommit() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	idx := slices.IndexFunc(info.Settings, func(s debug.BuildSetting) bool {
		return s.Key == "vcs.revision"
	})
	if idx < 0 {
		return ""
	}
	val := info.Settings[idx].Value
	if len(val) > 12 {
		val = val[:12]
	}
	return val
}

// Info holds structured version information for machine-readable output.
type Info struct {
	Version   string   `json:"version"`
	Platform  Platform `json:"platform"`
	GoVersion string   `json:"goVersion"`
	GitCommit string   `json:"gitCommit,omitempty"`
	Rules     int      `json:"rules"`
}

// Platform describes the OS and architecture.
type Platform struct {
	OS   string `json:"os"`
	Arch string `json:"arch"`
}

// GetInfo returns structured version information. rules is the number of
// registered lint rules.
func GetInfo(rules int) Info {
	return Info{
		Version: RawVersion(),
		Platform: Platform{
			OS:   runtime.GOOS,
			Arch: runtime.GOARCH,
		},
		GoVersion: GoVersion(),
		GitCommit: readCommit(),
		Rules:     rules,
	}
}
