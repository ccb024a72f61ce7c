// Package version provides version information for the mfe CLI.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// Get returns the current version information. When no version was set at
// link time, the module version recorded by `go install` is used if present.
func Get() Info {
	v := Version
	if v == "v0.0.0-dev" {
		if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			v = bi.Main.Version
		}
	}

	return Info{
		Version:   v,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// Release reports whether the version is a tagged release (valid semver
// without a prerelease suffix).
func (i Info) Release() bool {
	sv, err := semver.NewVersion(i.Version)
	if err != nil {
		return false
	}
	return sv.Prerelease() == ""
}

// String returns a human-readable version string.
func (i Info) String() string {
	kind := "development build"
	if i.Release() {
		kind = "release"
	}
	return fmt.Sprintf("mfe:\n  Version:  %s (%s)\n  Build ID: %s/%s\n  Go:       %s",
		i.Version, kind, i.BuildDate, i.GitCommit, i.GoVersion)
}
