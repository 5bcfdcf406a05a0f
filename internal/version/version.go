// Package version reports the loadmon build version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/loadmon/internal/version.Version=v1.0.0 \
//	                   -X github.com/muurk/loadmon/internal/version.Commit=abc1234"
//
// Missing values are filled from the module build info, then default to
// "dev" and "unknown".
var (
	Version = ""
	Commit  = ""
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		Version, Commit = fromBuildInfo(info, Version, Commit)
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills whichever of version and commit are empty from info.
// A module version of "(devel)" is ignored; the VCS revision is shortened to
// seven characters and marked "-dirty" when the tree was modified.
func fromBuildInfo(info *debug.BuildInfo, version, commit string) (string, string) {
	if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		version = info.Main.Version
	}

	if commit == "" {
		var revision string
		var modified bool
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
		if len(revision) > 7 {
			revision = revision[:7]
		}
		if revision != "" && modified {
			revision += "-dirty"
		}
		commit = revision
	}

	return version, commit
}

// Full returns the version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
