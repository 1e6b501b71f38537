// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Surface build-time VCS information without a linker-flag dance.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion derives a version string from embedded build info.
// Returns the short VCS revision, "(dirty)"-suffixed when the tree was
// modified, or "dev" when no build info is available.
func GetVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
