// Where: internal/version/version.go
// What: Version information retrieval.
// Why: Report the Git revision deployctl was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// GetVersion returns version information derived from build info:
// the VCS revision, shortened to 7 characters, with a "(dirty)" marker
// when the tree was modified. Falls back to "dev" without build info.
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
			if setting.Value == "true" {
				modified = true
			}
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
