// Package version carries build identifiers, set at link time with
// -ldflags "-X github.com/safedep/timelineviewer/internal/version.Version=...".
package version

import "runtime/debug"

var (
	Version = ""
	Commit  = "none"
)

func init() {
	if Version != "" {
		return
	}
	Version = "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		Version = info.Main.Version
	}
}
