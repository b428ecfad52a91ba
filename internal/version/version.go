// Package version contains build version information.
package version

// These values are set at build time via
// -ldflags "-X github.com/aiharmwatch/harmwatch/internal/version.Version=...".
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
