// Package build carries version information stamped in at link time.
package build

// Set via -ldflags "-X go.trai.ch/press/internal/build.Version=...".
// The defaults mark a binary built straight from the working tree.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
