package app

import "fmt"

// Build metadata, overridden with -ldflags
// "-X github.com/wordwell/backend/internal/app.Version=..." and friends.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion formats the build metadata for startup logs and the
// health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
