package version

import "fmt"

// These variables are set at build time using -ldflags, typically with
// values printed by `buildmeta ldflags`.
// Example: go build -ldflags "-X github.com/alexiusacademia/buildmeta/internal/version.Version=1.0.0"
var (
	// Version is the version of the buildmeta binary
	Version = "dev"

	// BuildTime is the time the binary was built (set via ldflags)
	BuildTime = "unknown"

	// GitCommit is the git commit hash (set via ldflags)
	GitCommit = "unknown"

	// Author of the application
	Author = "Alexius Academia"

	// Year of release
	Year = "2025"
)

// Summary returns "<version> (<commit>, built <time>)".
func Summary() string {
	return fmt.Sprintf("%s (%s, built %s)", Version, GitCommit, BuildTime)
}
