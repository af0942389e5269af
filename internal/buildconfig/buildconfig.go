package buildconfig

import "runtime"

// Injected with -ldflags "-X github.com/fitnova/central/internal/buildconfig.version=..."
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func Version() string {
	return version
}

func Commit() string {
	return commit
}

// VersionInfo is reported by /health and /metrics.
func VersionInfo() map[string]string {
	return map[string]string{
		"version":    version,
		"commit":     commit,
		"build_date": buildDate,
		"go_version": runtime.Version(),
	}
}
