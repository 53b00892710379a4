// Package version provides information about the build version of the tool.
package version

import "fmt"

// BuildInfo holds version information about the build.
type BuildInfo struct {
	Name    string
	Version string
	Commit  string
	Date    string
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'gasanalysis/internal/core/version.version=v0.1.0'
	// -X 'gasanalysis/internal/core/version.commit=abcd' -X 'gasanalysis/internal/core/version.date=2026-10-01'"
	return BuildInfo{
		Name:    "analyze-transactions",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// String renders the one line printed by the version command
func (b BuildInfo) String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", b.Name, b.Version, b.Commit, b.Date)
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
