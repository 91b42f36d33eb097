// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service" example:"scoring-api"`
	Version string `json:"version" example:"1.0.0"`
	Commit  string `json:"commit" example:"3f2c1ab"`
	Date    string `json:"date" example:"2026-01-15"`
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'scoring/internal/core/version.version=v1.0.0'
	// -X 'scoring/internal/core/version.commit=abcd' -X 'scoring/internal/core/version.date=2026-01-15'"
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// Service is the reported service name
const Service = "scoring-api"

// Version returns the bare version string
func Version() string { return version }

var (
	version = "1.0.0"
	commit  = "none"
	date    = "unknown"
)
