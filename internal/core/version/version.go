// Package version provides information about the build version of the service.
package version

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. version, commit and date are set at link time:
// -ldflags "-X 'voicebooking/internal/core/version.version=v0.1.0' -X 'voicebooking/internal/core/version.commit=abcd'"
func Info() BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	service = "voicebooking-api"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
