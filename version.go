package tagcodec

import "runtime"

// Version is the library's semantic version.
const Version = "0.1.0"

// Build metadata, stamped via -ldflags at build time. Left at
// "unknown" for plain go-build consumers.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

// VersionInfo bundles the version with build provenance for tools
// that report what they were built from.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetVersion returns the semantic version string.
func GetVersion() string {
	return Version
}

// GetVersionInfo returns the version plus whatever build metadata the
// binary was stamped with:
//
//	go build -ldflags="-X github.com/simonhull/tagcodec.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/tagcodec.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// GoVersion falls back to the runtime toolchain when not stamped.
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}

	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: goVer,
	}
}
