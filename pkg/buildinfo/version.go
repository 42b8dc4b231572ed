// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/apgmedia/apgdeck/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/apgmedia/apgdeck/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/apgmedia/apgdeck/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/apgdeck
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the short git SHA the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Generator returns the value written into document metadata and JSON dumps,
// for example "apgdeck dev (none)".
func Generator() string {
	return fmt.Sprintf("apgdeck %s (%s)", Version, Commit)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
