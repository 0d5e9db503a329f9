// Package buildinfo reports the layoutkit build, set through ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/layoutkit/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/layoutkit/pkg/buildinfo.Commit=$(git rev-parse HEAD)" \
//	    ./cmd/layoutkit
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return "{{.Name}} " + String() + "\n"
}
