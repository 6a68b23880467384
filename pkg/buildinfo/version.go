// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/licensefinder/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/licensefinder/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/licensefinder/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Field is a labelled piece of build information.
type Field struct {
	Key   string
	Value string
}

// Fields returns the build information in display order.
func Fields() []Field {
	return []Field{
		{Key: "version", Value: Version},
		{Key: "commit", Value: Commit},
		{Key: "built", Value: Date},
	}
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
