// Package pkg provides the core libraries for licensefinder.
//
// # Overview
//
// licensefinder reports the third-party dependencies of a project together
// with the licenses they declare. It does not resolve dependencies itself:
// each package ecosystem's own tooling is asked for the list, and its
// machine-readable output is normalised into a common record. The pkg
// directory is organized into three areas:
//
//  1. Domain: [license] records and the [deps] adapter contract
//  2. Adapters: one subpackage per ecosystem, currently [deps/java] (Maven)
//  3. Infrastructure: [shell], [config], [cache], [errors], [observability]
//     and [buildinfo]
//
// # Architecture
//
// The typical data flow through licensefinder:
//
//	project directory (+ .licensefinder.toml)
//	         ↓
//	    [config] package (project path, ignored groups, output options)
//	         ↓
//	    [deps] registry (adapters whose manifest is present)
//	         ↓
//	    [shell] package (run the ecosystem tool in the project directory)
//	         ↓
//	    [deps/java] package (parse the generated license summaries)
//	         ↓
//	    []license.Package → table, JSON or CSV
//
// # Quick Start
//
// List the dependencies of a Maven project:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/licensefinder/pkg/deps"
//	    "github.com/matzehuels/licensefinder/pkg/deps/java"
//	)
//
//	adapter := java.New(deps.Options{
//	    ProjectPath:   "/src/app",
//	    IgnoredGroups: deps.NewGroups("test", "provided"),
//	})
//	pkgs, err := adapter.CurrentPackages(context.Background())
//	for _, p := range pkgs {
//	    fmt.Println(p.Name, p.Version, p.LicenseNames())
//	}
//
// # Main Packages
//
// [license] - The Package and License records every adapter produces. A
// package without a declared license carries the single license "unknown".
//
// [deps] - Adapter contract, per-adapter Options, the insertion-ordered
// Groups set and the Registry that selects adapters for a directory.
//
// [deps/java] - Maven adapter. Runs license-maven-plugin, reads
// target/generated-resources/licenses.xml for every module and tells a root
// project from a nested module via project.parent.
//
// [shell] - Command execution with captured output and exit status, a
// FakeRunner for tests and a serialised working-directory switch.
//
// [config] - The .licensefinder.toml project file.
//
// [cache] - Optional file cache for reports, keyed by project path, options
// and the content of the project's manifests.
//
// [errors] - Structured errors with codes, including the CommandError raised
// when a package-management command fails.
//
// [observability] - Hooks around spawned commands and cache lookups.
//
// [buildinfo] - Version information set at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/deps/java/   # Specific package
//
// [license]: https://pkg.go.dev/github.com/matzehuels/licensefinder/pkg/license
// [deps]: https://pkg.go.dev/github.com/matzehuels/licensefinder/pkg/deps
// [deps/java]: https://pkg.go.dev/github.com/matzehuels/licensefinder/pkg/deps/java
// [shell]: https://pkg.go.dev/github.com/matzehuels/licensefinder/pkg/shell
// [config]: https://pkg.go.dev/github.com/matzehuels/licensefinder/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/licensefinder/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/licensefinder/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/licensefinder/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/licensefinder/pkg/buildinfo
package pkg
