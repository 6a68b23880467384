// Package deps defines the contract shared by all package manager adapters.
//
// # Overview
//
// licensefinder reports the third-party dependencies a project declares,
// together with their versions and licenses. Each package ecosystem is
// handled by an [Adapter] that invokes the ecosystem's own tooling, parses
// its machine-readable output and normalises it into [license.Package]
// records.
//
// # Adapters
//
// Every adapter implements the same methods:
//
//   - CurrentPackages: run the tooling and return the declared dependencies
//   - IsProjectRoot: whether the project path is the top-level module
//   - PackageManagementCommand: the command that will be run
//   - Active / Installed: whether the project and the tool are present
//
// Adapters are configured once through [Options]:
//
//	adapter := java.New(deps.Options{
//	    ProjectPath:   "/src/app",
//	    IgnoredGroups: deps.NewGroups("test", "provided"),
//	    IncludeGroups: true,
//	})
//	pkgs, err := adapter.CurrentPackages(ctx)
//
// # Registry
//
// A [Registry] holds adapter factories in a fixed order and selects the
// adapters applicable to a directory:
//
//	reg := deps.NewRegistry(java.Factory)
//	for _, a := range reg.Active(opts) {
//	    pkgs, err := a.CurrentPackages(ctx)
//	    ...
//	}
//
// # Groups
//
// [Groups] is an insertion-ordered set of dependency group names (Maven
// scopes, Bundler groups, ...). Adapters pass the groups to their tooling in
// insertion order.
//
// # Supported Ecosystems
//
//   - [java]: Maven, via license-maven-plugin
//
// [license.Package]: github.com/matzehuels/licensefinder/pkg/license.Package
// [java]: github.com/matzehuels/licensefinder/pkg/deps/java
package deps
