package deps

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensefinder/pkg/license"
	"github.com/matzehuels/licensefinder/pkg/shell"
)

// Options configures an adapter. It is read-only once the adapter is built.
type Options struct {
	ProjectPath   string       // Directory of the project to inspect (required)
	IgnoredGroups *Groups      // Dependency groups (scopes) to exclude
	IncludeGroups bool         // Report group-qualified names (e.g., "groupId:artifactId")
	Runner        shell.Runner // Command runner (default: shell.ExecRunner)
	Logger        *log.Logger  // Debug output (default: discarded)
}

// WithDefaults returns a copy of Options with nil values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.IgnoredGroups == nil {
		opts.IgnoredGroups = NewGroups()
	}
	if opts.Runner == nil {
		opts.Runner = shell.NewExecRunner()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts
}

// Adapter discovers the third-party packages of one package ecosystem.
type Adapter interface {
	// Name returns the adapter identifier (e.g., "maven").
	Name() string
	// CurrentPackages invokes the ecosystem tooling and returns the declared
	// dependencies in report order. Every call re-runs the tool.
	CurrentPackages(ctx context.Context) ([]license.Package, error)
	// IsProjectRoot reports whether the project path is the top-level
	// project rather than a nested module.
	IsProjectRoot(ctx context.Context) (bool, error)
	// PackageManagementCommand returns the command that will be invoked,
	// without invoking anything.
	PackageManagementCommand() string
	// Active reports whether the project path contains this ecosystem's
	// project files.
	Active() bool
	// Installed reports whether the package management command is available.
	Installed() bool
}

// ProjectNamer is implemented by adapters that can name the project from
// its manifest without running the ecosystem tooling.
type ProjectNamer interface {
	ProjectName() (string, error)
}

// ManifestLister is implemented by adapters that can name the project files
// whose content determines their report, relative to the project path.
type ManifestLister interface {
	Manifests() []string
}
