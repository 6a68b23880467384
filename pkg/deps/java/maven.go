package java

import (
	"context"
	"os/exec"

	"github.com/matzehuels/licensefinder/pkg/deps"
	"github.com/matzehuels/licensefinder/pkg/license"
)

const adapterName = "maven"

// Factory registers the Maven adapter with a deps.Registry.
var Factory = deps.Factory{
	Name:    adapterName,
	Aliases: []string{"mvn", "java"},
	New:     func(opts deps.Options) deps.Adapter { return New(opts) },
}

// Maven discovers dependencies and licenses of a Maven project.
type Maven struct {
	opts   deps.Options
	source *ReportSource
	root   *RootDetector
}

// New creates a Maven adapter for opts.ProjectPath.
func New(opts deps.Options) *Maven {
	opts = opts.WithDefaults()
	return &Maven{
		opts: opts,
		source: &ReportSource{
			Runner:    opts.Runner,
			Documents: FileDocuments{},
			Logger:    opts.Logger,
		},
		root: &RootDetector{Runner: opts.Runner, Logger: opts.Logger},
	}
}

// WithDocuments replaces how generated summaries are located. It returns m.
func (m *Maven) WithDocuments(d Documents) *Maven {
	m.source.Documents = d
	return m
}

// Name returns "maven".
func (m *Maven) Name() string { return adapterName }

// CurrentPackages runs license-maven-plugin and returns the reported
// dependencies in report order.
func (m *Maven) CurrentPackages(ctx context.Context) ([]license.Package, error) {
	docs, err := m.source.Fetch(ctx, m.opts.ProjectPath, m.opts.IgnoredGroups)
	if err != nil {
		return nil, err
	}
	pkgs, err := ParseSummary(docs, m.opts.IncludeGroups)
	if err != nil {
		return nil, err
	}
	m.opts.Logger.Debug("parsed license summaries", "documents", len(docs), "packages", len(pkgs))
	return pkgs, nil
}

// IsProjectRoot reports whether the project path is the top-level Maven
// project.
func (m *Maven) IsProjectRoot(ctx context.Context) (bool, error) {
	return m.root.IsRoot(ctx, m.opts.ProjectPath)
}

// PackageManagementCommand returns the wrapper path or "mvn".
func (m *Maven) PackageManagementCommand() string {
	return ResolveCommand(m.opts.ProjectPath)
}

// Active reports whether the project path contains a pom.xml.
func (m *Maven) Active() bool {
	_, ok := deps.DetectManifest(m.opts.ProjectPath, pomFile)
	return ok
}

// Installed reports whether a wrapper is present or mvn is on PATH.
func (m *Maven) Installed() bool {
	cmd := m.PackageManagementCommand()
	if cmd != globalCommand {
		return true
	}
	_, err := exec.LookPath(cmd)
	return err == nil
}

// ProjectName returns the project's name from its pom.xml.
func (m *Maven) ProjectName() (string, error) {
	pom, err := ReadPOM(m.opts.ProjectPath)
	if err != nil {
		return "", err
	}
	return pom.DisplayName(), nil
}

// Manifests returns the pom.xml of the project and of every module below
// it, relative to the project path.
func (m *Maven) Manifests() []string {
	return projectPOMs(m.opts.ProjectPath)
}

var (
	_ deps.Adapter        = (*Maven)(nil)
	_ deps.ProjectNamer   = (*Maven)(nil)
	_ deps.ManifestLister = (*Maven)(nil)
)
