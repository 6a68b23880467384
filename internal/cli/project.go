package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/licensefinder/pkg/config"
	"github.com/matzehuels/licensefinder/pkg/deps"
	"github.com/matzehuels/licensefinder/pkg/errors"
)

// loadSettings resolves the config for a command whose optional argument
// is a project path. The config file is --config, or .licensefinder.toml
// in the project. A path argument overrides project_path.
func (c *CLI) loadSettings(args []string) (config.Config, error) {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	path := c.configPath
	if path == "" {
		path = config.Find(dir)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if path != "" {
		c.Logger.Debug("loaded config", "file", path)
	}

	if len(args) > 0 {
		cfg.ProjectPath = args[0]
	}
	if err := errors.ValidateProjectPath(cfg.ProjectPath); err != nil {
		return cfg, err
	}
	info, err := os.Stat(cfg.ProjectPath)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidPath, err, "project path %s", cfg.ProjectPath)
	}
	if !info.IsDir() {
		return cfg, errors.New(errors.ErrCodeInvalidPath, "project path %s is not a directory", cfg.ProjectPath)
	}
	return cfg, nil
}

// adapterOptions builds the adapter options for cfg.
func (c *CLI) adapterOptions(cfg config.Config) deps.Options {
	return deps.Options{
		ProjectPath:   cfg.ProjectPath,
		IgnoredGroups: deps.NewGroups(cfg.IgnoredGroups...),
		IncludeGroups: cfg.MavenIncludeGroups,
		Runner:        c.Runner,
		Logger:        c.Logger,
	}
}

// activeAdapters returns the adapters whose project files are present.
func (c *CLI) activeAdapters(opts deps.Options) ([]deps.Adapter, error) {
	active := c.Registry.Active(opts)
	if len(active) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound,
			"no supported project found in %s (supported: %s)", opts.ProjectPath, strings.Join(c.Registry.Names(), ", "))
	}
	for _, a := range active {
		c.Logger.Debug("detected package manager", "name", a.Name(), "path", opts.ProjectPath)
	}
	return active, nil
}

// projectName names the project for display, preferring the adapter's own
// view of it over the directory name.
func projectName(a deps.Adapter, projectPath string) string {
	if namer, ok := a.(deps.ProjectNamer); ok {
		if name, err := namer.ProjectName(); err == nil && name != "" {
			return name
		}
	}
	if abs, err := filepath.Abs(projectPath); err == nil {
		return filepath.Base(abs)
	}
	return projectPath
}

// manifests lists the files whose content keys an adapter's cached report.
func manifests(a deps.Adapter) []string {
	if l, ok := a.(deps.ManifestLister); ok {
		return l.Manifests()
	}
	return nil
}
