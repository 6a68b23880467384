// Package cli implements the licensefinder command-line interface.
//
// The commands detect which package ecosystems a project uses, run each
// ecosystem's tooling to list third-party packages with their declared
// licenses, and print the result as a table, JSON or CSV.
//
// # Commands
//
//   - report: List dependencies and their licenses
//   - root: Tell whether a path is a project root or a nested module
//   - command: Print the package-management command that would run
//   - cache: Manage the report cache
//   - completion: Generate shell completion scripts
//   - version: Print build information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs every external command that is spawned.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/licensefinder/pkg/buildinfo"
	"github.com/matzehuels/licensefinder/pkg/cache"
	"github.com/matzehuels/licensefinder/pkg/config"
	"github.com/matzehuels/licensefinder/pkg/deps"
	"github.com/matzehuels/licensefinder/pkg/deps/java"
	"github.com/matzehuels/licensefinder/pkg/observability"
	"github.com/matzehuels/licensefinder/pkg/shell"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "licensefinder"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger   *log.Logger
	Registry *deps.Registry
	Runner   shell.Runner

	configPath string
}

// New creates a new CLI instance with a default logger and every supported
// package manager registered.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		Registry: deps.NewRegistry(java.Factory),
		Runner:   shell.NewExecRunner(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "licensefinder lists the licenses of a project's dependencies",
		Long:         `licensefinder detects the package managers a project uses, asks each of them for the project's third-party packages and reports the licenses those packages declare.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			observability.SetCommandHooks(newCommandLogger(c.Logger))
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: <path>/"+config.FileName+")")

	root.AddCommand(c.reportCommand())
	root.AddCommand(c.rootCommand())
	root.AddCommand(c.commandCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// =============================================================================
// Cache Factory
// =============================================================================

// newReports opens the report cache. Caching turns off with a warning when
// the cache directory cannot be determined or created.
func (c *CLI) newReports(enabled bool, ttl time.Duration) *cache.Reports {
	if !enabled {
		return cache.NewReports(cache.NewNullCache(), 0)
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("report cache disabled", "err", err)
		return cache.NewReports(cache.NewNullCache(), 0)
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Warn("report cache disabled", "err", err)
		return cache.NewReports(cache.NewNullCache(), 0)
	}
	return cache.NewReports(fc, ttl)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/licensefinder/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
