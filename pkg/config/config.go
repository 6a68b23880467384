// Package config loads licensefinder settings from .licensefinder.toml.
//
// Every setting has a default, so a project without a config file behaves
// exactly as if an empty file were present. Command-line flags override
// values loaded here.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/licensefinder/pkg/errors"
)

// FileName is the name of the config file looked up in a project.
const FileName = ".licensefinder.toml"

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatTable, FormatJSON, FormatCSV}

// DefaultCacheTTL is how long cached reports stay valid.
const DefaultCacheTTL = 24 * time.Hour

// Config holds user settings.
type Config struct {
	ProjectPath        string   `toml:"project_path"`
	IgnoredGroups      []string `toml:"ignored_groups"`
	MavenIncludeGroups bool     `toml:"maven_include_groups"`
	Format             string   `toml:"format"`
	Cache              bool     `toml:"cache"`
	CacheTTL           Duration `toml:"cache_ttl"`
}

// Duration is a time.Duration written as a Go duration string ("90m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		ProjectPath: ".",
		Format:      FormatTable,
		CacheTTL:    Duration{DefaultCacheTTL},
	}
}

// Find returns the config file in dir, or "" if there is none.
func Find(dir string) string {
	path := filepath.Join(dir, FileName)
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path
	}
	return ""
}

// Load reads the config file at path on top of the defaults. An empty path
// returns the defaults. A relative project_path is resolved against the
// file's directory. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("project_path") && strings.TrimSpace(cfg.ProjectPath) != "" && !filepath.IsAbs(cfg.ProjectPath) {
		cfg.ProjectPath = filepath.Join(filepath.Dir(path), cfg.ProjectPath)
	}
	return cfg, cfg.Validate()
}

// Validate checks that every setting is usable.
func (c Config) Validate() error {
	if err := errors.ValidateProjectPath(c.ProjectPath); err != nil {
		return err
	}
	for _, g := range c.IgnoredGroups {
		if err := errors.ValidateGroupName(g); err != nil {
			return err
		}
	}
	if !slices.Contains(Formats, c.Format) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown format %q (want one of %s)", c.Format, strings.Join(Formats, ", "))
	}
	if c.CacheTTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache_ttl must not be negative")
	}
	return nil
}
