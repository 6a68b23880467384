package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/licensefinder/pkg/cache"
	"github.com/matzehuels/licensefinder/pkg/config"
	"github.com/matzehuels/licensefinder/pkg/deps"
	"github.com/matzehuels/licensefinder/pkg/errors"
	"github.com/matzehuels/licensefinder/pkg/license"
)

// reportOpts holds the command-line flags for the report command.
type reportOpts struct {
	format        string   // table, json or csv
	ignoreGroups  []string // dependency groups to exclude, in order
	includeGroups bool     // qualify package names with their group
	cache         bool     // reuse reports from the cache
	refresh       bool     // regenerate even when a cached report exists
	interactive   bool     // browse packages in a terminal UI
	output        string   // output file (stdout if empty)
}

// adapterReport is the result of one package manager.
type adapterReport struct {
	Adapter  string
	Project  string
	Packages []license.Package
	Cached   bool
}

// reportCommand creates the report command.
func (c *CLI) reportCommand() *cobra.Command {
	var opts reportOpts

	cmd := &cobra.Command{
		Use:   "report [path]",
		Short: "List dependencies and their licenses",
		Long: `List the third-party packages of the project at path (default: the
current directory) together with the licenses they declare.

Examples:
  licensefinder report
  licensefinder report ./service --ignore-group test --ignore-group provided
  licensefinder report --include-groups --format json -o licenses.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadSettings(args)
			if err != nil {
				return err
			}
			if err := applyReportFlags(cmd, &cfg, opts); err != nil {
				return err
			}
			return c.runReport(cmd.Context(), cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatTable, "output format: table, json, csv")
	cmd.Flags().StringArrayVar(&opts.ignoreGroups, "ignore-group", nil, "dependency group (scope) to exclude; repeatable")
	cmd.Flags().BoolVar(&opts.includeGroups, "include-groups", false, "prefix package names with their group (groupId:artifactId)")
	cmd.Flags().BoolVar(&opts.cache, "cache", false, "reuse a cached report when the project is unchanged")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "regenerate the report even if it is cached")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse packages interactively")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// applyReportFlags overrides config values with explicitly set flags.
func applyReportFlags(cmd *cobra.Command, cfg *config.Config, opts reportOpts) error {
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = opts.format
	}
	if flags.Changed("ignore-group") {
		cfg.IgnoredGroups = opts.ignoreGroups
	}
	if flags.Changed("include-groups") {
		cfg.MavenIncludeGroups = opts.includeGroups
	}
	if flags.Changed("cache") {
		cfg.Cache = opts.cache
	}
	if opts.interactive && opts.output != "" {
		return errors.New(errors.ErrCodeInvalidInput, "--interactive cannot be combined with --output")
	}
	return cfg.Validate()
}

// runReport collects every active adapter's packages and writes them.
func (c *CLI) runReport(ctx context.Context, stdout io.Writer, cfg config.Config, opts reportOpts) error {
	adapterOpts := c.adapterOptions(cfg)
	adapters, err := c.activeAdapters(adapterOpts)
	if err != nil {
		return err
	}

	reports := c.newReports(cfg.Cache, cfg.CacheTTL.Duration)
	defer reports.Cache.Close()

	results := make([]adapterReport, 0, len(adapters))
	for _, a := range adapters {
		r, err := c.collect(ctx, a, adapterOpts, reports, opts.refresh)
		if err != nil {
			return err
		}
		results = append(results, r)
	}

	if opts.interactive {
		return browsePackages(results)
	}

	w := stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", opts.output)
		}
		defer f.Close()
		w = f
	}
	if err := writeReport(w, results, cfg.Format); err != nil {
		return err
	}

	for _, r := range results {
		printSummary(len(r.Packages), countUnknown(r.Packages), r.Cached)
	}
	if opts.output != "" {
		printSuccess("Wrote %s report", cfg.Format)
		printFile(opts.output)
	}
	return nil
}

// collect returns one adapter's packages, from the cache when allowed.
func (c *CLI) collect(ctx context.Context, a deps.Adapter, opts deps.Options, reports *cache.Reports, refresh bool) (adapterReport, error) {
	logger := loggerFromContext(ctx)
	r := adapterReport{Adapter: a.Name(), Project: projectName(a, opts.ProjectPath)}

	if !a.Installed() {
		return r, errors.New(errors.ErrCodeNotFound, "%s is not installed: %s not found", a.Name(), a.PackageManagementCommand())
	}

	key, err := cache.ReportKey(a.Name(), opts.ProjectPath, cache.ReportKeyOpts{
		IgnoredGroups: opts.IgnoredGroups.Values(),
		IncludeGroups: opts.IncludeGroups,
		Manifests:     manifests(a),
	})
	if err != nil {
		logger.Warn("report will not be cached", "err", err)
		key = ""
	}

	if key != "" && !refresh {
		pkgs, hit, err := reports.Load(ctx, key)
		if err != nil {
			logger.Warn("cache read failed", "err", err)
		}
		if hit {
			logger.Debug("using cached report", "adapter", a.Name())
			r.Packages, r.Cached = pkgs, true
			return r, nil
		}
	}

	prog := newProgress(logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Running %s...", a.PackageManagementCommand()))
	spinner.Start()
	pkgs, err := a.CurrentPackages(ctx)
	spinner.Stop()
	if err != nil {
		return r, err
	}
	pkgs = uniquePackages(pkgs)
	prog.done(fmt.Sprintf("Found %d %s packages", len(pkgs), a.Name()))
	r.Packages = pkgs

	if key != "" {
		if err := reports.Store(ctx, key, pkgs); err != nil {
			logger.Warn("cache write failed", "err", err)
		}
	}
	return r, nil
}

// uniquePackages drops repeated packages, keeping the first occurrence.
// Modules of one project report shared dependencies once each.
func uniquePackages(pkgs []license.Package) []license.Package {
	seen := make(map[string]struct{}, len(pkgs))
	out := make([]license.Package, 0, len(pkgs))
	for _, p := range pkgs {
		id := p.Name + "\x00" + p.Version + "\x00" + strings.Join(p.LicenseNames(), "\x00")
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, p)
	}
	return out
}

func countUnknown(pkgs []license.Package) int {
	n := 0
	for _, p := range pkgs {
		if p.HasUnknownLicense() {
			n++
		}
	}
	return n
}
