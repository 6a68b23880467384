package java

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensefinder/pkg/deps"
	"github.com/matzehuels/licensefinder/pkg/errors"
	"github.com/matzehuels/licensefinder/pkg/shell"
)

const (
	globalCommand      = "mvn"
	wrapperScript      = "mvnw"
	reportGoal         = "org.codehaus.mojo:license-maven-plugin:download-licenses"
	excludedScopesFlag = "-Dlicense.excludedScopes"
)

// reportFile is where license-maven-plugin writes each module's summary.
var reportFile = filepath.Join("target", "generated-resources", "licenses.xml")

// ResolveCommand returns the Maven command for the project at projectPath:
// the project's wrapper script if present, otherwise the global mvn.
func ResolveCommand(projectPath string) string {
	wrapper := wrapperScript
	if runtime.GOOS == "windows" {
		wrapper += ".cmd"
	}
	if path, ok := deps.DetectManifest(projectPath, wrapper); ok {
		return path
	}
	return globalCommand
}

// ReportCommand builds the report generation command line for tool.
// Excluded groups are appended as a single flag in insertion order, quoted
// for the shell when a name contains shell metacharacters.
func ReportCommand(tool string, excluded *deps.Groups) string {
	line := quoteArg(tool) + " " + reportGoal
	if excluded.Len() > 0 {
		line += " " + quoteArg(excludedScopesFlag+"="+strings.Join(excluded.Values(), ","))
	}
	return line
}

// Documents locates the license summaries written by the plugin.
type Documents interface {
	// Documents returns the raw contents of every summary under dir.
	Documents(dir string) ([]string, error)
}

// FileDocuments reads target/generated-resources/licenses.xml from the
// project and each of its modules.
type FileDocuments struct{}

// Documents returns the root module's summary first, followed by the
// modules' summaries in lexical path order.
func (FileDocuments) Documents(dir string) ([]string, error) {
	paths, err := reportPaths(dir)
	if err != nil {
		return nil, err
	}
	docs := make([]string, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read license report %s", p)
		}
		docs = append(docs, string(data))
	}
	return docs, nil
}

func reportPaths(dir string) ([]string, error) {
	root := filepath.Join(dir, reportFile)
	var paths []string
	if isFile(root) {
		paths = append(paths, root)
	}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == dir {
			return nil
		}
		name := d.Name()
		if name == "target" {
			if report := filepath.Join(filepath.Dir(path), reportFile); report != root && isFile(report) {
				paths = append(paths, report)
			}
			return filepath.SkipDir
		}
		if skipDir(name) {
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scan %s for license reports", dir)
	}
	return paths, nil
}

// skipDir reports whether a directory never holds a Maven module. Build
// output (target) is skipped as well.
func skipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules" || name == "target"
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReportSource generates license summaries by running Maven.
type ReportSource struct {
	Runner    shell.Runner
	Documents Documents
	Logger    *log.Logger
}

// Fetch runs the report goal in dir, excluding the given scopes, and
// returns the summaries it produced. An unsuccessful Maven run fails with
// *errors.CommandError.
func (s *ReportSource) Fetch(ctx context.Context, dir string, excluded *deps.Groups) ([]string, error) {
	line := ReportCommand(executable(ResolveCommand(dir)), excluded)
	s.Logger.Debug("generating license report", "command", line, "dir", dir)

	var docs []string
	err := shell.InDir(dir, func() error {
		res, err := s.Runner.Run(ctx, line)
		if err != nil {
			return err
		}
		if !res.Success() {
			return &errors.CommandError{Command: line, Dir: dir, Stderr: failureDetail(res)}
		}
		docs, err = s.Documents.Documents(".")
		return err
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		s.Logger.Warn("no license reports found", "dir", dir, "file", reportFile)
	}
	return docs, nil
}

// executable makes a wrapper path usable after the working directory has
// changed into the project.
func executable(tool string) string {
	if tool == globalCommand || filepath.IsAbs(tool) {
		return tool
	}
	if abs, err := filepath.Abs(tool); err == nil {
		return abs
	}
	return tool
}

// failureDetail picks the diagnostic text of a failed run. Maven writes
// its errors to stdout when run quietly.
func failureDetail(res shell.Result) string {
	if s := strings.TrimSpace(res.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(res.Stdout)
}

// quoteArg quotes s for the platform shell when it contains characters the
// shell would interpret.
func quoteArg(s string) string {
	if runtime.GOOS == "windows" {
		if strings.ContainsAny(s, " \t&()^") {
			return `"` + s + `"`
		}
		return s
	}
	if s == "" || strings.ContainsAny(s, " \t\n'\"\\$`&;|<>()*?![]{}~#") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}
