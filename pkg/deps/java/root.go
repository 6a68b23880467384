package java

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/licensefinder/pkg/errors"
	"github.com/matzehuels/licensefinder/pkg/shell"
)

const parentQuery = "help:evaluate -Dexpression=project.parent -q -DforceStdout"

// ParentCommand builds the command line that prints the module's parent
// project, or nothing if it has none.
func ParentCommand(tool string) string {
	return quoteArg(tool) + " " + parentQuery
}

// RootDetector decides whether a Maven module is the top-level project.
type RootDetector struct {
	Runner shell.Runner
	Logger *log.Logger
}

// IsRoot reports whether the module in dir declares no parent project.
// A failed query is returned as *errors.CommandError.
func (r *RootDetector) IsRoot(ctx context.Context, dir string) (bool, error) {
	line := ParentCommand(executable(ResolveCommand(dir)))
	r.Logger.Debug("querying parent project", "command", line, "dir", dir)

	var parent string
	err := shell.InDir(dir, func() error {
		res, err := r.Runner.Run(ctx, line)
		if err != nil {
			return err
		}
		if !res.Success() {
			return &errors.CommandError{Command: line, Dir: dir, Stderr: failureDetail(res)}
		}
		parent = strings.TrimSpace(res.Stdout)
		return nil
	})
	if err != nil {
		return false, err
	}
	return parent == "", nil
}
