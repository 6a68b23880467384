package shell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/matzehuels/licensefinder/pkg/observability"
)

// Result is the outcome of a single command invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Success returns true if the command exited with code 0.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes command lines.
type Runner interface {
	// Run executes line in the current working directory and blocks until it
	// exits. A non-zero exit is reported through Result, not as an error.
	Run(ctx context.Context, line string) (Result, error)
}

// ExecRunner executes command lines through the platform shell.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes line via "sh -c" (or "cmd /C" on Windows).
func (r *ExecRunner) Run(ctx context.Context, line string) (Result, error) {
	dir, _ := os.Getwd()
	hooks := observability.Command()
	hooks.OnCommandStart(ctx, dir, line)
	start := time.Now()

	name, args := shellCommand(line)
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && ctx.Err() == nil {
			result.ExitCode = exitErr.ExitCode()
			hooks.OnCommandComplete(ctx, dir, line, result.ExitCode, time.Since(start), nil)
			return result, nil
		}
		if ctx.Err() != nil {
			err = ctx.Err()
		}
		result.ExitCode = -1
		hooks.OnCommandComplete(ctx, dir, line, result.ExitCode, time.Since(start), err)
		return result, err
	}

	hooks.OnCommandComplete(ctx, dir, line, 0, time.Since(start), nil)
	return result, nil
}

func shellCommand(line string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", line}
	}
	return "sh", []string{"-c", line}
}

// Ensure ExecRunner implements Runner.
var _ Runner = (*ExecRunner)(nil)
