package shell

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// Call records one FakeRunner invocation.
type Call struct {
	Line string // Command line as passed to Run
	Dir  string // Working directory at the time of the call
}

// FakeRunner is a Runner that returns canned results instead of spawning
// processes. Lines without a registered result fail with an error.
type FakeRunner struct {
	mu      sync.Mutex
	results map[string]Result
	errs    map[string]error
	calls   []Call
	hook    func(line string)
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		results: make(map[string]Result),
		errs:    make(map[string]error),
	}
}

// On registers the result returned for line.
func (f *FakeRunner) On(line string, res Result) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[line] = res
	return f
}

// OnError registers an error returned for line, as if the process could
// not be started.
func (f *FakeRunner) OnError(line string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[line] = err
	return f
}

// OnRun registers fn to be called on every invocation, before the result is
// returned. Tests use it to simulate side effects such as written reports.
func (f *FakeRunner) OnRun(fn func(line string)) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hook = fn
	return f
}

// Run implements Runner.
func (f *FakeRunner) Run(ctx context.Context, line string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	dir, _ := os.Getwd()

	f.mu.Lock()
	f.calls = append(f.calls, Call{Line: line, Dir: dir})
	res, ok := f.results[line]
	err, failed := f.errs[line]
	hook := f.hook
	f.mu.Unlock()

	if hook != nil {
		hook(line)
	}
	if failed {
		return Result{ExitCode: -1}, err
	}
	if !ok {
		return Result{ExitCode: -1}, fmt.Errorf("fake runner: unexpected command %q", line)
	}
	return res, nil
}

// Calls returns a copy of all recorded invocations in order.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// Ensure FakeRunner implements Runner.
var _ Runner = (*FakeRunner)(nil)
