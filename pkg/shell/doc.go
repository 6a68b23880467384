// Package shell runs external package-manager commands.
//
// # Overview
//
// Adapters never spawn processes directly. They go through a [Runner], which
// takes a complete command line, executes it in the current working directory
// and returns the captured output together with the exit status:
//
//	res, err := runner.Run(ctx, "mvn help:evaluate -Dexpression=project.parent -q -DforceStdout")
//	if err != nil {
//	    // the process could not be started
//	}
//	if !res.Success() {
//	    // the tool ran and failed; inspect res.Stderr
//	}
//
// A non-zero exit is never an error from the runner's point of view: callers
// decide what failure means for them.
//
// # Working Directory
//
// Build tools resolve their project from the working directory. [InDir]
// switches the process-wide working directory for the duration of a callback
// and restores it on every exit path:
//
//	err := shell.InDir(projectPath, func() error {
//	    res, err := runner.Run(ctx, line)
//	    ...
//	})
//
// Calls to InDir are serialised, so two adapters never observe each other's
// directory.
//
// # Testing
//
// [FakeRunner] returns canned results keyed by command line and records every
// invocation, replacing real subprocesses in adapter tests.
package shell
