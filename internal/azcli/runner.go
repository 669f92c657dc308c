// Package azcli wraps the Azure CLI subprocess that rgsweep orchestrates.
//
// Every Azure interaction goes through `az` as an opaque external command:
// listing subscriptions, listing resource groups, and requesting deletions.
// The package exposes a never-failing executor (Runner) and a typed client
// (Client) that parses the CLI's JSON output into explicit records.
package azcli

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
)

// Result holds the outcome of a single az invocation.
// A Result is always produced, even when the process could not be launched.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// OK reports whether the invocation exited with status zero.
func (r Result) OK() bool { return r.ExitCode == 0 }

// Runner executes az commands. Implementations never return an error:
// a launch failure is folded into a synthetic non-zero exit code with
// the error text as stderr, so callers only branch on Result.ExitCode.
// No timeout is enforced; az may block on network calls indefinitely.
type Runner interface {
	Run(ctx context.Context, args ...string) Result
}

type execRunner struct {
	azPath string
}

// NewRunner returns a Runner backed by the az executable found on this
// system (see LookupAz for the resolution order).
func NewRunner() Runner {
	return &execRunner{azPath: LookupAz()}
}

// NewRunnerWithPath returns a Runner that invokes the given executable.
// Used in tests to substitute the az binary.
func NewRunnerWithPath(path string) Runner {
	if path == "" {
		return NewRunner()
	}
	return &execRunner{azPath: path}
}

func (e *execRunner) Run(ctx context.Context, args ...string) Result {
	cmd := exec.CommandContext(ctx, e.azPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err == nil {
		return res
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res
	}

	// The process never started (executable missing, permission denied, ...).
	// Synthesize a failure so callers see a uniform shape.
	res.ExitCode = 1
	if strings.TrimSpace(res.Stderr) == "" {
		res.Stderr = err.Error()
	}
	return res
}
