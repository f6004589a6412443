package manager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const waitDelay = 2 * time.Second

// Result is the outcome of one manager invocation.
type Result struct {
	ExitStatus int
	Stdout     string
	Stderr     string
}

// Runner executes the manager CLI with the given arguments.
// A non-zero exit is reported through Result, not as an error; errors mean
// the process could not be run to completion.
type Runner interface {
	Run(ctx context.Context, args ...string) (Result, error)
}

// ExecRunner runs a local executable.
type ExecRunner struct {
	Binary string
}

// NewExecRunner creates a runner for the given binary.
func NewExecRunner(binary string) *ExecRunner {
	return &ExecRunner{Binary: binary}
}

// Run executes the binary and waits for it to exit or for ctx to end.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Children that inherit the pipes must not hold Wait past cancellation.
	cmd.WaitDelay = waitDelay

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return res, fmt.Errorf("%s %s: %w", r.Binary, strings.Join(args, " "), ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitStatus = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("failed to run %s: %w", r.Binary, err)
	}
	return res, nil
}
