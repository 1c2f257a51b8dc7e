// Where: internal/forge/runner.go
// What: Subprocess execution for the forge binary.
// Why: Provide a minimal, testable interface around os/exec.
package forge

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Result carries the captured output of a finished subprocess.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Failed reports whether the subprocess exited non-zero.
func (r Result) Failed() bool {
	return r.ExitCode != 0
}

// Runner defines the interface for executing external commands with an
// explicit environment. Output is captured, not streamed.
type Runner interface {
	Run(ctx context.Context, dir string, env []string, name string, args ...string) (Result, error)
}

// ExecRunner implements Runner using os/exec. The call blocks until the
// child exits; no timeout is applied beyond the context.
type ExecRunner struct{}

// Run executes the command with stdout and stderr captured separately.
// A non-zero exit is reported through Result.ExitCode, not as an error;
// an error means the command could not be run at all.
func (ExecRunner) Run(ctx context.Context, dir string, env []string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}
