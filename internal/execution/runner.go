package execution

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// RunOptions adjusts how a command is executed.
type RunOptions struct {
	Dir string   // Working directory; empty means the caller's
	Env []string // KEY=VALUE pairs appended to the inherited environment
}

// CommandRunner executes a command synchronously and reports its exit code.
// Stdout and stderr are inherited from the harness; there is no streaming
// contract beyond that and no retry.
type CommandRunner interface {
	Run(argv []string, opts RunOptions) (int, error)
}

// ExecRunner runs commands via os/exec.
type ExecRunner struct{}

// NewExecRunner creates a new ExecRunner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes argv and blocks until it exits. A non-zero exit code is not an
// error: it is returned for the caller to interpret. An error means the
// command could not be run at all.
func (r *ExecRunner) Run(argv []string, opts RunOptions) (int, error) {
	if len(argv) == 0 {
		return -1, fmt.Errorf("empty command")
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = opts.Dir
	cmd.Env = append(os.Environ(), opts.Env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("running %s: %w", argv[0], err)
	}
	return 0, nil
}
