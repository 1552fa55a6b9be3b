package executor

import (
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner is the process-execution primitive the session delegates to.
type Runner interface {
	Run(argv []string) Result
}

// Result represents command execution result.
type Result struct {
	ExitCode int
	Err      error
}

// Executor runs menu commands as foreground children. The child inherits
// the session's stdio and the session blocks until it finishes; an
// interrupt while it runs is the child's concern, not ours.
type Executor struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates an executor attached to the process stdio.
func New() *Executor {
	return &Executor{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
}

// NewWithIO creates an executor with the given stdio (for testing).
func NewWithIO(stdin io.Reader, stdout, stderr io.Writer) *Executor {
	return &Executor{stdin: stdin, stdout: stdout, stderr: stderr}
}

// Run invokes argv[0] directly with the remaining elements as its argument
// vector. No shell is involved, so nothing in argv is ever interpreted.
func (e *Executor) Run(argv []string) Result {
	if len(argv) == 0 {
		return Result{ExitCode: 1, Err: errors.New("empty command")}
	}

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{ExitCode: exitErr.ExitCode()}
		}
		return Result{ExitCode: 1, Err: err}
	}
	return Result{}
}
