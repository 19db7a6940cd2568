package signalcli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"

	"sigreg/internal/domain"
)

var (
	// ErrNoCommand is returned when ExecOptions carries no argv.
	ErrNoCommand = errors.New("command is required")

	// ErrTimeout is returned when the process is killed by its timeout.
	ErrTimeout = errors.New("command timed out")

	// ErrExecFailed is returned when the process could not be started or waited on.
	ErrExecFailed = errors.New("command execution failed")
)

// waitDelay bounds how long Run waits for output pipes after the process is killed.
const waitDelay = 2 * time.Second

// ExecOptions configures one invocation.
type ExecOptions struct {
	Command []string // argv, Command[0] is the binary
	Env     []string // extra KEY=VALUE pairs appended to the current environment
	Timeout time.Duration
	Stdin   io.Reader
}

// Runner executes a command and captures its output.
type Runner interface {
	Run(ctx context.Context, opts ExecOptions) (domain.ExecResult, error)
}

// ExecRunner runs commands as local subprocesses.
type ExecRunner struct{}

// Run executes opts.Command. A non-zero exit is reported in ExitCode with a
// nil error; the error is set only when the process did not run to completion.
func (ExecRunner) Run(ctx context.Context, opts ExecOptions) (domain.ExecResult, error) {
	if len(opts.Command) == 0 {
		return domain.ExecResult{}, ErrNoCommand
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, opts.Command[0], opts.Command[1:]...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Stdin = opts.Stdin
	cmd.WaitDelay = waitDelay
	if len(opts.Env) > 0 {
		cmd.Env = append(cmd.Environ(), opts.Env...)
	}

	start := time.Now()
	err := cmd.Run()
	end := time.Now()

	res := domain.ExecResult{
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		StartTime: start,
		EndTime:   end,
		Duration:  end.Sub(start),
	}
	if err == nil {
		return res, nil
	}

	line := strings.Join(opts.Command, " ")
	if ctxErr := ctx.Err(); ctxErr != nil {
		res.ExitCode = -1
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return res, fmt.Errorf("%w after %s: %s", ErrTimeout, opts.Timeout, line)
		}
		return res, fmt.Errorf("%s: %w", line, ctxErr)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	res.ExitCode = -1
	return res, fmt.Errorf("%w: %s: %v", ErrExecFailed, line, err)
}

// Compile-time assertion that ExecRunner implements Runner.
var _ Runner = ExecRunner{}
