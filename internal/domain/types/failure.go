package types

import (
	"errors"
	"fmt"
	"strings"
)

// FailureKind tags why a registration step failed.
type FailureKind int

const (
	// FailureMissingInput is a required value (phone, captcha, code) that was not supplied.
	FailureMissingInput FailureKind = iota + 1
	// FailureTool is a signal-cli invocation that failed or exited non-zero.
	FailureTool
	// FailureRateLimited is a signal-cli invocation rejected by server-side rate limiting.
	FailureRateLimited
)

// String returns a short description of the kind.
func (k FailureKind) String() string {
	switch k {
	case FailureMissingInput:
		return "missing input"
	case FailureTool:
		return "command failed"
	case FailureRateLimited:
		return "rate limited"
	default:
		return "unknown failure"
	}
}

// Sentinels matched by errors.Is against a *Failure of the corresponding kind.
var (
	ErrMissingInput = errors.New("missing required input")
	ErrToolFailed   = errors.New("signal-cli command failed")
	ErrRateLimited  = errors.New("rate limited")
)

// Failure is the tagged result of a failed step.
type Failure struct {
	Kind     FailureKind
	Op       string // step that failed, e.g. "register"
	ExitCode int    // process exit code, 0 when the process never ran
	Stderr   string // captured error output of the process
	Err      error  // underlying cause, if any
}

// Error implements error.
func (f *Failure) Error() string {
	var b strings.Builder
	b.WriteString(f.Op)
	b.WriteString(": ")
	b.WriteString(f.Kind.String())
	if f.ExitCode != 0 {
		fmt.Fprintf(&b, " (exit %d)", f.ExitCode)
	}
	if s := strings.TrimSpace(f.Stderr); s != "" {
		b.WriteString(": ")
		b.WriteString(s)
	}
	if f.Err != nil {
		b.WriteString(": ")
		b.WriteString(f.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (f *Failure) Unwrap() error { return f.Err }

// Is matches the kind sentinels.
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrMissingInput:
		return f.Kind == FailureMissingInput
	case ErrToolFailed:
		return f.Kind == FailureTool
	case ErrRateLimited:
		return f.Kind == FailureRateLimited
	}
	return false
}

// KindOf returns the kind of the first *Failure in err's chain.
func KindOf(err error) (FailureKind, bool) {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind, true
	}
	return 0, false
}
