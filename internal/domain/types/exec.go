package types

import (
	"strings"
	"time"
)

// ExecResult contains the captured outcome of one signal-cli invocation.
type ExecResult struct {
	ExitCode  int
	Stdout    string
	Stderr    string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Success reports whether the process exited with status 0.
func (r ExecResult) Success() bool { return r.ExitCode == 0 }

// RateLimitPolicy decides whether a failed invocation was rate limited.
//
// Phrases are matched case-insensitively against stderr. ExitCode, when
// non-zero, also classifies a process exiting with that status.
type RateLimitPolicy struct {
	Phrases  []string
	ExitCode int
}

// Matches reports whether res looks like a rate-limit rejection.
func (p RateLimitPolicy) Matches(res ExecResult) bool {
	if res.Success() {
		return false
	}
	if p.ExitCode != 0 && res.ExitCode == p.ExitCode {
		return true
	}
	stderr := strings.ToLower(res.Stderr)
	for _, phrase := range p.Phrases {
		phrase = strings.ToLower(strings.TrimSpace(phrase))
		if phrase != "" && strings.Contains(stderr, phrase) {
			return true
		}
	}
	return false
}
