// Package signalcli runs the external signal-cli tool as a subprocess.
//
// Every invocation is a single opaque call with a bounded timeout whose
// stdout, stderr and exit code are captured in a domain.ExecResult. The
// package does not interpret the output; classification (success, rate
// limited, generic failure) belongs to the caller.
//
// Commands issued
//
//   - signal-cli listAccounts
//   - signal-cli -u <phone> register --captcha <url>
//   - signal-cli -u <phone> verify <code>
package signalcli
