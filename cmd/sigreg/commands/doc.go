// Package commands defines the sigreg CLI and wires dependencies for subcommands.
//
// Commands
//
//   - sigreg [phone]    Register and verify the account unless it already exists
//   - status [phone]    Show the data directories probed and the registration state
//   - register [phone]  Request an SMS code (captcha step only)
//   - verify [phone]    Submit the SMS code
//   - send <to> <msg>   Send a message through a running signal-cli daemon
//   - listen            Print incoming messages from the daemon event stream
//
// # Implementation
//
// The root command loads .env files and the environment into app.Config,
// applies flag overrides and builds the dependency graph before any
// subcommand runs. Failures are reported on the console; the process exit
// status is 1 for any failure and 0 otherwise.
package commands
