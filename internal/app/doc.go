// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment (optionally seeded from a .env file),
// builds the account data store, the signal-cli client, the operator console,
// the registration service and the daemon client, and exposes them via the
// Wire struct for commands to use.
package app
