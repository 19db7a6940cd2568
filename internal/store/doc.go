// Package store inspects signal-cli's on-disk account data.
//
// signal-cli owns all durable state; this package only reads it to decide
// whether an account has already been registered. A directory or file that
// does not exist is "not found", never an error, and unreadable directories
// are logged and skipped.
//
// Markers checked, in order, under each candidate data directory:
//   - accounts.json
//   - identity
//   - profiles
package store
