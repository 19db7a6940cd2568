package types

import "strings"

// PhoneNumber identifies the Signal account being registered, in the form
// signal-cli expects for its -u flag (usually E.164, e.g. +15551234567).
type PhoneNumber string

// String returns the string form of the phone number.
func (p PhoneNumber) String() string { return string(p) }

// Empty reports whether no phone number was supplied.
func (p PhoneNumber) Empty() bool { return strings.TrimSpace(string(p)) == "" }

// Outcome describes how a successful registration run ended.
type Outcome int

const (
	// OutcomeAlreadyRegistered means local account data was found and nothing was done.
	OutcomeAlreadyRegistered Outcome = iota + 1
	// OutcomeRegistered means the account was registered and verified by this run.
	OutcomeRegistered
)

// String returns a short description of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyRegistered:
		return "already registered"
	case OutcomeRegistered:
		return "registered"
	default:
		return "unknown"
	}
}
