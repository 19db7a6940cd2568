package domain

import (
	interfaces "sigreg/internal/domain/interfaces"
	types "sigreg/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	PhoneNumber     = types.PhoneNumber
	Outcome         = types.Outcome
	FailureKind     = types.FailureKind
	Failure         = types.Failure
	ExecResult      = types.ExecResult
	RateLimitPolicy = types.RateLimitPolicy
	Probe           = types.Probe
	Event           = types.Event
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	AccountProber       = interfaces.AccountProber
	SignalCLI           = interfaces.SignalCLI
	Prompter            = interfaces.Prompter
	RegistrationService = interfaces.RegistrationService
	Messenger           = interfaces.Messenger
)

const (
	OutcomeAlreadyRegistered = types.OutcomeAlreadyRegistered
	OutcomeRegistered        = types.OutcomeRegistered

	FailureMissingInput = types.FailureMissingInput
	FailureTool         = types.FailureTool
	FailureRateLimited  = types.FailureRateLimited
)

var (
	ErrMissingInput = types.ErrMissingInput
	ErrToolFailed   = types.ErrToolFailed
	ErrRateLimited  = types.ErrRateLimited
)

// KindOf returns the kind of the first *Failure in err's chain.
func KindOf(err error) (FailureKind, bool) { return types.KindOf(err) }
