package interfaces

import (
	"context"

	domaintypes "sigreg/internal/domain/types"
)

// RegistrationService runs the check → register → verify flow.
type RegistrationService interface {
	CheckRegistered(ctx context.Context, phone domaintypes.PhoneNumber) bool
	Register(ctx context.Context, phone domaintypes.PhoneNumber) error
	Verify(ctx context.Context, phone domaintypes.PhoneNumber) error
	Run(ctx context.Context, phone domaintypes.PhoneNumber) (domaintypes.Outcome, error)
}
