//go:generate go run go.uber.org/mock/mockgen -source=accounts.go -destination=../../../mocks/mock_accounts.go -package=mocks
package interfaces

import (
	"context"

	domaintypes "sigreg/internal/domain/types"
)

// AccountProber looks for signal-cli account data on the local filesystem.
type AccountProber interface {
	// Find returns the first marker that exists, if any.
	Find(ctx context.Context) (domaintypes.Probe, bool)
	// Inspect returns every candidate marker path it checked.
	Inspect(ctx context.Context) []domaintypes.Probe
}
