package interfaces

import (
	"context"
	"encoding/json"

	domaintypes "sigreg/internal/domain/types"
)

// Messenger talks to a running signal-cli daemon, all with context.
type Messenger interface {
	Send(ctx context.Context, recipients []string, message string) (json.RawMessage, error)
	Listen(ctx context.Context, fn func(domaintypes.Event) error) error
}
