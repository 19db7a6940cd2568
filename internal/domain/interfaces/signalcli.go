//go:generate go run go.uber.org/mock/mockgen -source=signalcli.go -destination=../../../mocks/mock_signalcli.go -package=mocks
package interfaces

import (
	"context"

	domaintypes "sigreg/internal/domain/types"
)

// SignalCLI invokes the external signal-cli tool, one opaque call per method.
//
// A non-zero exit status is reported through ExecResult.ExitCode, not as an
// error; the error is reserved for processes that could not run to completion.
type SignalCLI interface {
	ListAccounts(ctx context.Context) (domaintypes.ExecResult, error)
	Register(
		ctx context.Context,
		phone domaintypes.PhoneNumber,
		captcha string,
	) (domaintypes.ExecResult, error)
	Verify(
		ctx context.Context,
		phone domaintypes.PhoneNumber,
		code string,
	) (domaintypes.ExecResult, error)
}
