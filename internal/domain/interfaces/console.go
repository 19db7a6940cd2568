//go:generate go run go.uber.org/mock/mockgen -source=console.go -destination=../../../mocks/mock_console.go -package=mocks
package interfaces

import "context"

// Prompter asks the human operator for one-time registration inputs.
type Prompter interface {
	Captcha(ctx context.Context) (string, error)
	VerificationCode(ctx context.Context) (string, error)
}
