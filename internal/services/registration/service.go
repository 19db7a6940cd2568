package registration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"sigreg/internal/domain"
)

var (
	// ErrNoPhone is the cause of the failure returned when no phone number was supplied.
	ErrNoPhone = errors.New("no phone number provided")

	errEmptyCaptcha = errors.New("empty captcha URL")
	errEmptyCode    = errors.New("empty verification code")
)

// DefaultRateLimitPhrase is the stderr text signal-cli prints when registration is throttled.
const DefaultRateLimitPhrase = "Rate Limited"

// Service orchestrates the check → register → verify flow against signal-cli.
type Service struct {
	accounts domain.AccountProber
	cli      domain.SignalCLI
	prompt   domain.Prompter
	policy   domain.RateLimitPolicy
	log      *zap.Logger
}

// New returns a registration service. An empty policy matches DefaultRateLimitPhrase.
func New(
	accounts domain.AccountProber,
	cli domain.SignalCLI,
	prompt domain.Prompter,
	policy domain.RateLimitPolicy,
	log *zap.Logger,
) *Service {
	if len(policy.Phrases) == 0 {
		policy.Phrases = []string{DefaultRateLimitPhrase}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{accounts: accounts, cli: cli, prompt: prompt, policy: policy, log: log}
}

// CheckRegistered reports whether phone already has local account data, either
// as a marker file in a data directory or in the listAccounts output. It never
// fails: lookup errors count as "not found".
func (s *Service) CheckRegistered(ctx context.Context, phone domain.PhoneNumber) bool {
	s.log.Info("checking registration status", zap.String("phone", phone.String()))

	if p, ok := s.accounts.Find(ctx); ok {
		s.log.Info("already registered", zap.String("marker", p.Marker), zap.String("path", p.Path))
		return true
	}

	res, err := s.cli.ListAccounts(ctx)
	switch {
	case err != nil:
		s.log.Warn("listAccounts failed", zap.Error(err))
	case res.Success() && strings.Contains(res.Stdout, phone.String()):
		s.log.Info("account found in local accounts", zap.String("phone", phone.String()))
		return true
	}

	s.log.Info("no registration data found", zap.String("phone", phone.String()))
	return false
}

// Register asks for a captcha URL and registers phone with it.
func (s *Service) Register(ctx context.Context, phone domain.PhoneNumber) error {
	const op = "register"
	if phone.Empty() {
		return missing(op, ErrNoPhone)
	}
	s.log.Info("registering signal account", zap.String("phone", phone.String()))

	captcha, err := s.prompt.Captcha(ctx)
	if err != nil {
		return missing(op, fmt.Errorf("reading captcha: %w", err))
	}
	if captcha == "" {
		return missing(op, errEmptyCaptcha)
	}

	res, err := s.cli.Register(ctx, phone, captcha)
	if err != nil {
		return toolFailure(op, res, err)
	}
	if res.Success() {
		s.log.Info("registration with captcha successful", zap.String("phone", phone.String()))
		return nil
	}
	if s.policy.Matches(res) {
		s.log.Warn("rate limited, wait before trying again", zap.Int("exit_code", res.ExitCode))
		return &domain.Failure{
			Kind:     domain.FailureRateLimited,
			Op:       op,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
	}
	s.log.Warn("registration failed", zap.Int("exit_code", res.ExitCode))
	return toolFailure(op, res, nil)
}

// Verify asks for the SMS code and verifies phone with it.
func (s *Service) Verify(ctx context.Context, phone domain.PhoneNumber) error {
	const op = "verify"
	if phone.Empty() {
		return missing(op, ErrNoPhone)
	}

	code, err := s.prompt.VerificationCode(ctx)
	if err != nil {
		return missing(op, fmt.Errorf("reading verification code: %w", err))
	}
	if code == "" {
		return missing(op, errEmptyCode)
	}

	res, err := s.cli.Verify(ctx, phone, code)
	if err != nil {
		return toolFailure(op, res, err)
	}
	if !res.Success() {
		s.log.Warn("verification failed", zap.Int("exit_code", res.ExitCode))
		return toolFailure(op, res, nil)
	}
	s.log.Info("account verification successful", zap.String("phone", phone.String()))
	return nil
}

// Run performs the whole flow. It returns before touching signal-cli when
// phone is empty, and stops at the first failing step.
func (s *Service) Run(ctx context.Context, phone domain.PhoneNumber) (domain.Outcome, error) {
	if phone.Empty() {
		return 0, missing("run", ErrNoPhone)
	}
	if s.CheckRegistered(ctx, phone) {
		return domain.OutcomeAlreadyRegistered, nil
	}
	if err := s.Register(ctx, phone); err != nil {
		return 0, err
	}
	if err := s.Verify(ctx, phone); err != nil {
		return 0, err
	}
	return domain.OutcomeRegistered, nil
}

func missing(op string, err error) error {
	return &domain.Failure{Kind: domain.FailureMissingInput, Op: op, Err: err}
}

func toolFailure(op string, res domain.ExecResult, err error) error {
	return &domain.Failure{
		Kind:     domain.FailureTool,
		Op:       op,
		ExitCode: res.ExitCode,
		Stderr:   res.Stderr,
		Err:      err,
	}
}

// Compile-time assertion that Service implements domain.RegistrationService.
var _ domain.RegistrationService = (*Service)(nil)
