package signalcli

import (
	"context"
	"strings"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"sigreg/internal/domain"
)

const (
	// DefaultBinary is the executable looked up on PATH.
	DefaultBinary = "signal-cli"
	// DefaultTimeout bounds every invocation.
	DefaultTimeout = 30 * time.Second
)

// Config selects the binary and global flags.
type Config struct {
	Binary    string
	ConfigDir string // passed as --config when set
	Timeout   time.Duration
}

// Client drives signal-cli through a Runner.
type Client struct {
	cfg    Config
	runner Runner
	log    *zap.Logger
}

// New returns a client; zero fields of cfg take their defaults.
func New(cfg Config, runner Runner, log *zap.Logger) *Client {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{cfg: cfg, runner: runner, log: log}
}

// ListAccounts runs `signal-cli listAccounts`.
func (c *Client) ListAccounts(ctx context.Context) (domain.ExecResult, error) {
	return c.run(ctx, "listAccounts")
}

// Register runs `signal-cli -u <phone> register --captcha <captcha>`.
func (c *Client) Register(
	ctx context.Context,
	phone domain.PhoneNumber,
	captcha string,
) (domain.ExecResult, error) {
	return c.run(ctx, "-u", phone.String(), "register", "--captcha", captcha)
}

// Verify runs `signal-cli -u <phone> verify <code>`.
func (c *Client) Verify(
	ctx context.Context,
	phone domain.PhoneNumber,
	code string,
) (domain.ExecResult, error) {
	return c.run(ctx, "-u", phone.String(), "verify", code)
}

func (c *Client) run(ctx context.Context, args ...string) (domain.ExecResult, error) {
	argv := make([]string, 0, len(args)+3)
	argv = append(argv, c.cfg.Binary)
	if c.cfg.ConfigDir != "" {
		argv = append(argv, "--config", c.cfg.ConfigDir)
	}
	argv = append(argv, args...)

	c.log.Debug("running signal-cli", zap.Strings("args", args))
	res, err := c.runner.Run(ctx, ExecOptions{Command: argv, Timeout: c.cfg.Timeout})

	// Only registration and verification failures are worth the noise.
	if (err != nil || !res.Success()) && (lo.Contains(args, "register") || lo.Contains(args, "verify")) {
		c.log.Warn("command failed",
			zap.String("command", strings.Join(argv, " ")),
			zap.Int("exit_code", res.ExitCode),
			zap.String("stderr", strings.TrimSpace(res.Stderr)),
			zap.Error(err),
		)
	}
	return res, err
}

// Compile-time assertion that Client implements domain.SignalCLI.
var _ domain.SignalCLI = (*Client)(nil)
