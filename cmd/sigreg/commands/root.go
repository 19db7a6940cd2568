package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sigreg/internal/app"
	"sigreg/internal/domain"
	"sigreg/internal/logging"
	"sigreg/internal/services/registration"
)

var (
	envFiles  []string
	binary    string
	configDir string
	timeout   time.Duration
	logLevel  string
	noColour  bool

	appCtx *app.Wire
)

// Execute runs the CLI. Registration failures are reported on the console
// before being returned; other errors are printed to stderr.
func Execute(ctx context.Context) error {
	return run(ctx, newRootCmd())
}

func run(ctx context.Context, root *cobra.Command) error {
	appCtx = nil
	err := root.ExecuteContext(ctx)
	if appCtx != nil {
		_ = appCtx.Log.Sync()
	}
	if err != nil {
		if _, ok := domain.KindOf(err); !ok {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		}
	}
	return err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sigreg [phone_number]",
		Short:         "Register a signal-cli account interactively",
		Long:          "Checks whether the account already exists and otherwise walks through\ncaptcha registration and SMS verification. The phone number may also be\nset with PHONE_NUMBER.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.LoadDotEnv(envFiles...)
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			applyFlags(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logging.New(logging.Config{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			phone := app.ResolvePhone(args, appCtx.Config)
			if !phone.Empty() {
				appCtx.Console.Info("Signal CLI registration for %s", phone)
			}

			outcome, err := appCtx.Registration.Run(cmd.Context(), phone)
			if err != nil {
				report(err)
				return err
			}
			switch outcome {
			case domain.OutcomeAlreadyRegistered:
				appCtx.Console.Success("Account already registered")
			case domain.OutcomeRegistered:
				appCtx.Console.Success("Registration completed successfully!")
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringSliceVar(&envFiles, "env-file", nil, "dotenv file(s) to load (default .env)")
	pf.StringVar(&binary, "bin", "", "signal-cli executable (overrides SIGNAL_CLI_BIN)")
	pf.StringVar(&configDir, "config-dir", "", "signal-cli --config directory (overrides SIGNAL_CLI_CONFIG_DIR)")
	pf.DurationVar(&timeout, "timeout", 0, "per-invocation timeout (overrides SIGNAL_CLI_TIMEOUT)")
	pf.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	pf.BoolVar(&noColour, "no-colour", false, "disable coloured console output")

	root.AddCommand(statusCmd(), registerCmd(), verifyCmd(), sendCmd(), listenCmd())
	return root
}

// applyFlags copies explicitly set flags over the environment values.
func applyFlags(cmd *cobra.Command, cfg *app.Config) {
	flags := cmd.Flags()
	if flags.Changed("bin") {
		cfg.Binary = binary
	}
	if flags.Changed("config-dir") {
		cfg.ConfigDir = configDir
	}
	if flags.Changed("timeout") {
		cfg.Timeout = timeout
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if noColour {
		cfg.Colours = false
	}
}

// report prints a one-line explanation of a registration failure.
func report(err error) {
	c := appCtx.Console
	kind, _ := domain.KindOf(err)
	switch {
	case errors.Is(err, registration.ErrNoPhone):
		c.Failure("Error: No phone number provided")
		c.Info("Usage: sigreg <phone_number>  (or set PHONE_NUMBER)")
	case kind == domain.FailureRateLimited:
		c.Failure("Rate limited. Please wait before trying again.")
	case kind == domain.FailureMissingInput:
		c.Failure("No input provided: %v", err)
	default:
		c.Failure("Registration failed: %v", err)
	}
}
