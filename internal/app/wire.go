package app

import (
	"io"
	"net/http"
	"os"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"sigreg/internal/domain"
	"sigreg/internal/prompt"
	"sigreg/internal/rpc"
	"sigreg/internal/services/registration"
	"sigreg/internal/signalcli"
	"sigreg/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Config       Config
	Log          *zap.Logger
	Console      *prompt.Console
	Accounts     *store.AccountDataStore
	SignalCLI    domain.SignalCLI
	Registration domain.RegistrationService
	Daemon       *rpc.HTTP
	HTTP         *http.Client
}

// NewWire constructs the dependency graph from cfg. The console reads from
// in and writes to out.
func NewWire(cfg Config, log *zap.Logger, in io.Reader, out io.Writer) (*Wire, error) {
	if log == nil {
		log = zap.NewNop()
	}

	dirs := lo.Compact(cfg.DataDirs)
	if len(dirs) == 0 {
		// A missing home just drops the home-relative candidates.
		home, _ := os.UserHomeDir()
		dirs = store.DefaultDataDirs(home)
	}
	accounts := store.NewAccountDataStore(dirs, store.DefaultMarkers, log.Named("store"))

	cli := signalcli.New(signalcli.Config{
		Binary:    cfg.Binary,
		ConfigDir: cfg.ConfigDir,
		Timeout:   cfg.Timeout,
	}, signalcli.ExecRunner{}, log.Named("signal-cli"))

	console := prompt.New(in, out, cfg.Colours)

	reg := registration.New(accounts, cli, console, domain.RateLimitPolicy{
		Phrases:  cfg.RateLimitPhrases,
		ExitCode: cfg.RateLimitExitCode,
	}, log.Named("registration"))

	// No client timeout: the event stream is long-lived. Calls bound themselves via ctx.
	httpClient := &http.Client{}
	daemon := rpc.NewHTTP(cfg.RPCURL, httpClient)
	daemon.Log = log.Named("rpc")
	daemon.Retry = cfg.RPCRetry

	return &Wire{
		Config:       cfg,
		Log:          log,
		Console:      console,
		Accounts:     accounts,
		SignalCLI:    cli,
		Registration: reg,
		Daemon:       daemon,
		HTTP:         httpClient,
	}, nil
}
