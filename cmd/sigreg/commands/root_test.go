package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sigreg/internal/domain"
	"sigreg/internal/services/registration"
)

const fakeCLI = `#!/bin/sh
case "$*" in
  *listAccounts*) exit 0 ;;
  *register*) [ -n "$FAKE_RATE_LIMIT" ] && { echo "[429] Rate Limited" >&2; exit 1; }; exit 0 ;;
  *verify*) exit 0 ;;
esac
exit 2
`

type harness struct {
	data string
	out  *bytes.Buffer
}

func newHarness(t *testing.T) harness {
	t.Helper()
	for _, k := range []string{"PHONE_NUMBER", "SIGNAL_CLI_CONFIG_DIR", "SIGNAL_CLI_TIMEOUT", "SIGNAL_RPC_URL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	dir := t.TempDir()
	bin := filepath.Join(dir, "signal-cli")
	require.NoError(t, os.WriteFile(bin, []byte(fakeCLI), 0o755))

	data := filepath.Join(dir, "data")
	require.NoError(t, os.MkdirAll(data, 0o700))

	t.Setenv("SIGNAL_CLI_BIN", bin)
	t.Setenv("SIGNAL_CLI_DATA_DIRS", data)
	t.Setenv("SIGREG_COLOURS", "false")
	t.Setenv("LOG_LEVEL", "error")
	return harness{data: data, out: &bytes.Buffer{}}
}

func (h harness) exec(t *testing.T, stdin string, args ...string) error {
	t.Helper()
	root := newRootCmd()
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(h.out)
	root.SetErr(h.out)
	root.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	return run(context.Background(), root)
}

func TestRoot_MissingPhone(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	// A binary that cannot run proves nothing was executed.
	t.Setenv("SIGNAL_CLI_BIN", filepath.Join(t.TempDir(), "absent"))

	err := h.exec(t, "")
	req.ErrorIs(err, registration.ErrNoPhone)
	req.Equal(1, registration.ExitCode(err))
	req.Contains(h.out.String(), "Error: No phone number provided")
	req.NotContains(h.out.String(), "CAPTCHA REQUIRED")
}

func TestRoot_AlreadyRegistered(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	req.NoError(os.WriteFile(filepath.Join(h.data, "accounts.json"), []byte(`{}`), 0o600))

	req.NoError(h.exec(t, "", "+15550001111"))
	req.Contains(h.out.String(), "Account already registered")
}

func TestRoot_EnvPhoneAndFullFlow(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	t.Setenv("PHONE_NUMBER", "+15550001111")

	req.NoError(h.exec(t, "signalcaptcha://token\n123456\n"))
	out := h.out.String()
	req.Contains(out, "Signal CLI registration for +15550001111")
	req.Contains(out, "CAPTCHA REQUIRED:")
	req.Contains(out, "Check your SMS for a verification code")
	req.Contains(out, "Registration completed successfully!")
}

func TestRoot_RateLimited(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	t.Setenv("FAKE_RATE_LIMIT", "1")

	err := h.exec(t, "signalcaptcha://token\n", "+15550001111")
	req.ErrorIs(err, domain.ErrRateLimited)
	req.Contains(h.out.String(), "Rate limited. Please wait before trying again.")
	req.NotContains(h.out.String(), "verification code")
}

func TestStatus_ListsProbes(t *testing.T) {
	req := require.New(t)
	h := newHarness(t)
	req.NoError(os.MkdirAll(filepath.Join(h.data, "profiles"), 0o700))

	req.NoError(h.exec(t, "", "status", "+15550001111"))
	out := h.out.String()
	req.Contains(out, h.data)
	req.Contains(out, "profiles")
	req.Contains(out, "true")
	req.Contains(out, "+15550001111 is registered")
}

func TestRoot_InvalidConfig(t *testing.T) {
	h := newHarness(t)
	t.Setenv("SIGNAL_CLI_TIMEOUT", "never")

	err := h.exec(t, "", "+15550001111")
	require.Error(t, err)
	require.Contains(t, h.out.String(), "Error:")
}
