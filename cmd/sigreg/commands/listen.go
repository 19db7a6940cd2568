package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sigreg/internal/domain"
)

var errGotEvent = errors.New("event received")

// listen: stream receive events, one JSON document per line.
func listenCmd() *cobra.Command {
	var (
		rpcURL string
		once   bool
		wait   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Print incoming messages from the daemon event stream",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			daemon := appCtx.Daemon
			if rpcURL != "" {
				daemon.Base = strings.TrimRight(rpcURL, "/")
			}
			out := cmd.OutOrStdout()

			ctx := cmd.Context()
			if once {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, wait)
				defer cancel()
			}

			err := daemon.Listen(ctx, func(e domain.Event) error {
				fmt.Fprintln(out, string(e.Data))
				if once {
					return errGotEvent
				}
				return nil
			})
			switch {
			case errors.Is(err, errGotEvent):
				return nil
			case err != nil:
				return err
			case once && errors.Is(ctx.Err(), context.DeadlineExceeded):
				return fmt.Errorf("no message received within %s", wait)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rpcURL, "url", "", "daemon base URL (overrides SIGNAL_RPC_URL)")
	cmd.Flags().BoolVar(&once, "once", false, "exit after the first message")
	cmd.Flags().DurationVar(&wait, "wait", 10*time.Second, "how long --once waits for a message")
	return cmd
}
