package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// send: deliver a message through the daemon's JSON-RPC endpoint.
func sendCmd() *cobra.Command {
	var rpcURL string
	cmd := &cobra.Command{
		Use:   "send <recipient[,recipient...]> <message>",
		Short: "Send a message via a running signal-cli daemon",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			daemon := appCtx.Daemon
			if rpcURL != "" {
				daemon.Base = strings.TrimRight(rpcURL, "/")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), appCtx.Config.Timeout)
			defer cancel()

			res, err := daemon.Send(ctx, strings.Split(args[0], ","), args[1])
			if err != nil {
				return err
			}
			if len(res) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), string(res))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rpcURL, "url", "", "daemon base URL (overrides SIGNAL_RPC_URL)")
	return cmd
}
