package commands

import (
	"github.com/spf13/cobra"

	"sigreg/internal/app"
)

func verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify [phone_number]",
		Short: "Submit the SMS verification code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phone := app.ResolvePhone(args, appCtx.Config)
			if err := appCtx.Registration.Verify(cmd.Context(), phone); err != nil {
				report(err)
				return err
			}
			appCtx.Console.Success("Account verification successful!")
			return nil
		},
	}
}
