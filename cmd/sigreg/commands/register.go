package commands

import (
	"github.com/spf13/cobra"

	"sigreg/internal/app"
)

func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register [phone_number]",
		Short: "Solve the captcha and request an SMS verification code",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phone := app.ResolvePhone(args, appCtx.Config)
			if err := appCtx.Registration.Register(cmd.Context(), phone); err != nil {
				report(err)
				return err
			}
			appCtx.Console.Success("Registration with captcha successful!")
			return nil
		},
	}
}
