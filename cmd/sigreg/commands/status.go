package commands

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"sigreg/internal/app"
)

// status: show every marker path probed and, given a phone, whether it is registered.
func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [phone_number]",
		Short: "Show account data directories and registration state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(appCtx.Console.Writer())
			table.SetHeader([]string{"Directory", "Marker", "Found", "Error"})
			table.SetAutoWrapText(false)
			table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
			table.SetAlignment(tablewriter.ALIGN_LEFT)
			table.SetBorder(false)

			for _, p := range appCtx.Accounts.Inspect(cmd.Context()) {
				errText := ""
				if p.Err != nil {
					errText = p.Err.Error()
				}
				table.Append([]string{p.Dir, p.Marker, strconv.FormatBool(p.Found), errText})
			}
			table.Render()

			phone := app.ResolvePhone(args, appCtx.Config)
			if phone.Empty() {
				return nil
			}
			if appCtx.Registration.CheckRegistered(cmd.Context(), phone) {
				appCtx.Console.Success("%s is registered", phone)
			} else {
				appCtx.Console.Failure("%s is not registered", phone)
			}
			return nil
		},
	}
}
