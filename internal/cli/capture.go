package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func captureCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "capture <text>",
		Short: `Quick capture: "todo ..." makes a task, anything else a note`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Capture(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			ok.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", res.Message, res.Id)
			return nil
		},
	}
}
