package commands

import (
	"github.com/spf13/cobra"
)

func toggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip the purchased flag of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := appCtx.UseCase.Toggle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			verb := "Unchecked"
			if item.Purchased {
				verb = "Checked"
			}
			printItem(cmd.OutOrStdout(), verb, item)
			return nil
		},
	}
}
