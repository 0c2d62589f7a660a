package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"shopping-list/internal/shoppinglist"
)

func addCmd() *cobra.Command {
	var qty int

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an item",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := appCtx.UseCase.Add(cmd.Context(), shoppinglist.AddItemInput{
				Name:     strings.Join(args, " "),
				Quantity: qty,
			})
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), "Added", item)
			return nil
		},
	}

	cmd.Flags().IntVarP(&qty, "qty", "n", 1, "quantity (1-999)")
	return cmd
}
