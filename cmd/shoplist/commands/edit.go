package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"shopping-list/internal/shoppinglist"
)

func editCmd() *cobra.Command {
	var (
		name string
		qty  int
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the name or quantity of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := shoppinglist.EditItemInput{ID: args[0]}
			if cmd.Flags().Changed("name") {
				in.Name = &name
			}
			if cmd.Flags().Changed("qty") {
				in.Quantity = &qty
			}
			if in.Name == nil && in.Quantity == nil {
				return errors.New("nothing to update: pass --name and/or --qty")
			}

			item, err := appCtx.UseCase.Edit(cmd.Context(), in)
			if err != nil {
				return err
			}
			printItem(cmd.OutOrStdout(), "Updated", item)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().IntVarP(&qty, "qty", "n", 0, "new quantity (1-999)")
	return cmd
}
