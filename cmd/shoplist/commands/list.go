package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"shopping-list/internal/shoppinglist"
	"shopping-list/internal/shoppinglist/projection"
)

func listCmd() *cobra.Command {
	var query, filter, sortBy, where string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show items",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, ok := projection.ParseFilter(filter)
			if !ok {
				return fmt.Errorf("unknown filter %q (all, purchased, unpurchased)", filter)
			}
			s, ok := projection.ParseSort(sortBy)
			if !ok {
				return fmt.Errorf("unknown sort %q (name, date, purchased)", sortBy)
			}

			out, err := appCtx.UseCase.List(cmd.Context(), shoppinglist.ListItemsInput{
				Query:  query,
				Filter: f,
				Sort:   s,
				Where:  where,
			})
			if err != nil {
				return err
			}
			if len(out.Items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No items.")
				return nil
			}
			return printItems(cmd.OutOrStdout(), out.Items)
		},
	}

	cmd.Flags().StringVarP(&query, "q", "q", "", "case-insensitive name search")
	cmd.Flags().StringVar(&filter, "filter", "all", "all, purchased or unpurchased")
	cmd.Flags().StringVar(&sortBy, "sort", string(projection.DefaultSort), "name, date or purchased")
	cmd.Flags().StringVar(&where, "where", "", `expression such as 'quantity > 2 && !purchased'`)
	return cmd
}
