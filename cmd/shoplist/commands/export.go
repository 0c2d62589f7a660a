package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shopping-list/internal/shoppinglist"
	"shopping-list/internal/shoppinglist/projection"
)

func exportCmd() *cobra.Command {
	var title, sortBy, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the list as a markdown checklist",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := shoppinglist.ExportInput{Title: title}
			if sortBy != "" {
				s, ok := projection.ParseSort(sortBy)
				if !ok {
					return fmt.Errorf("unknown sort %q (name, date, purchased)", sortBy)
				}
				in.Sort = s
			}

			md, err := appCtx.UseCase.Export(cmd.Context(), in)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), md)
				return err
			}
			return os.WriteFile(output, []byte(md), 0o644)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "heading (default \"Shopping List\")")
	cmd.Flags().StringVar(&sortBy, "sort", "", "name, date or purchased (default: list order)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
