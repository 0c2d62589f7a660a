package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"shopping-list/internal/shoppinglist"
)

func importCmd() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file|->",
		Short: "Add items from a markdown checklist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				content []byte
				err     error
			)
			if args[0] == "-" {
				content, err = io.ReadAll(cmd.InOrStdin())
			} else {
				content, err = os.ReadFile(args[0])
			}
			if err != nil {
				return err
			}

			out, err := appCtx.UseCase.Import(cmd.Context(), shoppinglist.ImportInput{
				Content: string(content),
				Replace: replace,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Imported %d items\n", len(out.Added))
			fmt.Fprintf(w, "Checklist: %d boxes, %d checked, %d unchecked\n",
				out.Checkboxes.Total, out.Checkboxes.Completed, out.Checkboxes.Pending)
			for _, s := range out.Skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "skipped %q: %s\n", s.Line, s.Reason)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "drop the current items first")
	return cmd
}
