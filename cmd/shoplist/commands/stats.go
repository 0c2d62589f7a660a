package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print totals and completion percentage",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := appCtx.UseCase.Stats(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d  Purchased: %d  Remaining: %d  Complete: %d%%\n",
				s.Total, s.Purchased, s.Remaining, s.CompletionPercent)
			return nil
		},
	}
}
