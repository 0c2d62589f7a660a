package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"shopping-list/internal/model"
)

func printItems(w io.Writer, items []model.ShoppingItem) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tPURCHASED\tADDED")
	for _, it := range items {
		mark := " "
		if it.Purchased {
			mark = "x"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t[%s]\t%s\n", it.ID, it.Name, it.Quantity, mark, it.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func printItem(w io.Writer, verb string, it model.ShoppingItem) {
	fmt.Fprintf(w, "%s %s (%s x%d)\n", verb, it.ID, it.Name, it.Quantity)
}
