package projection

import (
	"math"

	"shopping-list/internal/model"
)

// Stats summarises the whole list, independent of search and filters.
type Stats struct {
	Total             int
	Purchased         int
	Remaining         int
	CompletionPercent int
}

func ComputeStats(items []model.ShoppingItem) Stats {
	st := Stats{Total: len(items)}
	for _, it := range items {
		if it.Purchased {
			st.Purchased++
		}
	}
	st.Remaining = st.Total - st.Purchased
	if st.Total > 0 {
		st.CompletionPercent = int(math.Round(float64(st.Purchased) / float64(st.Total) * 100))
	}
	return st
}
