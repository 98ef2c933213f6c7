package views

import (
	"sort"

	"ccm-mcp/internal/market"
)

// PriceSummary holds per-group price statistics.
type PriceSummary struct {
	ProjectType string  `json:"project_type"`
	Mean        float64 `json:"mean"`
	Median      float64 `json:"median"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
}

// PriceSummaryByType computes mean/median/min/max of price grouped by
// project_type, sorted by type name.
func PriceSummaryByType(records []market.MergedRecord) []PriceSummary {
	grouped := make(map[string][]float64)
	for _, r := range records {
		grouped[r.ProjectType] = append(grouped[r.ProjectType], r.Credit.Price)
	}

	summaries := make([]PriceSummary, 0, len(grouped))
	for projectType, prices := range grouped {
		s := PriceSummary{
			ProjectType: projectType,
			Mean:        mean(prices),
			Median:      median(prices),
			Min:         prices[0],
			Max:         prices[0],
		}
		for _, p := range prices {
			if p < s.Min {
				s.Min = p
			}
			if p > s.Max {
				s.Max = p
			}
		}
		summaries = append(summaries, s)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].ProjectType < summaries[j].ProjectType
	})
	return summaries
}
