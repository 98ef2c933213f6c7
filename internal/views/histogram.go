package views

import (
	"sort"

	"ccm-mcp/internal/market"
)

// HistogramBucket is one bar of a categorical count histogram.
type HistogramBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Histogram counts merged rows bucketed by a categorical field. Buckets come
// back in deterministic order: descending count, then label.
func Histogram(records []market.MergedRecord, field string) []HistogramBucket {
	counts := make(map[string]int)
	for _, r := range records {
		counts[categorical(r, field)]++
	}

	buckets := make([]HistogramBucket, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, HistogramBucket{Label: label, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Count != buckets[j].Count {
			return buckets[i].Count > buckets[j].Count
		}
		return buckets[i].Label < buckets[j].Label
	})
	return buckets
}

func categorical(r market.MergedRecord, field string) string {
	switch field {
	case "project_type_pt":
		return r.ProjectTypePT
	case "country":
		return r.Country
	default:
		return r.ProjectType
	}
}
