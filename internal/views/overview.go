package views

import (
	"sort"

	"ccm-mcp/internal/market"
)

// Overview holds the dataset-wide headline metrics.
type Overview struct {
	Projects           int `json:"projects"`
	CO2ReducedMegatons int `json:"co2_reduced_megatons"`
	Countries          int `json:"countries"`
}

// YearSummary holds the headline metrics for one implementation year.
type YearSummary struct {
	Year       int     `json:"year"`
	Records    int     `json:"records"`
	Projects   int     `json:"projects"`
	MeanPrice  float64 `json:"mean_price"`
	CO2Reduced float64 `json:"co2_reduced"`
}

// Summarize computes the dataset overview from the merged table: distinct
// projects, total co2_reduced in millions of tonnes, distinct countries.
func Summarize(records []market.MergedRecord) Overview {
	projects := make(map[string]bool)
	countries := make(map[string]bool)
	co2 := 0.0
	for _, r := range records {
		projects[r.ID] = true
		countries[r.Country] = true
		co2 += r.CO2Reduced
	}
	return Overview{
		Projects:           len(projects),
		CO2ReducedMegatons: int(co2 / 1_000_000),
		Countries:          len(countries),
	}
}

// SummarizeYear computes the per-year headline metrics over an
// already-filtered slice.
func SummarizeYear(year int, records []market.MergedRecord) YearSummary {
	projects := make(map[string]bool)
	prices := make([]float64, 0, len(records))
	co2 := 0.0
	for _, r := range records {
		projects[r.ID] = true
		prices = append(prices, r.Credit.Price)
		co2 += r.CO2Reduced
	}
	return YearSummary{
		Year:       year,
		Records:    len(records),
		Projects:   len(projects),
		MeanPrice:  mean(prices),
		CO2Reduced: co2,
	}
}

// FilterByYear returns the merged rows whose implementation year matches.
func FilterByYear(records []market.MergedRecord, year int) []market.MergedRecord {
	filtered := make([]market.MergedRecord, 0)
	for _, r := range records {
		if r.ImplementationYear == year {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ImplementationYears lists the distinct implementation years, newest first.
func ImplementationYears(records []market.MergedRecord) []int {
	seen := make(map[int]bool)
	for _, r := range records {
		seen[r.ImplementationYear] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}
