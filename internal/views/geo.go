package views

import (
	"sort"

	"ccm-mcp/internal/market"
)

// GeoMetric selects what the choropleth aggregates per country.
type GeoMetric string

const (
	GeoMetricCO2      GeoMetric = "co2_reduced"
	GeoMetricProjects GeoMetric = "project_count"
)

// CountryValue is one country's aggregate.
type CountryValue struct {
	Country string `json:"country"`
	Value   int64  `json:"value"`
}

// BoundaryValue is a boundary feature with its attached aggregate. A fresh
// view-local slice is produced on every call; the shared boundary data is
// never mutated.
type BoundaryValue struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// GeoDistribution groups projects by country, either summing co2_reduced or
// counting distinct project identifiers. Values are coerced to integer.
// Countries come back sorted by descending value, then name.
func GeoDistribution(projects []market.Project, metric GeoMetric) []CountryValue {
	totals := make(map[string]float64)
	seen := make(map[string]map[string]bool)

	for _, p := range projects {
		switch metric {
		case GeoMetricProjects:
			ids := seen[p.Country]
			if ids == nil {
				ids = make(map[string]bool)
				seen[p.Country] = ids
			}
			if !ids[p.ID] {
				ids[p.ID] = true
				totals[p.Country]++
			}
		default:
			totals[p.Country] += p.CO2Reduced
		}
	}

	values := make([]CountryValue, 0, len(totals))
	for country, total := range totals {
		values = append(values, CountryValue{Country: country, Value: int64(total)})
	}
	sort.Slice(values, func(i, j int) bool {
		if values[i].Value != values[j].Value {
			return values[i].Value > values[j].Value
		}
		return values[i].Country < values[j].Country
	})
	return values
}

// AttachToBoundaries matches country aggregates onto boundary features by
// exact post-normalization name. Every feature receives a value; unmatched
// features get 0.
func AttachToBoundaries(fc *market.FeatureCollection, values []CountryValue) []BoundaryValue {
	if fc == nil {
		return nil
	}

	byCountry := make(map[string]int64, len(values))
	for _, v := range values {
		byCountry[v.Country] = v.Value
	}

	attached := make([]BoundaryValue, 0, len(fc.Features))
	for _, f := range fc.Features {
		attached = append(attached, BoundaryValue{
			Name:  f.Name(),
			Value: byCountry[f.Name()],
		})
	}
	return attached
}

// TopCountry returns the country with the highest aggregate, if any.
func TopCountry(values []CountryValue) (CountryValue, bool) {
	if len(values) == 0 {
		return CountryValue{}, false
	}
	return values[0], true
}
