package mcp

import (
	"fmt"

	"ccm-mcp/internal/views"
	"ccm-mcp/internal/visuals"
)

func (s *Server) handleDatasetOverview() (interface{}, error) {
	overview := views.Summarize(s.snapshot.Merged)

	return map[string]interface{}{
		"overview":            overview,
		"loaded_at":           s.snapshot.LoadedAt,
		"co2_reduced_compact": views.FormatCompact(float64(overview.CO2ReducedMegatons) * 1_000_000),
		"_guidance": []string{
			"Call 'list_implementation_years' to pick a year for detailed exploration.",
			"Use 'get_market_timeline' and 'get_geo_distribution' for market dynamics.",
		},
	}, nil
}

func (s *Server) handleListYears() (interface{}, error) {
	return map[string]interface{}{
		"years": views.ImplementationYears(s.snapshot.Merged),
		"_guidance": []string{
			"Year 0 groups undated projects.",
			"Pass one year to 'explore_year'.",
		},
	}, nil
}

func (s *Server) handleExploreYear(args map[string]interface{}) (interface{}, error) {
	year, ok := asInt(args["year"])
	if !ok {
		return nil, fmt.Errorf("missing required argument 'year'")
	}

	filtered := views.FilterByYear(s.snapshot.Merged, year)
	if len(filtered) == 0 {
		return unavailable(fmt.Sprintf("no records for implementation year %d", year)), nil
	}

	histogram := views.Histogram(filtered, "project_type")
	scatter, sampled := views.ScatterSample(filtered)

	res := map[string]interface{}{
		"summary":       views.SummarizeYear(year, filtered),
		"histogram":     histogram,
		"price_summary": views.PriceSummaryByType(filtered),
		"scatter": map[string]interface{}{
			"points":  scatter,
			"sampled": sampled,
		},
	}
	if sampled {
		res["_guidance"] = []string{
			fmt.Sprintf("The scatter view shows a deterministic sample of %d of %d rows.", len(scatter), len(filtered)),
		}
	}
	if s.cfg != nil && s.cfg.EnableMermaidCharts {
		res["histogram_chart"] = visuals.GenerateHistogramChart(
			fmt.Sprintf("Contagem de Projetos por Tipo em %d", year), histogram)
	}
	return res, nil
}
