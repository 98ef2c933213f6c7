package mcp

import (
	"fmt"
	"time"

	"ccm-mcp/internal/views"
	"ccm-mcp/internal/visuals"
)

func (s *Server) handleMarketTimeline(args map[string]interface{}) (interface{}, error) {
	if !s.snapshot.HasTransactionDates {
		return unavailable("credits table carries no transaction_date column"), nil
	}

	from, err := parseDateArg(args, "start_date")
	if err != nil {
		return nil, err
	}
	to, err := parseDateArg(args, "end_date")
	if err != nil {
		return nil, err
	}
	if !to.IsZero() {
		// End date is inclusive.
		to = to.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, fmt.Errorf("end_date precedes start_date")
	}

	points := views.MonthlyTimeline(s.snapshot.Credits, from, to)
	res := map[string]interface{}{
		"available": true,
		"months":    points,
		"metrics":   views.SummarizeTimeline(points),
	}
	if s.cfg != nil && s.cfg.EnableMermaidCharts {
		res["timeline_chart"] = visuals.GenerateTimelineChart(points)
	}
	return res, nil
}

func (s *Server) handleGeoDistribution(args map[string]interface{}) (interface{}, error) {
	metric := views.GeoMetricCO2
	switch asString(args["metric"]) {
	case "", string(views.GeoMetricCO2):
	case string(views.GeoMetricProjects):
		metric = views.GeoMetricProjects
	default:
		return nil, fmt.Errorf("unknown metric %q, expected co2_reduced or project_count", args["metric"])
	}

	if s.snapshot.Boundaries == nil {
		return unavailable("boundary file not loaded, geographic view disabled"), nil
	}

	values := views.GeoDistribution(s.snapshot.Projects, metric)
	res := map[string]interface{}{
		"available":  true,
		"metric":     string(metric),
		"countries":  values,
		"boundaries": views.AttachToBoundaries(s.snapshot.Boundaries, values),
	}
	if top, ok := views.TopCountry(values); ok {
		res["top_country"] = top
		res["countries_with_projects"] = len(values)
	}
	return res, nil
}
