package mcp

import (
	"reflect"
	"testing"
	"time"

	"ccm-mcp/internal/config"
	"ccm-mcp/internal/market"
	"ccm-mcp/internal/views"
)

func testServer(snapshot *market.Snapshot) *Server {
	return NewServer(&config.AppConfig{}, snapshot)
}

func testSnapshot() *market.Snapshot {
	date := func(s string) *time.Time {
		t, _ := time.Parse("2006-01-02", s)
		t = t.UTC()
		return &t
	}

	projects := []market.Project{
		{ID: "P1", Name: "Serra Verde", Country: "Brazil", ProjectType: "Wind", ImplementationYear: 2020, ProjectDuration: 5, CO2Reduced: 10000},
		{ID: "P2", Name: "Delta Solar", Country: "Vietnam", ProjectType: "Centralized Solar", ImplementationYear: 2020, ProjectDuration: 2, CO2Reduced: 2500},
	}
	credits := []market.Credit{
		{ProjectID: "P1", Volume: 50, Price: 10.00, TransactionDate: date("2021-01-10"), Ordinal: 0},
		{ProjectID: "P1", Volume: 30, Price: 8.01, TransactionDate: date("2021-02-10"), Ordinal: 1},
		{ProjectID: "P2", Volume: 20, Price: 7.02, TransactionDate: date("2021-02-20"), Ordinal: 2},
	}
	return &market.Snapshot{
		Projects: projects,
		Credits:  credits,
		Merged:   market.Merge(projects, credits),
		Boundaries: &market.FeatureCollection{
			Type: "FeatureCollection",
			Features: []market.Feature{
				{Properties: map[string]any{"name": "Brazil"}},
				{Properties: map[string]any{"name": "France"}},
			},
		},
		HasTransactionDates: true,
		Fingerprint:         "test",
		LoadedAt:            time.Now().UTC(),
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	s := testServer(testSnapshot())
	if _, err := s.dispatch("no_such_tool", nil); err != errToolNotFound {
		t.Errorf("Expected errToolNotFound, got %v", err)
	}
}

func TestHandleExploreYear(t *testing.T) {
	s := testServer(testSnapshot())

	data, err := s.handleExploreYear(map[string]interface{}{"year": float64(2020)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	res := data.(map[string]interface{})
	if _, ok := res["summary"]; !ok {
		t.Error("Expected a summary section")
	}
	if _, ok := res["price_summary"]; !ok {
		t.Error("Expected a price_summary section")
	}
}

func TestHandleExploreYearNoRecords(t *testing.T) {
	s := testServer(testSnapshot())

	data, err := s.handleExploreYear(map[string]interface{}{"year": float64(1999)})
	if err != nil {
		t.Fatalf("Empty years must degrade, not error: %v", err)
	}
	res := data.(map[string]interface{})
	if res["available"] != false {
		t.Errorf("Expected an unavailable payload, got %v", res)
	}
}

func TestHandleMarketTimelineDegradesWithoutDates(t *testing.T) {
	snap := testSnapshot()
	snap.HasTransactionDates = false
	s := testServer(snap)

	data, err := s.handleMarketTimeline(nil)
	if err != nil {
		t.Fatalf("Missing transaction dates must degrade, not error: %v", err)
	}
	res := data.(map[string]interface{})
	if res["available"] != false {
		t.Errorf("Expected an unavailable payload, got %v", res)
	}
}

func TestHandleMarketTimelineRange(t *testing.T) {
	s := testServer(testSnapshot())

	data, err := s.handleMarketTimeline(map[string]interface{}{
		"start_date": "2021-02-01",
		"end_date":   "2021-02-28",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	res := data.(map[string]interface{})
	months := res["months"].([]views.MonthlyPoint)
	if len(months) != 1 || months[0].Month != "2021-02" {
		t.Errorf("Expected only February in range, got %+v", months)
	}
	if months[0].Volume != 50 {
		t.Errorf("Expected February volume 50, got %f", months[0].Volume)
	}
}

func TestHandleMarketTimelineRejectsBadDate(t *testing.T) {
	s := testServer(testSnapshot())
	if _, err := s.handleMarketTimeline(map[string]interface{}{"start_date": "02/2021"}); err == nil {
		t.Error("Malformed date argument must be rejected")
	}
}

func TestHandleGeoDistribution(t *testing.T) {
	s := testServer(testSnapshot())

	data, err := s.handleGeoDistribution(map[string]interface{}{"metric": "project_count"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	res := data.(map[string]interface{})
	if res["available"] != true {
		t.Fatalf("Expected available geo view, got %v", res)
	}
}

func TestHandleGeoDistributionDegradesWithoutBoundaries(t *testing.T) {
	snap := testSnapshot()
	snap.Boundaries = nil
	s := testServer(snap)

	data, err := s.handleGeoDistribution(nil)
	if err != nil {
		t.Fatalf("Missing boundaries must degrade, not error: %v", err)
	}
	res := data.(map[string]interface{})
	if res["available"] != false {
		t.Errorf("Expected an unavailable payload, got %v", res)
	}
}

func TestDispatchMemoizesViewResults(t *testing.T) {
	s := testServer(testSnapshot())
	args := map[string]interface{}{"year": float64(2020)}

	first, err := s.dispatch("explore_year", args)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	second, err := s.dispatch("explore_year", args)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Same snapshot + same parameters must return the memoized map, not a
	// recomputed one.
	f := reflect.ValueOf(first.(map[string]interface{})).Pointer()
	sec := reflect.ValueOf(second.(map[string]interface{})).Pointer()
	if f != sec {
		t.Error("Expected the memoized view result to be returned")
	}
}
