package regression

import (
	"math"
	"testing"
)

func TestModelReportIsStable(t *testing.T) {
	r := ModelReport()

	if r.RSquared != 0.756 || r.AdjRSquared != 0.755 {
		t.Errorf("Unexpected fit figures: %f / %f", r.RSquared, r.AdjRSquared)
	}
	if len(r.Coefficients) != 5 {
		t.Fatalf("Expected 5 coefficients, got %d", len(r.Coefficients))
	}
	if r.Coefficients[0].Estimate != -1.2345 {
		t.Errorf("Unexpected intercept: %f", r.Coefficients[0].Estimate)
	}
}

func TestEstimatePrice(t *testing.T) {
	price, err := EstimatePrice(1000, 10, "Forestry")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	expected := -1.2345 + 1000*0.0005 + 10*0.1234 + 0.5678
	if math.Abs(price-expected) > 1e-9 {
		t.Errorf("Expected %f, got %f", expected, price)
	}
}

func TestEstimatePriceUnknownTypeNoUplift(t *testing.T) {
	base, _ := EstimatePrice(1000, 10, "Cookstove")
	forestry, _ := EstimatePrice(1000, 10, "Forestry")
	if base >= forestry {
		t.Errorf("Expected Forestry uplift over base, got %f vs %f", forestry, base)
	}
}

func TestEstimatePriceClampsAtZero(t *testing.T) {
	price, err := EstimatePrice(0, 1, "Cookstove")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if price != 0 {
		t.Errorf("Expected clamp at 0 for a negative raw estimate, got %f", price)
	}
}

func TestEstimatePriceRejectsInvalidInput(t *testing.T) {
	if _, err := EstimatePrice(-1, 10, "Wind"); err == nil {
		t.Error("Negative volume must be rejected")
	}
	if _, err := EstimatePrice(100, 0, "Wind"); err == nil {
		t.Error("Zero duration must be rejected")
	}
}
