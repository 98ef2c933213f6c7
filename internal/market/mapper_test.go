package market

import (
	"math"
	"testing"
	"time"
)

func projectsTable(rows ...[]string) *Table {
	return &Table{
		columns: map[string]int{
			"project_id": 0, "name": 1, "country": 2, "project_type": 3,
			"first_issuance_at": 4, "first_retirement_at": 5, "issued": 6,
		},
		rows: rows,
	}
}

func TestBuildProjectDerivedFields(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tbl := projectsTable(
		[]string{"P1", "Mata Atlantica", "Brazil", "Wind", "2010-03-01", "2020-03-01", "12.5"},
	)

	p := BuildProject(tbl.Row(0), now)

	if p.ImplementationYear != 2010 {
		t.Errorf("Expected implementation year 2010, got %d", p.ImplementationYear)
	}
	// 2010-03-01 .. 2020-03-01 is ten years, floor(3653/365.25) = 10
	if p.ProjectDuration != 10 {
		t.Errorf("Expected duration 10, got %d", p.ProjectDuration)
	}
	if p.CO2Reduced != 12500 {
		t.Errorf("Expected co2_reduced 12500, got %f", p.CO2Reduced)
	}
	if !p.HasIssuance || !p.HasRetirement {
		t.Error("Expected both timestamps to be marked present")
	}
	if p.FirstIssuanceAt.Location() != time.UTC {
		t.Error("Expected issuance timestamp in UTC")
	}
}

func TestBuildProjectMissingIssuance(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tbl := projectsTable(
		[]string{"P2", "Undated", "Kenya", "Cookstove", "", "2020-01-01", ""},
	)

	p := BuildProject(tbl.Row(0), now)

	if p.ImplementationYear != 0 {
		t.Errorf("Expected sentinel year 0 for missing issuance, got %d", p.ImplementationYear)
	}
	if p.ProjectDuration != 1 {
		t.Errorf("Expected default duration 1 for missing issuance, got %d", p.ProjectDuration)
	}
	if !p.FirstIssuanceAt.Equal(issuanceSentinel) {
		t.Errorf("Expected issuance sentinel 1900-01-01, got %v", p.FirstIssuanceAt)
	}
	if p.Issued != 0 || p.CO2Reduced != 0 {
		t.Errorf("Expected issued/co2 to default to 0, got %f / %f", p.Issued, p.CO2Reduced)
	}
}

func TestBuildProjectMissingRetirementUsesNow(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tbl := projectsTable(
		[]string{"P3", "Open", "India", "Biomass", "2020-06-01", "not-a-date", "1"},
	)

	p := BuildProject(tbl.Row(0), now)

	if !p.FirstRetirementAt.Equal(now) {
		t.Errorf("Expected retirement to fall back to processing time, got %v", p.FirstRetirementAt)
	}
	if p.HasRetirement {
		t.Error("Malformed retirement must be treated as absent")
	}
	// 1826 days / 365.25 floors to 4.
	if p.ProjectDuration != 4 {
		t.Errorf("Expected duration 4 from issuance to now, got %d", p.ProjectDuration)
	}
}

func TestBuildProjectNeverNegative(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	tbl := projectsTable(
		// Retirement before issuance and negative issued volume.
		[]string{"P4", "Weird", "Peru", "Landfill", "2020-01-01", "2010-01-01", "-3"},
	)

	p := BuildProject(tbl.Row(0), now)

	if p.ProjectDuration < 0 {
		t.Errorf("project_duration must never be negative, got %d", p.ProjectDuration)
	}
	if p.CO2Reduced < 0 {
		t.Errorf("co2_reduced must never be negative, got %f", p.CO2Reduced)
	}
}

func creditsTable(rows ...[]string) *Table {
	return &Table{
		columns: map[string]int{"project_id": 0, "quantity": 1, "transaction_date": 2},
		rows:    rows,
	}
}

func TestBuildCreditPriceFormula(t *testing.T) {
	tbl := creditsTable([]string{"P1", "50", "2021-04-15"})

	c := BuildCredit(tbl.Row(0), 7, true)

	// volume*0.1 + 5 + (7 mod 100)/100 = 10.07 exactly
	if math.Abs(c.Price-10.07) > 1e-9 {
		t.Errorf("Expected price 10.07 at ordinal 7, got %f", c.Price)
	}
	if c.Volume != 50 {
		t.Errorf("Expected volume 50, got %f", c.Volume)
	}
	if c.TransactionDate == nil {
		t.Fatal("Expected transaction date to be parsed")
	}
	if c.TransactionDate.Year() != 2021 {
		t.Errorf("Expected transaction year 2021, got %d", c.TransactionDate.Year())
	}
}

func TestBuildCreditOrdinalJitterWraps(t *testing.T) {
	tbl := creditsTable([]string{"P1", "50", ""})

	c0 := BuildCredit(tbl.Row(0), 0, true)
	c100 := BuildCredit(tbl.Row(0), 100, true)

	if c0.Price != c100.Price {
		t.Errorf("Jitter term must wrap at 100: got %f vs %f", c0.Price, c100.Price)
	}
}

func TestBuildCreditDefaultVolume(t *testing.T) {
	tbl := &Table{
		columns: map[string]int{"project_id": 0},
		rows:    [][]string{{"P1"}},
	}

	c := BuildCredit(tbl.Row(0), 3, false)

	if c.Volume != 100 {
		t.Errorf("Expected default volume 100, got %f", c.Volume)
	}
	// 100*0.1 + 5 + 3/100
	if math.Abs(c.Price-15.03) > 1e-9 {
		t.Errorf("Expected price 15.03, got %f", c.Price)
	}
}
