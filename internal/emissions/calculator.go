// Package emissions implements the standalone footprint calculator. It is
// pure and stateless; it does not touch the market dataset.
package emissions

import "fmt"

// treeAbsorptionKg is the average CO₂ absorbed by one tree growing for a year.
const treeAbsorptionKg = 22.0

// Activity is one emission source with its fixed factor.
type Activity struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"` // kg CO₂e per unit
	Unit   string  `json:"unit"`
}

// activities is the fixed catalog, in display order.
var activities = []Activity{
	{Name: "Gasolina (carro)", Factor: 2.31, Unit: "litros"},
	{Name: "Diesel (caminhão)", Factor: 2.68, Unit: "litros"},
	{Name: "Eletricidade (média Brasil)", Factor: 0.09, Unit: "kWh"},
	{Name: "Gás Natural (residencial)", Factor: 2.02, Unit: "m³"},
}

// Estimate is the result of one calculation.
type Estimate struct {
	Activity  string  `json:"activity"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	KgCO2e    float64 `json:"kg_co2e"`
	TreeYears float64 `json:"tree_years"`
}

// Activities returns the activity catalog.
func Activities() []Activity {
	out := make([]Activity, len(activities))
	copy(out, activities)
	return out
}

// Calculate estimates the footprint of consuming quantity units of the named
// activity. Unknown activities and negative quantities are rejected.
func Calculate(activity string, quantity float64) (Estimate, error) {
	if quantity < 0 {
		return Estimate{}, fmt.Errorf("quantity must be non-negative, got %f", quantity)
	}

	for _, a := range activities {
		if a.Name == activity {
			kg := quantity * a.Factor
			return Estimate{
				Activity:  a.Name,
				Quantity:  quantity,
				Unit:      a.Unit,
				KgCO2e:    kg,
				TreeYears: kg / treeAbsorptionKg,
			}, nil
		}
	}
	return Estimate{}, fmt.Errorf("unknown activity %q", activity)
}
