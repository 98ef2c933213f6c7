package views

import (
	"math/rand"
	"sort"

	"ccm-mcp/internal/market"
)

const (
	// maxScatterPoints caps the scatter payload; larger inputs are sampled.
	maxScatterPoints = 2000

	// scatterSeed fixes the sampling RNG so the same input always yields the
	// same sample.
	scatterSeed = 42
)

// ScatterPoint is one point of the volume-vs-price scatter view.
type ScatterPoint struct {
	Name        string  `json:"name"`
	ProjectType string  `json:"project_type"`
	CO2Reduced  float64 `json:"co2_reduced"`
	Price       float64 `json:"price"`
}

// ScatterSample returns the scatter points for the given records. Inputs above
// maxScatterPoints are reduced to a seeded uniform random sample of exactly
// maxScatterPoints rows, preserving original row order; sampling is
// deterministic across invocations. The second return reports whether
// sampling happened.
func ScatterSample(records []market.MergedRecord) ([]ScatterPoint, bool) {
	sampled := false
	indices := make([]int, len(records))
	for i := range indices {
		indices[i] = i
	}

	if len(records) > maxScatterPoints {
		rng := rand.New(rand.NewSource(scatterSeed))
		perm := rng.Perm(len(records))
		indices = perm[:maxScatterPoints]
		sort.Ints(indices)
		sampled = true
	}

	points := make([]ScatterPoint, 0, len(indices))
	for _, i := range indices {
		r := records[i]
		points = append(points, ScatterPoint{
			Name:        r.Project.Name,
			ProjectType: r.ProjectType,
			CO2Reduced:  r.CO2Reduced,
			Price:       r.Credit.Price,
		})
	}
	return points, sampled
}
