package segment

import (
	"math"
	"math/rand"
	"sort"

	"ccm-mcp/internal/market"
)

const (
	// clusterCount is fixed: the segmentation contract is a two-way split.
	clusterCount = 2

	// initSeed fixes centroid initialization for reproducible partitions.
	initSeed = 42

	maxIterations = 100
)

// Cluster display names, keyed by centroid rank (ascending co2_reduced), never
// by the raw k-means label: label assignment is arbitrary between equivalent
// clusterings, centroid rank is not.
var clusterNames = [clusterCount]string{
	"Cluster 0 (Pequeno Volume)",
	"Cluster 1 (Grande Volume)",
}

// Assignment is one project's cluster membership. It is a view-local
// annotation; the shared project table is never mutated.
type Assignment struct {
	ProjectID       string  `json:"project_id"`
	Name            string  `json:"name"`
	ProjectType     string  `json:"project_type"`
	CO2Reduced      float64 `json:"co2_reduced"`
	ProjectDuration int     `json:"project_duration"`
	Cluster         string  `json:"cluster"`
	Rank            int     `json:"rank"`
}

// Profile describes one cluster.
type Profile struct {
	Cluster          string  `json:"cluster"`
	Projects         int     `json:"projects"`
	CentroidCO2      float64 `json:"centroid_co2_reduced"`
	CentroidDuration float64 `json:"centroid_project_duration"`
}

// Result is the outcome of a segmentation run. Available=false is the
// degraded "insufficient data" state, not an error.
type Result struct {
	Available   bool         `json:"available"`
	Reason      string       `json:"reason,omitempty"`
	Clusters    []Profile    `json:"clusters,omitempty"`
	Assignments []Assignment `json:"assignments,omitempty"`
}

type point struct {
	co2      float64
	duration float64
}

// Run partitions projects into two clusters over (co2_reduced,
// project_duration) via iterative centroid relaxation, then names the
// clusters by centroid rank.
func Run(projects []market.Project) Result {
	if len(projects) < clusterCount {
		return Result{
			Available: false,
			Reason:    "insufficient data: at least 2 projects are required for segmentation",
		}
	}

	features := make([]point, len(projects))
	for i, p := range projects {
		co2 := p.CO2Reduced
		if math.IsNaN(co2) {
			co2 = 0
		}
		features[i] = point{co2: co2, duration: float64(p.ProjectDuration)}
	}

	labels, centroids := kmeans(features)

	// Rank centroids by co2_reduced so the semantic names bind to volume, not
	// to the arbitrary numeric label.
	rank := [clusterCount]int{0, 1}
	if centroids[0].co2 > centroids[1].co2 {
		rank = [clusterCount]int{1, 0}
	}

	counts := [clusterCount]int{}
	assignments := make([]Assignment, len(projects))
	for i, p := range projects {
		r := rank[labels[i]]
		counts[r]++
		assignments[i] = Assignment{
			ProjectID:       p.ID,
			Name:            p.Name,
			ProjectType:     p.ProjectType,
			CO2Reduced:      p.CO2Reduced,
			ProjectDuration: p.ProjectDuration,
			Cluster:         clusterNames[r],
			Rank:            r,
		}
	}

	profiles := make([]Profile, clusterCount)
	for label := 0; label < clusterCount; label++ {
		r := rank[label]
		profiles[r] = Profile{
			Cluster:          clusterNames[r],
			Projects:         counts[r],
			CentroidCO2:      centroids[label].co2,
			CentroidDuration: centroids[label].duration,
		}
	}
	sort.Slice(profiles, func(i, j int) bool { return profiles[i].Cluster < profiles[j].Cluster })

	return Result{
		Available:   true,
		Clusters:    profiles,
		Assignments: assignments,
	}
}

// kmeans runs Lloyd iteration with seeded initialization.
func kmeans(features []point) ([]int, [clusterCount]point) {
	rng := rand.New(rand.NewSource(initSeed))

	var centroids [clusterCount]point
	first := rng.Intn(len(features))
	centroids[0] = features[first]

	// Prefer a second seed distinct in feature space; fall back to any other
	// row when all points coincide.
	second := (first + 1) % len(features)
	for attempt := 0; attempt < len(features); attempt++ {
		candidate := rng.Intn(len(features))
		if features[candidate] != centroids[0] {
			second = candidate
			break
		}
	}
	centroids[1] = features[second]

	labels := make([]int, len(features))
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, f := range features {
			label := nearest(f, centroids)
			if label != labels[i] {
				labels[i] = label
				changed = true
			}
		}

		var sums [clusterCount]point
		var counts [clusterCount]int
		for i, f := range features {
			sums[labels[i]].co2 += f.co2
			sums[labels[i]].duration += f.duration
			counts[labels[i]]++
		}
		for c := 0; c < clusterCount; c++ {
			if counts[c] == 0 {
				// Empty cluster: reseed to a random row to keep both alive.
				centroids[c] = features[rng.Intn(len(features))]
				continue
			}
			centroids[c] = point{
				co2:      sums[c].co2 / float64(counts[c]),
				duration: sums[c].duration / float64(counts[c]),
			}
		}

		if !changed && iter > 0 {
			break
		}
	}

	return labels, centroids
}

func nearest(f point, centroids [clusterCount]point) int {
	best := 0
	bestDist := squaredDistance(f, centroids[0])
	for c := 1; c < clusterCount; c++ {
		if d := squaredDistance(f, centroids[c]); d < bestDist {
			best = c
			bestDist = d
		}
	}
	return best
}

func squaredDistance(a, b point) float64 {
	dc := a.co2 - b.co2
	dd := a.duration - b.duration
	return dc*dc + dd*dd
}
