package market

import (
	"encoding/json"
	"fmt"
	"os"
)

// Feature is one boundary polygon. Geometry is carried opaquely; only the
// name property participates in aggregation.
type Feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry,omitempty"`
}

// Name returns the feature's properties.name, or "" when absent.
func (f Feature) Name() string {
	name, _ := f.Properties["name"].(string)
	return name
}

// FeatureCollection is the boundary dataset for the choropleth view.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// LoadBoundaries reads the boundary GeoJSON file. A missing file returns
// (nil, nil): the geographic view degrades, the rest of the dashboard stays
// functional.
func LoadBoundaries(path string) (*FeatureCollection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading boundary file %q: %w", path, err)
	}

	var fc FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parsing boundary file %q: %w", path, err)
	}
	return &fc, nil
}
