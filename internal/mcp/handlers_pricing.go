package mcp

import (
	"fmt"

	"ccm-mcp/internal/regression"
)

func (s *Server) handlePricingModelReport() (interface{}, error) {
	return map[string]interface{}{
		"report": regression.ModelReport(),
		"_guidance": []string{
			"These figures are the published model run; they are not recomputed from the loaded dataset.",
			"Use 'estimate_credit_price' to apply the model to hypothetical projects.",
		},
	}, nil
}

func (s *Server) handleEstimateCreditPrice(args map[string]interface{}) (interface{}, error) {
	co2Volume, ok := asFloat(args["co2_volume"])
	if !ok {
		return nil, fmt.Errorf("missing required argument 'co2_volume'")
	}
	duration, ok := asInt(args["project_duration"])
	if !ok {
		return nil, fmt.Errorf("missing required argument 'project_duration'")
	}
	projectType := asString(args["project_type"])
	if projectType == "" {
		return nil, fmt.Errorf("missing required argument 'project_type'")
	}

	price, err := regression.EstimatePrice(co2Volume, duration, projectType)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"estimated_price":  price,
		"co2_volume":       co2Volume,
		"project_duration": duration,
		"project_type":     projectType,
	}, nil
}
