package mcp

import (
	"fmt"

	"ccm-mcp/internal/emissions"
)

func (s *Server) handleListActivities() (interface{}, error) {
	return map[string]interface{}{
		"activities": emissions.Activities(),
	}, nil
}

func (s *Server) handleCalculateEmissions(args map[string]interface{}) (interface{}, error) {
	activity := asString(args["activity"])
	if activity == "" {
		return nil, fmt.Errorf("missing required argument 'activity'")
	}
	quantity, ok := asFloat(args["quantity"])
	if !ok {
		return nil, fmt.Errorf("missing required argument 'quantity'")
	}

	est, err := emissions.Calculate(activity, quantity)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"estimate": est,
		"_guidance": []string{
			fmt.Sprintf("Roughly %.1f trees growing for a year would absorb this quantity of CO₂.", est.TreeYears),
		},
	}, nil
}
