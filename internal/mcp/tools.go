package mcp

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "get_dataset_overview",
				"description": "Headline metrics for the whole carbon-credit dataset: distinct projects, total CO₂ reduced (millions of tonnes), countries involved. Guidance: call 'list_implementation_years' next to pick a year for detailed exploration.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "list_implementation_years",
				"description": "List the distinct implementation years present in the dataset, newest first. Year 0 marks undated projects.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "explore_year",
				"description": "Explore one implementation year: summary metrics, project-count histogram by type, price statistics per type, and a volume-vs-price scatter sample. Inputs above 2000 rows are reduced to a deterministic fixed-seed sample.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"year": map[string]interface{}{"type": "integer", "description": "Implementation year to analyze (see list_implementation_years)"},
					},
					"required": []string{"year"},
				},
			},
			map[string]interface{}{
				"name":        "get_market_timeline",
				"description": "Monthly market dynamics: transacted volume summed and price averaged per calendar month, optionally bounded by a date range. Degrades to an 'unavailable' payload when the credits table carries no transaction dates.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"start_date": map[string]interface{}{"type": "string", "description": "Optional: period start (YYYY-MM-DD)"},
						"end_date":   map[string]interface{}{"type": "string", "description": "Optional: period end (YYYY-MM-DD, inclusive)"},
					},
				},
			},
			map[string]interface{}{
				"name":        "get_geo_distribution",
				"description": "Per-country aggregation for the choropleth: either total CO₂ reduced or the number of distinct projects, attached onto the boundary dataset by country name. Unmatched boundaries carry 0.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"metric": map[string]interface{}{"type": "string", "enum": []string{"co2_reduced", "project_count"}, "description": "Aggregation mode (default co2_reduced)"},
					},
				},
			},
			map[string]interface{}{
				"name":        "get_pricing_model_report",
				"description": "The published OLS pricing-factor model: fit quality, coefficient table and diagnostics. These figures are the published model run, not a live computation.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "estimate_credit_price",
				"description": "Estimate a credit price from the published linear model: CO₂ volume, project duration and project type. The estimate is clamped at zero.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"co2_volume":       map[string]interface{}{"type": "number", "description": "CO₂ volume in tonnes (≥ 0)"},
						"project_duration": map[string]interface{}{"type": "integer", "description": "Project duration in years (≥ 1)"},
						"project_type":     map[string]interface{}{"type": "string", "description": "Project type; 'Forestry' and 'Renewable Energy' carry model uplifts"},
					},
					"required": []string{"co2_volume", "project_duration", "project_type"},
				},
			},
			map[string]interface{}{
				"name":        "segment_projects",
				"description": "Partition all projects into two volume/duration profiles via fixed-seed k-means. Cluster names bind to centroid volume rank, so 'Pequeno Volume' is always the lower-volume group. Reports an insufficient-data notice below 2 projects.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "list_emission_activities",
				"description": "List the supported emission activities with their factors and units.",
				"inputSchema": map[string]interface{}{
					"type":       "object",
					"properties": map[string]interface{}{},
				},
			},
			map[string]interface{}{
				"name":        "calculate_emissions",
				"description": "Estimate the CO₂e footprint of consuming a quantity of one activity, plus the tree-years needed to absorb it.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"activity": map[string]interface{}{"type": "string", "description": "Activity name (see list_emission_activities)"},
						"quantity": map[string]interface{}{"type": "number", "description": "Quantity consumed in the activity's unit (≥ 0)"},
					},
					"required": []string{"activity", "quantity"},
				},
			},
		},
	}
}
