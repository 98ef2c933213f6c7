package mcp

import (
	"ccm-mcp/internal/segment"
)

func (s *Server) handleSegmentProjects() (interface{}, error) {
	res := segment.Run(s.snapshot.Projects)

	payload := map[string]interface{}{
		"segmentation": res,
	}
	if res.Available {
		payload["_guidance"] = []string{
			"Cluster names bind to centroid volume rank: 'Pequeno Volume' is always the lower-volume group.",
			"Labels are a view-local annotation; the base project table is unchanged.",
		}
	}
	return payload, nil
}
