package mcp

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"ccm-mcp/internal/config"
	"ccm-mcp/internal/market"
	"ccm-mcp/internal/views"

	"github.com/rs/zerolog/log"
)

// JSONRPCRequest represents a standard MCP/JSON-RPC request.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse represents a standard MCP/JSON-RPC response.
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Server holds the state for the MCP server: the immutable dataset snapshot
// and a cache of view results.
type Server struct {
	cfg      *config.AppConfig
	snapshot *market.Snapshot
	cache    *views.Cache
}

// NewServer creates a new MCP server over an already-loaded snapshot.
func NewServer(cfg *config.AppConfig, snapshot *market.Snapshot) *Server {
	return &Server{
		cfg:      cfg,
		snapshot: snapshot,
		cache:    views.NewCache(),
	}
}

// Serve starts the JSON-RPC loop over Stdio.
func (s *Server) Serve() error {
	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal request")
			continue
		}

		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req JSONRPCRequest) {
	var result interface{}
	var errRes interface{}

	switch req.Method {
	case "initialize":
		result = map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities":    map[string]interface{}{},
			"serverInfo": map[string]interface{}{
				"name":    "ccm-mcp",
				"version": "0.1.0",
			},
		}
	case "tools/list":
		result = s.listTools()
	case "tools/call":
		result, errRes = s.callTool(req.Params)
	default:
		errRes = map[string]interface{}{
			"code":    -32601,
			"message": fmt.Sprintf("Method %s not found", req.Method),
		}
	}

	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
		Error:   errRes,
	}

	out, _ := json.Marshal(resp)
	fmt.Fprintf(os.Stdout, "%s\n", out)
}

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	data, err := s.dispatch(call.Name, call.Arguments)
	if err != nil {
		if err == errToolNotFound {
			return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
		}
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": s.formatResult(data),
			},
		},
	}, nil
}

// dispatch routes a tool call, memoizing pure view computations keyed by
// snapshot fingerprint, tool name and effective arguments.
func (s *Server) dispatch(name string, args map[string]interface{}) (interface{}, error) {
	argsJSON, _ := json.Marshal(args)
	key := views.Key(s.snapshot.Fingerprint, name, string(argsJSON))
	if cached, ok := s.cache.Get(key); ok {
		log.Debug().Str("tool", name).Msg("Serving memoized view result")
		return cached, nil
	}

	var data interface{}
	var err error

	switch name {
	case "get_dataset_overview":
		data, err = s.handleDatasetOverview()
	case "list_implementation_years":
		data, err = s.handleListYears()
	case "explore_year":
		data, err = s.handleExploreYear(args)
	case "get_market_timeline":
		data, err = s.handleMarketTimeline(args)
	case "get_geo_distribution":
		data, err = s.handleGeoDistribution(args)
	case "get_pricing_model_report":
		data, err = s.handlePricingModelReport()
	case "estimate_credit_price":
		data, err = s.handleEstimateCreditPrice(args)
	case "segment_projects":
		data, err = s.handleSegmentProjects()
	case "list_emission_activities":
		data, err = s.handleListActivities()
	case "calculate_emissions":
		data, err = s.handleCalculateEmissions(args)
	default:
		return nil, errToolNotFound
	}

	if err != nil {
		return nil, err
	}

	s.cache.Put(key, data)
	return data, nil
}

func (s *Server) formatResult(data interface{}) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}
