// ABOUTME: HTTP handlers for the /mcp and /health endpoints
// ABOUTME: Translates HTTP requests to protocol envelopes and back

package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/harper/weather-mcp/internal/errors"
	"github.com/harper/weather-mcp/internal/jsonrpc"
	"github.com/harper/weather-mcp/internal/logger"
)

func (s *Server) handleMCP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeResponse(w, jsonrpc.NewErrorResponse(nil,
			errors.NewInvalidParamsError("failed to read request body")))
		return
	}
	defer func() { _ = r.Body.Close() }()

	var req jsonrpc.Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeResponse(w, jsonrpc.NewErrorResponse(nil,
			errors.NewInvalidParamsError("Invalid request: malformed JSON")))
		return
	}

	writeResponse(w, s.dispatcher.Dispatch(r.Context(), &req))
}

// handleHealth stays reachable without going through the dispatcher.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "MCP Weather Server",
	}); err != nil {
		logger.Error("Error encoding health response: %v", err)
	}
}

func writeResponse(w http.ResponseWriter, resp *jsonrpc.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK) // JSON-RPC errors still return 200
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error("Error encoding response: %v", err)
	}
}
