// ABOUTME: HTTP server for the synchronous MCP transport
// ABOUTME: One envelope in, one envelope out, no state held across calls

package httpapi

import (
	"net/http"

	"github.com/harper/weather-mcp/internal/config"
	"github.com/harper/weather-mcp/internal/mcp"
)

type Server struct {
	dispatcher *mcp.Dispatcher
	mux        *http.ServeMux
	cors       config.CORSConfig
}

func NewServer(d *mcp.Dispatcher, cors config.CORSConfig) *Server {
	s := &Server{
		dispatcher: d,
		mux:        http.NewServeMux(),
		cors:       cors,
	}

	s.mux.HandleFunc("/mcp", s.handleMCP)
	s.mux.HandleFunc("/health", s.handleHealth)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.withCORS(s.mux).ServeHTTP(w, r)
}
