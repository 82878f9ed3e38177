// ABOUTME: Management API for health monitoring and config introspection
// ABOUTME: Lives on its own port and never touches the dispatcher

package management

import (
	"encoding/json"
	"net/http"

	"gopkg.in/yaml.v3"

	"github.com/harper/weather-mcp/internal/config"
	"github.com/harper/weather-mcp/internal/logger"
)

type Server struct {
	config *config.Config
	mux    *http.ServeMux
}

func NewServer(cfg *config.Config) *Server {
	s := &Server{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/config", s.handleConfig)

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]any{
		"status":              "healthy",
		"service":             "MCP Weather Server",
		"weather_configured":  s.config.Weather.APIKey != "",
		"insights_configured": s.config.Insights.OpenAIAPIKey != "",
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(health); err != nil {
		logger.Error("Error encoding health response: %v", err)
	}
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	redacted := s.config.Redacted()

	if r.URL.Query().Get("format") == "yaml" {
		data, err := yaml.Marshal(redacted)
		if err != nil {
			http.Error(w, "failed to marshal config", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(data)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(redacted); err != nil {
		logger.Error("Error encoding config response: %v", err)
	}
}
