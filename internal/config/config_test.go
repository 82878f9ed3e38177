// ABOUTME: Tests for configuration loading and defaults
// ABOUTME: Covers file values, env overrides, and missing-file fallback

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Server.HTTPPort != 8000 {
		t.Errorf("expected http_port 8000, got %d", cfg.Server.HTTPPort)
	}
	if cfg.Weather.BaseURL != "http://api.openweathermap.org/data/2.5" {
		t.Errorf("unexpected weather base_url: %s", cfg.Weather.BaseURL)
	}
	if cfg.Insights.Model != "gpt-3.5-turbo-instruct" {
		t.Errorf("unexpected insights model: %s", cfg.Insights.Model)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Errorf("expected 2 default origins, got %d", len(cfg.CORS.AllowedOrigins))
	}
}

func TestLoadConfig(t *testing.T) {
	content := `
server:
  http_port: 9000
  websocket_port: 9001
weather:
  api_key: "file-key"
insights:
  max_tokens: 256
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Server.HTTPPort != 9000 {
		t.Errorf("expected http_port 9000, got %d", cfg.Server.HTTPPort)
	}
	if cfg.Weather.APIKey != "file-key" {
		t.Errorf("expected api_key 'file-key', got %s", cfg.Weather.APIKey)
	}
	if cfg.Insights.MaxTokens != 256 {
		t.Errorf("expected max_tokens 256, got %d", cfg.Insights.MaxTokens)
	}

	// Unset keys keep their defaults
	if cfg.Insights.Model != "gpt-3.5-turbo-instruct" {
		t.Errorf("expected default model preserved, got %s", cfg.Insights.Model)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Server.HTTPPort != 8000 {
		t.Errorf("expected default http_port, got %d", cfg.Server.HTTPPort)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "env-weather")
	t.Setenv("OPENAI_API_KEY", "env-openai")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Weather.APIKey != "env-weather" {
		t.Errorf("expected env weather key, got %s", cfg.Weather.APIKey)
	}
	if cfg.Insights.OpenAIAPIKey != "env-openai" {
		t.Errorf("expected env openai key, got %s", cfg.Insights.OpenAIAPIKey)
	}
}

func TestInvalidPortRejected(t *testing.T) {
	content := `
server:
  http_port: -1
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid port")
	}
}

func TestRedacted(t *testing.T) {
	cfg := Default()
	cfg.Weather.APIKey = "secret"
	cfg.Insights.OpenAIAPIKey = "also-secret"

	red := cfg.Redacted()
	if red.Weather.APIKey == "secret" || red.Insights.OpenAIAPIKey == "also-secret" {
		t.Error("credentials not redacted")
	}
	// Original untouched
	if cfg.Weather.APIKey != "secret" {
		t.Error("Redacted mutated the original config")
	}
}

func TestDefaultYAML(t *testing.T) {
	out, err := DefaultYAML()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, key := range []string{"http_port", "websocket_port", "base_url", "allowed_origins"} {
		if !strings.Contains(out, key) {
			t.Errorf("default YAML missing %q", key)
		}
	}
}
