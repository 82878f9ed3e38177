// ABOUTME: Configuration loading and management for the weather MCP server
// ABOUTME: Supports YAML files and environment variable overrides

package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server" yaml:"server" json:"server"`
	Weather  WeatherConfig  `mapstructure:"weather" yaml:"weather" json:"weather"`
	Insights InsightsConfig `mapstructure:"insights" yaml:"insights" json:"insights"`
	CORS     CORSConfig     `mapstructure:"cors" yaml:"cors" json:"cors"`
}

type ServerConfig struct {
	HTTPHost       string `mapstructure:"http_host" yaml:"http_host" json:"http_host"`
	HTTPPort       int    `mapstructure:"http_port" yaml:"http_port" json:"http_port"`
	WebSocketHost  string `mapstructure:"websocket_host" yaml:"websocket_host" json:"websocket_host"`
	WebSocketPort  int    `mapstructure:"websocket_port" yaml:"websocket_port" json:"websocket_port"`
	ManagementHost string `mapstructure:"management_host" yaml:"management_host" json:"management_host"`
	ManagementPort int    `mapstructure:"management_port" yaml:"management_port" json:"management_port"`
}

type WeatherConfig struct {
	APIKey                string `mapstructure:"api_key" yaml:"api_key" json:"api_key"`
	BaseURL               string `mapstructure:"base_url" yaml:"base_url" json:"base_url"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds" json:"request_timeout_seconds"`
}

type InsightsConfig struct {
	OpenAIAPIKey          string  `mapstructure:"openai_api_key" yaml:"openai_api_key" json:"openai_api_key"`
	Model                 string  `mapstructure:"model" yaml:"model" json:"model"`
	MaxTokens             int     `mapstructure:"max_tokens" yaml:"max_tokens" json:"max_tokens"`
	Temperature           float64 `mapstructure:"temperature" yaml:"temperature" json:"temperature"`
	RequestTimeoutSeconds int     `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds" json:"request_timeout_seconds"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins" yaml:"allowed_origins" json:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins" yaml:"allow_all_origins" json:"allow_all_origins"`
}

// Default returns the configuration used when no file is given. The server is
// fully operational with it: both providers run in offline-mock mode.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPHost:       "0.0.0.0",
			HTTPPort:       8000,
			WebSocketHost:  "0.0.0.0",
			WebSocketPort:  8001,
			ManagementHost: "127.0.0.1",
			ManagementPort: 8002,
		},
		Weather: WeatherConfig{
			BaseURL:               "http://api.openweathermap.org/data/2.5",
			RequestTimeoutSeconds: 10,
		},
		Insights: InsightsConfig{
			Model:                 "gpt-3.5-turbo-instruct",
			MaxTokens:             500,
			Temperature:           0.7,
			RequestTimeoutSeconds: 30,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://127.0.0.1:3000",
			},
		},
	}
}

// DefaultYAML renders the default configuration as a YAML document.
func DefaultYAML() (string, error) {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return "", fmt.Errorf("marshal default config: %w", err)
	}
	return string(data), nil
}

// Load reads configuration from path, falling back to Default when path is
// empty or the file does not exist. WEATHER_API_KEY and OPENAI_API_KEY
// environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v := viper.New()
			v.SetConfigFile(path)
			v.SetConfigType("yaml")

			if err := v.ReadInConfig(); err != nil {
				return nil, err
			}

			if err := v.Unmarshal(cfg); err != nil {
				return nil, err
			}
		}
	}

	if key := os.Getenv("WEATHER_API_KEY"); key != "" {
		cfg.Weather.APIKey = key
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		cfg.Insights.OpenAIAPIKey = key
	}

	if cfg.Server.HTTPPort <= 0 || cfg.Server.HTTPPort > 65535 {
		return nil, fmt.Errorf("invalid server.http_port: %d", cfg.Server.HTTPPort)
	}
	if cfg.Server.WebSocketPort <= 0 || cfg.Server.WebSocketPort > 65535 {
		return nil, fmt.Errorf("invalid server.websocket_port: %d", cfg.Server.WebSocketPort)
	}

	return cfg, nil
}

// Redacted returns a copy safe for introspection endpoints: credentials are
// masked, never echoed.
func (c *Config) Redacted() *Config {
	out := *c
	if out.Weather.APIKey != "" {
		out.Weather.APIKey = "********"
	}
	if out.Insights.OpenAIAPIKey != "" {
		out.Insights.OpenAIAPIKey = "********"
	}
	return &out
}
