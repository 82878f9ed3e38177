// ABOUTME: Insight provider generating weather advice via OpenAI completions
// ABOUTME: Degrades to deterministic rule-based text when no backend is configured

package insights

import (
	"context"
	"strings"

	"github.com/harper/weather-mcp/internal/logger"
	"github.com/harper/weather-mcp/internal/weather"
)

const (
	poweredByAI   = "OpenAI GPT"
	poweredByMock = "Mock Data (Add OpenAI API key for AI-powered insights)"
)

// SummaryAdvisory is a two-part report: a short conditions summary and a
// travel advisory for one location.
type SummaryAdvisory struct {
	Summary   string `json:"summary"`
	Advisory  string `json:"advisory"`
	Location  string `json:"location"`
	PoweredBy string `json:"powered_by"`
}

// Service generates natural-language weather insights. The rule-based
// fallback path never fails, so neither does the service as a whole.
type Service struct {
	weather *weather.Service
	llm     *Client

	model       string
	maxTokens   int
	temperature float64
}

type Option func(*Service)

func WithModel(model string) Option {
	return func(s *Service) { s.model = model }
}

func WithMaxTokens(n int) Option {
	return func(s *Service) { s.maxTokens = n }
}

func WithTemperature(t float64) Option {
	return func(s *Service) { s.temperature = t }
}

func NewService(ws *weather.Service, openAIKey string, opts ...Option) *Service {
	s := &Service{
		weather:     ws,
		model:       "gpt-3.5-turbo-instruct",
		maxTokens:   500,
		temperature: 0.7,
	}
	if openAIKey != "" {
		s.llm = NewClient(openAIKey)
	} else {
		logger.Warn("No OpenAI API key found. AI insights will use mock responses.")
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WeatherInsights generates recommendations for an activity at a location.
func (s *Service) WeatherInsights(ctx context.Context, location, activity string) (string, error) {
	obs, err := s.weather.Current(ctx, location, weather.UnitsMetric)
	if err != nil {
		return "", err
	}

	if s.llm != nil {
		text, err := s.llm.Complete(ctx, CompletionRequest{
			Model:       s.model,
			Prompt:      renderInsightsPrompt(obs, activity),
			MaxTokens:   s.maxTokens,
			Temperature: s.temperature,
		})
		if err == nil {
			return strings.TrimSpace(text), nil
		}
		logger.Error("Error generating AI insights: %v", err)
	}

	return ruleBasedInsights(obs, activity), nil
}

// SummaryAndAdvisory generates the two-part summary and travel advisory.
func (s *Service) SummaryAndAdvisory(ctx context.Context, location string) (*SummaryAdvisory, error) {
	obs, err := s.weather.Current(ctx, location, weather.UnitsMetric)
	if err != nil {
		return nil, err
	}

	if s.llm != nil {
		result, err := s.aiSummaryAndAdvisory(ctx, obs)
		if err == nil {
			return result, nil
		}
		logger.Error("Error generating AI summary and advisory: %v", err)
	}

	return ruleBasedSummaryAndAdvisory(obs), nil
}

func (s *Service) aiSummaryAndAdvisory(ctx context.Context, obs *weather.Observation) (*SummaryAdvisory, error) {
	summary, err := s.llm.Complete(ctx, CompletionRequest{
		Model:       s.model,
		Prompt:      renderSummaryPrompt(obs),
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return nil, err
	}

	advisory, err := s.llm.Complete(ctx, CompletionRequest{
		Model:       s.model,
		Prompt:      renderAdvisoryPrompt(obs),
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return nil, err
	}

	return &SummaryAdvisory{
		Summary:   strings.TrimSpace(summary),
		Advisory:  strings.TrimSpace(advisory),
		Location:  obs.Location,
		PoweredBy: poweredByAI,
	}, nil
}

// OutfitRecommendations produces deterministic clothing advice for the
// current conditions at a location.
func (s *Service) OutfitRecommendations(ctx context.Context, location string) (string, error) {
	obs, err := s.weather.Current(ctx, location, weather.UnitsMetric)
	if err != nil {
		return "", err
	}
	return outfitRecommendations(obs), nil
}
