// ABOUTME: Weather provider backed by OpenWeatherMap with an offline mock fallback
// ABOUTME: Mock values are deterministic so the server works unconfigured

package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/harper/weather-mcp/internal/logger"
)

const (
	UnitsMetric   = "metric"
	UnitsImperial = "imperial"

	defaultBaseURL = "http://api.openweathermap.org/data/2.5"
)

// Observation is a snapshot of current conditions for one location.
type Observation struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Units       string  `json:"units"`
}

// ForecastDay is one synthesized day within a forecast report.
type ForecastDay struct {
	Day         int     `json:"day"`
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

type ForecastReport struct {
	Location string        `json:"location"`
	Forecast []ForecastDay `json:"forecast"`
	Units    string        `json:"units"`
}

// Service fetches weather data from the upstream API when a key is
// configured, and degrades to the mock table when it is not or when the
// upstream call fails.
type Service struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Service)

func WithBaseURL(u string) Option {
	return func(s *Service) { s.baseURL = u }
}

func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.httpClient.Timeout = d }
}

func NewService(apiKey string, opts ...Option) *Service {
	s := &Service{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type mockEntry struct {
	temp     float64
	desc     string
	humidity int
	wind     float64
}

// Keyed by lowercase location name. Unknown locations get defaultMock.
var mockTable = map[string]mockEntry{
	"new york": {temp: 22.5, desc: "partly cloudy", humidity: 65, wind: 3.2},
	"london":   {temp: 15.8, desc: "light rain", humidity: 78, wind: 4.1},
	"tokyo":    {temp: 28.3, desc: "sunny", humidity: 52, wind: 2.8},
	"paris":    {temp: 18.7, desc: "overcast", humidity: 71, wind: 3.5},
	"sydney":   {temp: 25.1, desc: "clear sky", humidity: 58, wind: 4.5},
}

var defaultMock = mockEntry{temp: 20.0, desc: "partly cloudy", humidity: 60, wind: 3.0}

var titleCaser = cases.Title(language.English)

// Current returns current conditions for location in the requested units.
// The mock path never fails; an upstream failure degrades to it with a
// warning rather than surfacing an error.
func (s *Service) Current(ctx context.Context, location, units string) (*Observation, error) {
	if units == "" {
		units = UnitsMetric
	}

	if s.apiKey == "" {
		return s.mockWeather(location, units), nil
	}

	obs, err := s.fetchCurrent(ctx, location, units)
	if err != nil {
		logger.Warn("Error fetching weather data from API: %v. Falling back to mock data.", err)
		return s.mockWeather(location, units), nil
	}
	return obs, nil
}

func (s *Service) fetchCurrent(ctx context.Context, location, units string) (*Observation, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", s.apiKey)
	q.Set("units", units)

	reqURL := fmt.Sprintf("%s/weather?%s", s.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("weather API error (status %d): %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Name string `json:"name"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if len(payload.Weather) == 0 {
		return nil, fmt.Errorf("weather API returned no conditions for %q", location)
	}

	return &Observation{
		Location:    payload.Name,
		Temperature: payload.Main.Temp,
		Description: payload.Weather[0].Description,
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		Units:       units,
	}, nil
}

func (s *Service) mockWeather(location, units string) *Observation {
	entry, ok := mockTable[strings.ToLower(location)]
	if !ok {
		entry = defaultMock
	}

	temperature := entry.temp
	if units == UnitsImperial {
		temperature = round1(temperature*9/5 + 32)
	}

	return &Observation{
		Location:    titleCaser.String(location),
		Temperature: temperature,
		Description: entry.desc,
		Humidity:    entry.humidity,
		WindSpeed:   entry.wind,
		Units:       units,
	}
}

// Forecast synthesizes a days-long report from current conditions. Dates and
// per-day deltas are fixed so repeated calls are identical. The report is
// always metric, matching the current-conditions fetch it is derived from.
func (s *Service) Forecast(ctx context.Context, location string, days int) (*ForecastReport, error) {
	base, err := s.Current(ctx, location, UnitsMetric)
	if err != nil {
		return nil, err
	}

	// Non-positive day counts yield an empty report rather than an error.
	if days < 0 {
		days = 0
	}

	forecast := make([]ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		forecast = append(forecast, ForecastDay{
			Day:         i + 1,
			Date:        fmt.Sprintf("2024-01-%02d", 15+i),
			Temperature: base.Temperature + float64((i-2)*2),
			Description: base.Description,
			Humidity:    clampInt(base.Humidity+i*3, 30, 90),
			WindSpeed:   math.Max(0, base.WindSpeed+float64(i)*0.5),
		})
	}

	return &ForecastReport{
		Location: base.Location,
		Forecast: forecast,
		Units:    base.Units,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
