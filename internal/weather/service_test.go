// ABOUTME: Tests for the weather provider mock path and forecast synthesis
// ABOUTME: Upstream behavior is covered with an httptest stand-in

package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockWeatherDeterministic(t *testing.T) {
	s := NewService("")

	first, err := s.Current(context.Background(), "Paris", UnitsMetric)
	require.NoError(t, err)
	second, err := s.Current(context.Background(), "Paris", UnitsMetric)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "Paris", first.Location)
	assert.Equal(t, 18.7, first.Temperature)
	assert.Equal(t, "overcast", first.Description)
	assert.Equal(t, 71, first.Humidity)
	assert.Equal(t, 3.5, first.WindSpeed)
}

func TestMockWeatherCaseInsensitive(t *testing.T) {
	s := NewService("")

	upper, err := s.Current(context.Background(), "LONDON", UnitsMetric)
	require.NoError(t, err)
	lower, err := s.Current(context.Background(), "london", UnitsMetric)
	require.NoError(t, err)

	assert.Equal(t, upper.Temperature, lower.Temperature)
	assert.Equal(t, "London", lower.Location)
	assert.Equal(t, "London", upper.Location)
}

func TestMockWeatherUnknownLocationDefaults(t *testing.T) {
	s := NewService("")

	obs, err := s.Current(context.Background(), "Ulaanbaatar", UnitsMetric)
	require.NoError(t, err)

	assert.Equal(t, "Ulaanbaatar", obs.Location)
	assert.Equal(t, 20.0, obs.Temperature)
	assert.Equal(t, "partly cloudy", obs.Description)
	assert.Equal(t, 60, obs.Humidity)
	assert.Equal(t, 3.0, obs.WindSpeed)
}

func TestImperialConversion(t *testing.T) {
	s := NewService("")

	obs, err := s.Current(context.Background(), "Paris", UnitsImperial)
	require.NoError(t, err)

	// 18.7 * 9/5 + 32 = 65.66, rounded to one decimal
	assert.Equal(t, 65.7, obs.Temperature)
	assert.Equal(t, UnitsImperial, obs.Units)
	// Only temperature is converted
	assert.Equal(t, 3.5, obs.WindSpeed)
}

func TestEmptyUnitsDefaultsToMetric(t *testing.T) {
	s := NewService("")

	obs, err := s.Current(context.Background(), "Tokyo", "")
	require.NoError(t, err)
	assert.Equal(t, UnitsMetric, obs.Units)
	assert.Equal(t, 28.3, obs.Temperature)
}

func TestForecastShape(t *testing.T) {
	s := NewService("")

	report, err := s.Forecast(context.Background(), "New York", 5)
	require.NoError(t, err)

	assert.Equal(t, "New York", report.Location)
	assert.Equal(t, UnitsMetric, report.Units)
	require.Len(t, report.Forecast, 5)

	prevDate := ""
	for i, day := range report.Forecast {
		assert.Equal(t, i+1, day.Day)
		assert.Greater(t, day.Date, prevDate, "dates must strictly increase")
		prevDate = day.Date
		assert.Equal(t, "partly cloudy", day.Description)
		assert.GreaterOrEqual(t, day.Humidity, 30)
		assert.LessOrEqual(t, day.Humidity, 90)
		assert.GreaterOrEqual(t, day.WindSpeed, 0.0)
	}

	// base 22.5, day i gets (i-2)*2
	assert.Equal(t, 18.5, report.Forecast[0].Temperature)
	assert.Equal(t, 22.5, report.Forecast[2].Temperature)
	assert.Equal(t, 26.5, report.Forecast[4].Temperature)
	assert.Equal(t, "2024-01-15", report.Forecast[0].Date)
	assert.Equal(t, "2024-01-19", report.Forecast[4].Date)
}

func TestForecastExactDayCount(t *testing.T) {
	s := NewService("")

	for _, days := range []int{1, 3, 7} {
		report, err := s.Forecast(context.Background(), "Sydney", days)
		require.NoError(t, err)
		assert.Len(t, report.Forecast, days)
	}
}

func TestForecastNonPositiveDays(t *testing.T) {
	s := NewService("")

	for _, days := range []int{0, -1, -100} {
		report, err := s.Forecast(context.Background(), "Sydney", days)
		require.NoError(t, err, "days=%d", days)
		assert.Empty(t, report.Forecast, "days=%d", days)
		assert.Equal(t, "Sydney", report.Location)
	}
}

func TestUpstreamFetch(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Berlin", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"name": "Berlin",
			"main": map[string]any{"temp": 11.2, "humidity": 80},
			"weather": []map[string]any{
				{"description": "drizzle"},
			},
			"wind": map[string]any{"speed": 6.1},
		})
	}))
	defer upstream.Close()

	s := NewService("test-key", WithBaseURL(upstream.URL))

	obs, err := s.Current(context.Background(), "Berlin", UnitsMetric)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", obs.Location)
	assert.Equal(t, 11.2, obs.Temperature)
	assert.Equal(t, "drizzle", obs.Description)
	assert.Equal(t, 80, obs.Humidity)
	assert.Equal(t, 6.1, obs.WindSpeed)
}

func TestUpstreamFailureFallsBackToMock(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer upstream.Close()

	s := NewService("test-key", WithBaseURL(upstream.URL))

	obs, err := s.Current(context.Background(), "Paris", UnitsMetric)
	require.NoError(t, err)
	assert.Equal(t, 18.7, obs.Temperature)
	assert.Equal(t, "overcast", obs.Description)
}
