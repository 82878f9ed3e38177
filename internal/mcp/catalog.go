// ABOUTME: Static resource, tool, and prompt catalogs
// ABOUTME: Built once at startup and read-only for the server's lifetime

package mcp

import "encoding/json"

const mimeTypeJSON = "application/json"

var resourceCatalog = []Resource{
	{
		URI:         "weather://current",
		Name:        "Current Weather",
		Description: "Current weather data for any location",
		MimeType:    mimeTypeJSON,
	},
	{
		URI:         "weather://forecast",
		Name:        "Weather Forecast",
		Description: "Multi-day weather forecast",
		MimeType:    mimeTypeJSON,
	},
}

// Descriptive payloads served by resources/read. These describe how to reach
// the live data through tools/call; they are not live data themselves.
var resourcePayloads = map[string]map[string]any{
	"weather://current": {
		"description": "Current weather endpoint",
		"endpoint":    "/tools/call with name 'get_weather'",
		"parameters": map[string]any{
			"location": "string (required)",
			"units":    "string (optional, default: metric)",
		},
	},
	"weather://forecast": {
		"description": "Weather forecast endpoint",
		"endpoint":    "/tools/call with name 'get_forecast'",
		"parameters": map[string]any{
			"location": "string (required)",
			"days":     "integer (optional, default: 5)",
		},
	},
}

var toolCatalog = []Tool{
	{
		Name:        "get_weather",
		Description: "Get current weather for a location",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"location": {
					"type": "string",
					"description": "The location to get weather for"
				},
				"units": {
					"type": "string",
					"enum": ["metric", "imperial"],
					"description": "Temperature units",
					"default": "metric"
				}
			},
			"required": ["location"]
		}`),
	},
	{
		Name:        "get_forecast",
		Description: "Get weather forecast for a location",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"location": {
					"type": "string",
					"description": "The location to get forecast for"
				},
				"days": {
					"type": "integer",
					"description": "Number of days for forecast",
					"minimum": 1,
					"maximum": 7,
					"default": 5
				}
			},
			"required": ["location"]
		}`),
	},
	{
		Name:        "get_weather_insights",
		Description: "Get AI-powered weather insights and recommendations",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"location": {
					"type": "string",
					"description": "The location to analyze"
				},
				"activity": {
					"type": "string",
					"description": "Planned activity (optional)"
				}
			},
			"required": ["location"]
		}`),
	},
	{
		Name:        "get_weather_summary_advisory",
		Description: "Get comprehensive weather summary and travel advisory powered by AI",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"location": {
					"type": "string",
					"description": "The location to get summary and advisory for"
				}
			},
			"required": ["location"]
		}`),
	},
}

var promptCatalog = []Prompt{
	{
		Name:        "weather_analysis",
		Description: "Analyze weather conditions for activities",
		Arguments: []PromptArgument{
			{Name: "location", Description: "Location to analyze", Required: true},
			{Name: "activity", Description: "Planned activity", Required: false},
		},
	},
	{
		Name:        "outfit_recommendation",
		Description: "Recommend clothing based on weather",
		Arguments: []PromptArgument{
			{Name: "location", Description: "Location for recommendations", Required: true},
		},
	},
}

const weatherAnalysisTemplate = `
Analyze the current weather conditions in %s for %s.

Consider the following factors:
1. Temperature and feels-like temperature
2. Precipitation probability and conditions
3. Wind speed and direction
4. Humidity levels
5. UV index and sun exposure

Provide recommendations for:
- Safety considerations
- Optimal timing
- Equipment or preparation needed
- Alternative suggestions if conditions are unfavorable
`

const outfitRecommendationTemplate = `
Based on the current weather conditions in %s, recommend appropriate clothing and accessories.

Consider:
1. Temperature and wind chill
2. Precipitation and humidity
3. Sun exposure and UV levels
4. Seasonal factors

Provide specific recommendations for:
- Base layers and main clothing
- Outerwear requirements
- Footwear suggestions
- Accessories (hat, sunglasses, umbrella, etc.)
- Special considerations for different times of day
`
