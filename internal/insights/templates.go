// ABOUTME: Prompt templates for AI-generated insights and advisories
// ABOUTME: Rendered with current observation values before each completion call

package insights

import (
	"fmt"

	"github.com/harper/weather-mcp/internal/weather"
)

const insightsTemplate = `
Based on the current weather conditions in %s:
- Temperature: %g°C
- Conditions: %s
- Humidity: %d%%
- Wind Speed: %g m/s

Provide practical insights and recommendations for %s.
Consider safety, comfort, and optimal timing.
Be specific and actionable in your advice.

Insights:
`

const summaryTemplate = `
Provide a concise, professional weather summary for %s with current conditions:
- Temperature: %g°C
- Conditions: %s
- Humidity: %d%%
- Wind Speed: %g m/s

Create a 2-3 sentence weather summary that captures the current conditions and general comfort level.
Focus on what people would experience if they stepped outside right now.

Weather Summary:
`

const advisoryTemplate = `
Based on the current weather conditions in %s:
- Temperature: %g°C
- Conditions: %s
- Humidity: %d%%
- Wind Speed: %g m/s

Provide specific travel and safety advisories. Include:
1. Transportation considerations (driving, walking, public transport)
2. What to wear and bring
3. Health and safety precautions
4. Best times for outdoor activities
5. Any weather-related warnings or alerts

Be practical and specific. Use emojis for visual appeal.

Travel Advisory:
`

func renderInsightsPrompt(obs *weather.Observation, activity string) string {
	return fmt.Sprintf(insightsTemplate,
		obs.Location, obs.Temperature, obs.Description, obs.Humidity, obs.WindSpeed, activity)
}

func renderSummaryPrompt(obs *weather.Observation) string {
	return fmt.Sprintf(summaryTemplate,
		obs.Location, obs.Temperature, obs.Description, obs.Humidity, obs.WindSpeed)
}

func renderAdvisoryPrompt(obs *weather.Observation) string {
	return fmt.Sprintf(advisoryTemplate,
		obs.Location, obs.Temperature, obs.Description, obs.Humidity, obs.WindSpeed)
}
