// ABOUTME: Rule-based fallback text used when no LLM backend is configured
// ABOUTME: Threshold bands and substring checks keyed off the current observation

package insights

import (
	"fmt"
	"strings"

	"github.com/harper/weather-mcp/internal/weather"
)

func ruleBasedInsights(obs *weather.Observation, activity string) string {
	var insights []string

	// Temperature bands
	switch {
	case obs.Temperature < 0:
		insights = append(insights, "⚠️ Freezing conditions - dress warmly and watch for ice.")
	case obs.Temperature < 10:
		insights = append(insights, "🧥 Cold weather - layer up and consider warm beverages.")
	case obs.Temperature < 20:
		insights = append(insights, "🌤️ Mild weather - light jacket recommended.")
	case obs.Temperature < 30:
		insights = append(insights, "☀️ Pleasant temperature - great weather for most activities.")
	default:
		insights = append(insights, "🌡️ Hot weather - stay hydrated and seek shade when possible.")
	}

	// Humidity bands
	if obs.Humidity > 80 {
		insights = append(insights, "💧 High humidity - expect to feel warmer than actual temperature.")
	} else if obs.Humidity < 30 {
		insights = append(insights, "🏜️ Low humidity - stay hydrated and consider moisturizer.")
	}

	// Wind bands
	if obs.WindSpeed > 10 {
		insights = append(insights, "💨 Strong winds - secure loose items and consider wind-resistant clothing.")
	} else if obs.WindSpeed > 5 {
		insights = append(insights, "🌬️ Moderate winds - light windbreaker might be helpful.")
	}

	desc := strings.ToLower(obs.Description)
	switch {
	case strings.Contains(desc, "rain"):
		insights = append(insights, "🌧️ Rainy conditions - bring umbrella and waterproof gear.")
	case strings.Contains(desc, "snow"):
		insights = append(insights, "❄️ Snowy conditions - wear non-slip footwear and drive carefully.")
	case strings.Contains(desc, "cloud"):
		insights = append(insights, "☁️ Cloudy skies - good for outdoor activities without strong sun.")
	case strings.Contains(desc, "clear") || strings.Contains(desc, "sunny"):
		insights = append(insights, "☀️ Clear skies - don't forget sunscreen and sunglasses.")
	}

	// Activity-specific recommendations
	switch strings.ToLower(activity) {
	case "running", "jogging", "exercise", "workout":
		if obs.Temperature > 25 {
			insights = append(insights, "🏃‍♂️ For exercise: Early morning or evening recommended due to heat.")
		} else if obs.Temperature < 5 {
			insights = append(insights, "🏃‍♂️ For exercise: Warm up indoors and dress in layers.")
		} else {
			insights = append(insights, "🏃‍♂️ For exercise: Great conditions for outdoor workouts!")
		}
	case "picnic", "outdoor", "park", "hiking":
		if strings.Contains(desc, "rain") {
			insights = append(insights, "🧺 For outdoor activities: Consider indoor alternatives or postpone.")
		} else {
			insights = append(insights, "🌳 For outdoor activities: Perfect weather for spending time outside!")
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weather Insights for %s:\n\n", obs.Location)
	for i, insight := range insights {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s", insight)
	}

	fmt.Fprintf(&b, "\n\nOverall: The current conditions are %s with a temperature of %g°C. ",
		obs.Description, obs.Temperature)

	switch {
	case obs.Temperature >= 15 && obs.Temperature <= 25 && obs.Humidity < 70:
		b.WriteString("These are ideal conditions for most outdoor activities!")
	case obs.Temperature < 5 || obs.Temperature > 35:
		b.WriteString("Weather conditions are challenging - take extra precautions.")
	default:
		b.WriteString("Generally pleasant conditions with minor considerations.")
	}

	return b.String()
}

func ruleBasedSummaryAndAdvisory(obs *weather.Observation) *SummaryAdvisory {
	var summary string
	switch {
	case obs.Temperature < 0:
		summary = fmt.Sprintf("❄️ Current conditions in %s are quite cold at %g°C with %s. Bundle up warmly as freezing temperatures can be uncomfortable for extended outdoor exposure.",
			obs.Location, obs.Temperature, obs.Description)
	case obs.Temperature < 10:
		summary = fmt.Sprintf("🧥 %s is experiencing cool weather at %g°C with %s. A warm jacket will keep you comfortable during outdoor activities.",
			obs.Location, obs.Temperature, obs.Description)
	case obs.Temperature < 25:
		summary = fmt.Sprintf("🌤️ Pleasant conditions in %s with %g°C and %s. Ideal weather for most outdoor activities with light layers recommended.",
			obs.Location, obs.Temperature, obs.Description)
	default:
		summary = fmt.Sprintf("☀️ Warm conditions in %s at %g°C with %s. Stay hydrated and seek shade during peak sun hours.",
			obs.Location, obs.Temperature, obs.Description)
	}

	desc := strings.ToLower(obs.Description)
	var items []string

	// Transportation
	switch {
	case strings.Contains(desc, "rain"):
		items = append(items, "🚗 Transportation: Exercise caution while driving due to wet road conditions. Allow extra travel time and maintain safe following distances.")
	case strings.Contains(desc, "snow"):
		items = append(items, "🚗 Transportation: Winter driving conditions present. Use winter tires if available and drive slowly on potentially icy roads.")
	case obs.WindSpeed > 15:
		items = append(items, "🚗 Transportation: Strong winds may affect vehicle stability, especially for high-profile vehicles. Secure loose items.")
	default:
		items = append(items, "🚗 Transportation: Good driving conditions with normal precautions recommended.")
	}

	// Clothing
	switch {
	case obs.Temperature < 0:
		items = append(items, "🧥 Clothing: Wear insulated winter clothing including hat, gloves, and warm boots. Layer clothing for temperature regulation.")
	case obs.Temperature < 10:
		items = append(items, "🧥 Clothing: Dress in warm layers with a jacket or coat. Don't forget a hat and gloves for comfort.")
	case obs.Temperature > 30:
		items = append(items, "👕 Clothing: Light, breathable clothing recommended. Wear sunscreen, hat, and sunglasses for sun protection.")
	default:
		items = append(items, "👕 Clothing: Comfortable layered clothing suitable for current temperature. Adjust layers as needed.")
	}

	// Health
	if obs.Humidity > 80 {
		items = append(items, "💧 Health: High humidity may make it feel warmer. Stay hydrated and take breaks in air-conditioned spaces if feeling overheated.")
	} else if obs.Humidity < 30 {
		items = append(items, "💧 Health: Low humidity may cause dry skin and respiratory discomfort. Use moisturizer and stay hydrated.")
	}

	// Safety
	if obs.Temperature > 30 {
		items = append(items, "🌡️ Safety: Hot weather advisory - limit outdoor exposure during midday hours (11 AM - 3 PM). Drink plenty of water.")
	} else if obs.Temperature < -10 {
		items = append(items, "❄️ Safety: Extreme cold warning - limit outdoor exposure. Watch for signs of frostbite and hypothermia.")
	}

	// Activity timing
	switch {
	case strings.Contains(desc, "rain"):
		items = append(items, "⏰ Activity Timing: Indoor activities recommended. If going outside, bring waterproof gear and umbrella.")
	case obs.Temperature > 25:
		items = append(items, "⏰ Activity Timing: Best outdoor activity times are early morning (6-9 AM) or evening (6-8 PM) to avoid peak heat.")
	default:
		items = append(items, "⏰ Activity Timing: Good conditions for outdoor activities throughout the day with normal precautions.")
	}

	return &SummaryAdvisory{
		Summary:   summary,
		Advisory:  strings.Join(items, "\n\n"),
		Location:  obs.Location,
		PoweredBy: poweredByMock,
	}
}

func outfitRecommendations(obs *weather.Observation) string {
	var recs []string

	// Base layer
	switch {
	case obs.Temperature < 0:
		recs = append(recs, "Base Layer: Thermal underwear and insulating layers")
	case obs.Temperature < 10:
		recs = append(recs, "Base Layer: Long sleeves and warm pants")
	case obs.Temperature < 20:
		recs = append(recs, "Base Layer: Light sweater or long sleeves")
	default:
		recs = append(recs, "Base Layer: T-shirt or light clothing")
	}

	desc := strings.ToLower(obs.Description)

	// Outer layer
	switch {
	case strings.Contains(desc, "rain"):
		recs = append(recs, "Outer Layer: Waterproof jacket or raincoat")
	case obs.Temperature < 5:
		recs = append(recs, "Outer Layer: Heavy winter coat")
	case obs.Temperature < 15:
		recs = append(recs, "Outer Layer: Jacket or warm sweater")
	case obs.WindSpeed > 8:
		recs = append(recs, "Outer Layer: Light windbreaker")
	}

	// Accessories
	var accessories []string
	if obs.Temperature < 10 {
		accessories = append(accessories, "warm hat", "gloves", "scarf")
	}
	if strings.Contains(desc, "rain") {
		accessories = append(accessories, "umbrella")
	}
	if strings.Contains(desc, "sun") || obs.Temperature > 20 {
		accessories = append(accessories, "sunglasses", "hat for sun protection")
	}
	if len(accessories) > 0 {
		recs = append(recs, fmt.Sprintf("Accessories: %s", strings.Join(accessories, ", ")))
	}

	// Footwear
	switch {
	case strings.Contains(desc, "snow"):
		recs = append(recs, "Footwear: Insulated, waterproof boots with good traction")
	case strings.Contains(desc, "rain"):
		recs = append(recs, "Footwear: Waterproof shoes or boots")
	case obs.Temperature > 25:
		recs = append(recs, "Footwear: Breathable, comfortable shoes")
	default:
		recs = append(recs, "Footwear: Weather-appropriate closed-toe shoes")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Outfit Recommendations for %s:\n", obs.Location)
	fmt.Fprintf(&b, "Current conditions: %s, %g°C\n\n", obs.Description, obs.Temperature)
	for i, rec := range recs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "• %s", rec)
	}

	return b.String()
}
