// ABOUTME: Tool invocation handler bridging tools/call to the providers
// ABOUTME: Keeps envelope-level errors and tool-level failures on separate channels

package mcp

import (
	"context"
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/harper/weather-mcp/internal/errors"
	"github.com/harper/weather-mcp/internal/jsonrpc"
	"github.com/harper/weather-mcp/internal/logger"
	"github.com/harper/weather-mcp/internal/weather"
)

var errLocationRequired = goerrors.New("Location is required")

// handleCallTool validates the invocation shell at the envelope level, then
// runs the tool. An unknown tool name is a protocol error (-32601); a known
// tool that fails reports through the ToolOutcome channel instead.
func (d *Dispatcher) handleCallTool(ctx context.Context, req *jsonrpc.Request) (any, *jsonrpc.Error) {
	params, rpcErr := paramsMap(req)
	if rpcErr != nil {
		return nil, rpcErr
	}

	name, ok := identParam(params, "name")
	if !ok {
		return nil, errors.NewInvalidParamsError("Missing tool name")
	}

	arguments, _ := params["arguments"].(map[string]any)
	if arguments == nil {
		arguments = map[string]any{}
	}

	var run func(context.Context, map[string]any) (string, error)
	switch name {
	case "get_weather":
		run = d.runGetWeather
	case "get_forecast":
		run = d.runGetForecast
	case "get_weather_insights":
		run = d.runGetWeatherInsights
	case "get_weather_summary_advisory":
		run = d.runGetSummaryAdvisory
	default:
		return nil, errors.NewUnknownToolError(name)
	}

	text, err := run(ctx, arguments)
	if err != nil {
		logger.Error("Tool execution error: %v", err)
		return errorOutcome(fmt.Sprintf("Error executing tool '%s': %s", name, err.Error())), nil
	}

	return textOutcome(text), nil
}

func (d *Dispatcher) runGetWeather(ctx context.Context, args map[string]any) (string, error) {
	location, ok := stringParam(args, "location")
	if !ok {
		return "", errLocationRequired
	}

	units, ok := stringParam(args, "units")
	if !ok {
		units = weather.UnitsMetric
	}

	obs, err := d.weather.Current(ctx, location, units)
	if err != nil {
		return "", err
	}

	tempUnit, windUnit := "C", "m/s"
	if units == weather.UnitsImperial {
		tempUnit, windUnit = "F", "mph"
	}

	return fmt.Sprintf("Weather in %s:\nTemperature: %g°%s\nDescription: %s\nHumidity: %d%%\nWind Speed: %g %s",
		obs.Location, obs.Temperature, tempUnit, obs.Description, obs.Humidity, obs.WindSpeed, windUnit), nil
}

func (d *Dispatcher) runGetForecast(ctx context.Context, args map[string]any) (string, error) {
	location, ok := stringParam(args, "location")
	if !ok {
		return "", errLocationRequired
	}

	days := 5
	if v, ok := args["days"].(float64); ok {
		days = int(v)
	}

	report, err := d.weather.Forecast(ctx, location, days)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weather forecast for %s:\n", report.Location)
	for _, day := range report.Forecast {
		fmt.Fprintf(&b, "Day %d (%s): %g°C, %s\n", day.Day, day.Date, day.Temperature, day.Description)
	}
	return b.String(), nil
}

func (d *Dispatcher) runGetWeatherInsights(ctx context.Context, args map[string]any) (string, error) {
	location, ok := stringParam(args, "location")
	if !ok {
		return "", errLocationRequired
	}

	activity, ok := stringParam(args, "activity")
	if !ok {
		activity = "general"
	}

	return d.insights.WeatherInsights(ctx, location, activity)
}

func (d *Dispatcher) runGetSummaryAdvisory(ctx context.Context, args map[string]any) (string, error) {
	location, ok := stringParam(args, "location")
	if !ok {
		return "", errLocationRequired
	}

	result, err := d.insights.SummaryAndAdvisory(ctx, location)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Weather Summary: %s\n\nTravel Advisory: %s", result.Summary, result.Advisory), nil
}
