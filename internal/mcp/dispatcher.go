// ABOUTME: Method registry and dispatcher for the MCP protocol engine
// ABOUTME: Routes envelopes to handlers and funnels every fault into -32603

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harper/weather-mcp/internal/errors"
	"github.com/harper/weather-mcp/internal/insights"
	"github.com/harper/weather-mcp/internal/jsonrpc"
	"github.com/harper/weather-mcp/internal/logger"
	"github.com/harper/weather-mcp/internal/weather"
)

// WeatherProvider is the upstream weather collaborator.
type WeatherProvider interface {
	Current(ctx context.Context, location, units string) (*weather.Observation, error)
	Forecast(ctx context.Context, location string, days int) (*weather.ForecastReport, error)
}

// InsightProvider is the language-model collaborator.
type InsightProvider interface {
	WeatherInsights(ctx context.Context, location, activity string) (string, error)
	SummaryAndAdvisory(ctx context.Context, location string) (*insights.SummaryAdvisory, error)
}

// handlerFunc produces either a result or an envelope-level error, never both.
type handlerFunc func(ctx context.Context, req *jsonrpc.Request) (any, *jsonrpc.Error)

// Dispatcher routes requests by method name. The handler map is built once
// here and never mutated, so one instance is safely shared by both transports.
type Dispatcher struct {
	weather  WeatherProvider
	insights InsightProvider
	handlers map[string]handlerFunc
}

func NewDispatcher(w WeatherProvider, i InsightProvider) *Dispatcher {
	d := &Dispatcher{weather: w, insights: i}
	d.handlers = map[string]handlerFunc{
		MethodInitialize:         d.handleInitialize,
		MethodResourcesList:      d.handleListResources,
		MethodResourcesRead:      d.handleReadResource,
		MethodToolsList:          d.handleListTools,
		MethodToolsCall:          d.handleCallTool,
		MethodPromptsList:        d.handleListPrompts,
		MethodPromptsGet:         d.handleGetPrompt,
		MethodCompletionComplete: d.handleCompletion,
	}
	return d
}

// Dispatch processes one envelope and always produces one in return. A panic
// inside a handler is converted to a -32603 envelope; a fault can never take
// the connection down.
func (d *Dispatcher) Dispatch(ctx context.Context, req *jsonrpc.Request) (resp *jsonrpc.Response) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Error processing MCP request: %v", r)
			resp = jsonrpc.NewErrorResponse(req.ID, errors.NewInternalError(fmt.Sprint(r)))
		}
	}()

	if req.Method == "" {
		return jsonrpc.NewErrorResponse(req.ID, errors.NewInvalidParamsError("Missing method"))
	}

	handler, ok := d.handlers[req.Method]
	if !ok {
		if strings.HasPrefix(req.Method, NotificationPrefix) {
			handler = d.handleNotification
		} else {
			return jsonrpc.NewErrorResponse(req.ID, errors.NewMethodNotFoundError(req.Method))
		}
	}

	logger.Debug("dispatching %s", req.Method)
	result, rpcErr := handler(ctx, req)
	if rpcErr != nil {
		return jsonrpc.NewErrorResponse(req.ID, rpcErr)
	}
	return jsonrpc.NewResponse(req.ID, result)
}

// paramsMap decodes request params into a generic map. Absent or null params
// yield an empty map so handlers can probe keys without nil checks.
func paramsMap(req *jsonrpc.Request) (map[string]any, *jsonrpc.Error) {
	if len(req.Params) == 0 || string(req.Params) == "null" {
		return map[string]any{}, nil
	}
	var m map[string]any
	if err := json.Unmarshal(req.Params, &m); err != nil {
		return nil, errors.NewInvalidParamsError("Invalid params: expected an object")
	}
	return m, nil
}

// identParam extracts a lookup identifier such as a tool or prompt name.
// An absent or empty value reports missing; a present non-string value is
// returned in printed form so the lookup's unknown-X error can name it.
func identParam(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, s != ""
	}
	return fmt.Sprint(v), true
}

func stringParam(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}
