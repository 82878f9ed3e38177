// ABOUTME: Capability negotiation, catalog, prompt, completion, and notification handlers
// ABOUTME: Pure transformations of the static catalogs, plus the uri/name lookup branch

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/weather-mcp/internal/errors"
	"github.com/harper/weather-mcp/internal/jsonrpc"
	"github.com/harper/weather-mcp/internal/logger"
)

func (d *Dispatcher) handleInitialize(_ context.Context, _ *jsonrpc.Request) (any, *jsonrpc.Error) {
	return InitializeResult{
		ProtocolVersion: ProtocolVersion,
		Capabilities: Capabilities{
			Resources: true,
			Tools:     true,
			Prompts:   true,
		},
		ServerInfo: ServerInfo{
			Name:    ServerName,
			Version: ServerVersion,
		},
	}, nil
}

func (d *Dispatcher) handleListResources(_ context.Context, _ *jsonrpc.Request) (any, *jsonrpc.Error) {
	return map[string]any{"resources": resourceCatalog}, nil
}

func (d *Dispatcher) handleReadResource(_ context.Context, req *jsonrpc.Request) (any, *jsonrpc.Error) {
	params, rpcErr := paramsMap(req)
	if rpcErr != nil {
		return nil, rpcErr
	}

	uri, ok := identParam(params, "uri")
	if !ok {
		return nil, errors.NewInvalidParamsError("Missing uri parameter")
	}

	payload, ok := resourcePayloads[uri]
	if !ok {
		return nil, errors.NewUnknownResourceError(uri)
	}

	text, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	return map[string]any{
		"contents": []ResourceContent{{
			URI:      uri,
			MimeType: mimeTypeJSON,
			Text:     string(text),
		}},
	}, nil
}

func (d *Dispatcher) handleListTools(_ context.Context, _ *jsonrpc.Request) (any, *jsonrpc.Error) {
	return map[string]any{"tools": toolCatalog}, nil
}

func (d *Dispatcher) handleListPrompts(_ context.Context, _ *jsonrpc.Request) (any, *jsonrpc.Error) {
	return map[string]any{"prompts": promptCatalog}, nil
}

func (d *Dispatcher) handleGetPrompt(_ context.Context, req *jsonrpc.Request) (any, *jsonrpc.Error) {
	params, rpcErr := paramsMap(req)
	if rpcErr != nil {
		return nil, rpcErr
	}

	name, ok := identParam(params, "name")
	if !ok {
		return nil, errors.NewInvalidParamsError("Missing prompt name")
	}

	arguments, _ := params["arguments"].(map[string]any)
	location, ok := stringParam(arguments, "location")
	if !ok {
		location = "New York"
	}

	var promptText string
	switch name {
	case "weather_analysis":
		activity, ok := stringParam(arguments, "activity")
		if !ok {
			activity = "outdoor activities"
		}
		promptText = fmt.Sprintf(weatherAnalysisTemplate, location, activity)

	case "outfit_recommendation":
		promptText = fmt.Sprintf(outfitRecommendationTemplate, location)

	default:
		return nil, errors.NewUnknownPromptError(name)
	}

	return PromptResult{
		Description: fmt.Sprintf("Weather-based %s prompt", name),
		Messages: []PromptMessage{{
			Role:    "user",
			Content: PromptContent{Type: "text", Text: promptText},
		}},
	}, nil
}

func (d *Dispatcher) handleCompletion(_ context.Context, _ *jsonrpc.Request) (any, *jsonrpc.Error) {
	return map[string]any{
		"completion": map[string]any{
			"values": []string{
				"get_weather",
				"get_forecast",
				"get_weather_insights",
				"get_weather_summary_advisory",
			},
			"total":   4,
			"hasMore": false,
		},
	}, nil
}

// handleNotification is best-effort: it logs and returns an empty result for
// any notifications/* method and any params shape, never an error.
func (d *Dispatcher) handleNotification(_ context.Context, req *jsonrpc.Request) (any, *jsonrpc.Error) {
	switch req.Method {
	case "notifications/cancelled":
		params, err := paramsMap(req)
		if err == nil {
			if requestID, ok := params["requestId"]; ok {
				logger.Info("Request %v was cancelled", requestID)
				break
			}
		}
		logger.Info("Request was cancelled")
	case "notifications/progress":
		logger.Info("Progress update: %s", string(req.Params))
	default:
		logger.Debug("notification %s ignored", req.Method)
	}

	return map[string]any{}, nil
}
