// ABOUTME: Constructors for the fixed JSON-RPC error taxonomy
// ABOUTME: Message formats here are part of the wire contract

package errors

import (
	"encoding/json"
	"fmt"

	"github.com/harper/weather-mcp/internal/jsonrpc"
	"github.com/harper/weather-mcp/internal/logger"
)

// ErrorData is optional structured context attached to an error envelope.
// Callers (usually LLM agents) use it to decide whether a retry makes sense.
type ErrorData struct {
	ErrorType   string `json:"error_type"`
	Recoverable bool   `json:"recoverable"`
	Details     string `json:"details,omitempty"`
}

func NewMethodNotFoundError(method string) *jsonrpc.Error {
	return &jsonrpc.Error{
		Code:    jsonrpc.MethodNotFound,
		Message: fmt.Sprintf("Method not found: %s", method),
	}
}

func NewUnknownToolError(name string) *jsonrpc.Error {
	return &jsonrpc.Error{
		Code:    jsonrpc.MethodNotFound,
		Message: fmt.Sprintf("Unknown tool: %s", name),
	}
}

func NewUnknownPromptError(name string) *jsonrpc.Error {
	return &jsonrpc.Error{
		Code:    jsonrpc.MethodNotFound,
		Message: fmt.Sprintf("Unknown prompt: %s", name),
	}
}

func NewUnknownResourceError(uri string) *jsonrpc.Error {
	return &jsonrpc.Error{
		Code:    jsonrpc.InvalidParams,
		Message: fmt.Sprintf("Unknown resource: %s", uri),
	}
}

func NewInvalidParamsError(message string) *jsonrpc.Error {
	return &jsonrpc.Error{
		Code:    jsonrpc.InvalidParams,
		Message: message,
	}
}

func NewInternalError(detail string) *jsonrpc.Error {
	data := ErrorData{
		ErrorType:   "internal_error",
		Recoverable: true,
		Details:     detail,
	}

	dataBytes, err := json.Marshal(data)
	if err != nil {
		logger.Error("failed to marshal error data: %v", err)
		dataBytes = []byte("{}")
	}

	return &jsonrpc.Error{
		Code:    jsonrpc.InternalError,
		Message: fmt.Sprintf("Internal error: %s", detail),
		Data:    dataBytes,
	}
}
