// ABOUTME: JSON-RPC 2.0 message types for the MCP weather protocol
// ABOUTME: Implements request, response, and error structures

package jsonrpc

import "encoding/json"

const Version = "2.0"

// Request is an inbound envelope. The id is kept as raw JSON so string and
// integer ids survive the round trip byte-for-byte.
type Request struct {
	JSONRPC string           `json:"jsonrpc"`
	Method  string           `json:"method"`
	Params  json.RawMessage  `json:"params,omitempty"`
	ID      *json.RawMessage `json:"id,omitempty"`
}

type Response struct {
	JSONRPC string           `json:"jsonrpc"`
	Result  json.RawMessage  `json:"result,omitempty"`
	Error   *Error           `json:"error,omitempty"`
	ID      *json.RawMessage `json:"id,omitempty"`
}

type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Standard JSON-RPC error codes.
const (
	ParseError     = -32700
	InvalidRequest = -32600
	MethodNotFound = -32601
	InvalidParams  = -32602
	InternalError  = -32603
)

// NewResponse builds a success envelope echoing the request id. A nil result
// is normalized to an empty object so a response is never ambiguous.
func NewResponse(id *json.RawMessage, result any) *Response {
	if result == nil {
		result = map[string]any{}
	}
	data, err := json.Marshal(result)
	if err != nil {
		return NewErrorResponse(id, &Error{
			Code:    InternalError,
			Message: "Internal error: failed to marshal result",
		})
	}
	return &Response{JSONRPC: Version, Result: data, ID: id}
}

func NewErrorResponse(id *json.RawMessage, rpcErr *Error) *Response {
	return &Response{JSONRPC: Version, Error: rpcErr, ID: id}
}
