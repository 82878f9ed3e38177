// ABOUTME: MCP protocol types and the closed method namespace
// ABOUTME: Descriptors here are immutable and shared across requests

package mcp

import "encoding/json"

// Protocol metadata returned by initialize. Fixed: there is no negotiation
// path, mismatched client versions are accepted as-is.
const (
	ProtocolVersion = "2024-11-05"
	ServerName      = "weather-mcp-server"
	ServerVersion   = "1.0.0"
)

// Recognized methods. Anything with the NotificationPrefix routes to the
// notification handler regardless of suffix; everything else is exact-match.
const (
	MethodInitialize         = "initialize"
	MethodResourcesList      = "resources/list"
	MethodResourcesRead      = "resources/read"
	MethodToolsList          = "tools/list"
	MethodToolsCall          = "tools/call"
	MethodPromptsList        = "prompts/list"
	MethodPromptsGet         = "prompts/get"
	MethodCompletionComplete = "completion/complete"

	NotificationPrefix = "notifications/"
)

type Capabilities struct {
	Resources bool `json:"resources"`
	Tools     bool `json:"tools"`
	Prompts   bool `json:"prompts"`
}

type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

type InitializeResult struct {
	ProtocolVersion string       `json:"protocolVersion"`
	Capabilities    Capabilities `json:"capabilities"`
	ServerInfo      ServerInfo   `json:"serverInfo"`
}

type Resource struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MimeType    string `json:"mimeType"`
}

type ResourceContent struct {
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text"`
}

type Tool struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"inputSchema"`
}

type PromptArgument struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Required    bool   `json:"required"`
}

type Prompt struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Arguments   []PromptArgument `json:"arguments"`
}

type PromptContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type PromptMessage struct {
	Role    string        `json:"role"`
	Content PromptContent `json:"content"`
}

type PromptResult struct {
	Description string          `json:"description"`
	Messages    []PromptMessage `json:"messages"`
}

// ContentBlock is the single channel for tool output, success or failure.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// ToolOutcome is a tool-level result. IsError is distinct from an
// envelope-level jsonrpc.Error: a tool that ran and failed is still a
// successful RPC.
type ToolOutcome struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError"`
}

func textOutcome(text string) *ToolOutcome {
	return &ToolOutcome{
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

func errorOutcome(text string) *ToolOutcome {
	return &ToolOutcome{
		Content: []ContentBlock{{Type: "text", Text: text}},
		IsError: true,
	}
}
