// ABOUTME: Bubbletea model for the interactive weather MCP client
// ABOUTME: Holds the transcript, input state, and server connection

package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harper/weather-mcp/clients/tui/client"
)

type entry struct {
	kind string // "sent", "result", "error", "system"
	text string
}

type Model struct {
	client     *client.Client
	serverURL  string
	transcript []entry
	input      textarea.Model
	view       viewport.Model
	width      int
	height     int
	connected  bool
	err        error
}

func NewModel(serverURL string) Model {
	input := textarea.New()
	input.Placeholder = "/weather Paris, or a raw JSON-RPC envelope (Enter to send, Ctrl+C to quit)"
	input.SetHeight(3)
	input.Focus()

	return Model{
		client:    client.New(serverURL),
		serverURL: serverURL,
		input:     input,
		view:      viewport.New(80, 20),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(connectCmd(m.client), textarea.Blink)
}
