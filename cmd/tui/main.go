// ABOUTME: Entry point for the weather MCP TUI client
// ABOUTME: Connects to the server's WebSocket transport and starts Bubbletea

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harper/weather-mcp/clients/tui"
)

func main() {
	serverURL := flag.String("url", "ws://localhost:8001/mcp/ws", "weather MCP WebSocket URL")
	flag.Parse()

	m := tui.NewModel(*serverURL)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
