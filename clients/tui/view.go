// ABOUTME: View rendering for the TUI client (converts model state to terminal output)
// ABOUTME: Implements the Elm architecture View function

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	sentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	systemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	status := "disconnected"
	if m.connected {
		status = "connected · " + m.serverURL
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		frameStyle.Width(m.width-2).Render(m.view.View()),
		frameStyle.Width(m.width-2).Render(m.input.View()),
		statusStyle.Render(" "+status),
	)
}

func (m *Model) append(e entry) {
	m.transcript = append(m.transcript, e)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	var b strings.Builder
	for i, e := range m.transcript {
		if i > 0 {
			b.WriteString("\n\n")
		}
		switch e.kind {
		case "sent":
			b.WriteString(sentStyle.Render("→ " + e.text))
		case "result":
			b.WriteString(resultStyle.Render(e.text))
		case "error":
			b.WriteString(errorStyle.Render("✗ " + e.text))
		default:
			b.WriteString(systemStyle.Render(e.text))
		}
	}
	m.view.SetContent(b.String())
	m.view.GotoBottom()
}
