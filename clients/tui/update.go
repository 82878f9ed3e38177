// ABOUTME: Update loop for the TUI client (Elm architecture)
// ABOUTME: Turns slash commands into envelopes and renders server replies

package tui

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/harper/weather-mcp/clients/tui/client"
	"github.com/harper/weather-mcp/internal/jsonrpc"
)

type connectedMsg struct{}

type serverMsg []byte

type connErrMsg struct{ err error }

func connectCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		if err := c.Connect(); err != nil {
			return connErrMsg{err: err}
		}
		return connectedMsg{}
	}
}

func listenCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-c.Incoming():
			return serverMsg(msg)
		case err := <-c.Errors():
			return connErrMsg{err: err}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = msg.Width - 4
		m.view.Height = msg.Height - m.input.Height() - 5
		m.input.SetWidth(msg.Width - 4)
		m.refreshViewport()

	case connectedMsg:
		m.connected = true
		m.append(entry{kind: "system", text: "connected to " + m.serverURL})
		cmds = append(cmds, listenCmd(m.client))

	case serverMsg:
		m.append(renderServerMessage([]byte(msg)))
		cmds = append(cmds, listenCmd(m.client))

	case connErrMsg:
		m.connected = false
		m.err = msg.err
		m.append(entry{kind: "error", text: "connection error: " + msg.err.Error()})

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			_ = m.client.Close()
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.input.Reset()
				m.sendLine(line)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.view, cmd = m.view.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) sendLine(line string) {
	payload, err := buildEnvelope(line)
	if err != nil {
		m.append(entry{kind: "error", text: err.Error()})
		return
	}

	if err := m.client.Send(payload); err != nil {
		m.append(entry{kind: "error", text: "send failed: " + err.Error()})
		return
	}
	m.append(entry{kind: "sent", text: line})
}

// buildEnvelope turns a slash command into a JSON-RPC envelope; anything else
// must already be one.
func buildEnvelope(line string) ([]byte, error) {
	if !strings.HasPrefix(line, "/") {
		var probe jsonrpc.Request
		if err := json.Unmarshal([]byte(line), &probe); err != nil {
			return nil, fmt.Errorf("not a slash command and not valid JSON-RPC: %v", err)
		}
		return []byte(line), nil
	}

	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	var method string
	params := map[string]any{}

	switch cmd {
	case "/init":
		method = "initialize"
	case "/tools":
		method = "tools/list"
	case "/weather":
		if len(args) < 1 {
			return nil, fmt.Errorf("usage: /weather <location> [units]")
		}
		method = "tools/call"
		toolArgs := map[string]any{"location": strings.Join(args, " ")}
		if last := args[len(args)-1]; last == "metric" || last == "imperial" {
			toolArgs["location"] = strings.Join(args[:len(args)-1], " ")
			toolArgs["units"] = last
		}
		params = map[string]any{"name": "get_weather", "arguments": toolArgs}
	case "/forecast":
		if len(args) < 1 {
			return nil, fmt.Errorf("usage: /forecast <location> [days]")
		}
		method = "tools/call"
		toolArgs := map[string]any{"location": strings.Join(args, " ")}
		if days, err := strconv.Atoi(args[len(args)-1]); err == nil && len(args) > 1 {
			toolArgs["location"] = strings.Join(args[:len(args)-1], " ")
			toolArgs["days"] = days
		}
		params = map[string]any{"name": "get_forecast", "arguments": toolArgs}
	case "/insights":
		if len(args) < 1 {
			return nil, fmt.Errorf("usage: /insights <location> [activity]")
		}
		method = "tools/call"
		toolArgs := map[string]any{"location": args[0]}
		if len(args) > 1 {
			toolArgs["activity"] = strings.Join(args[1:], " ")
		}
		params = map[string]any{"name": "get_weather_insights", "arguments": toolArgs}
	case "/advisory":
		if len(args) < 1 {
			return nil, fmt.Errorf("usage: /advisory <location>")
		}
		method = "tools/call"
		params = map[string]any{
			"name":      "get_weather_summary_advisory",
			"arguments": map[string]any{"location": strings.Join(args, " ")},
		}
	case "/outfit":
		if len(args) < 1 {
			return nil, fmt.Errorf("usage: /outfit <location>")
		}
		method = "prompts/get"
		params = map[string]any{
			"name":      "outfit_recommendation",
			"arguments": map[string]any{"location": strings.Join(args, " ")},
		}
	default:
		return nil, fmt.Errorf("unknown command %s", cmd)
	}

	id := json.RawMessage(strconv.Quote(uuid.NewString()))
	req := jsonrpc.Request{
		JSONRPC: jsonrpc.Version,
		Method:  method,
		ID:      &id,
	}
	if len(params) > 0 {
		data, err := json.Marshal(params)
		if err != nil {
			return nil, err
		}
		req.Params = data
	}

	return json.Marshal(req)
}

func renderServerMessage(data []byte) entry {
	var resp jsonrpc.Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return entry{kind: "error", text: "unreadable frame: " + string(data)}
	}

	if resp.Error != nil {
		return entry{kind: "error", text: fmt.Sprintf("[%d] %s", resp.Error.Code, resp.Error.Message)}
	}

	// Tool results carry their text in content blocks; show those directly.
	var outcome struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	}
	if err := json.Unmarshal(resp.Result, &outcome); err == nil && len(outcome.Content) > 0 {
		var texts []string
		for _, block := range outcome.Content {
			if block.Type == "text" {
				texts = append(texts, block.Text)
			}
		}
		kind := "result"
		if outcome.IsError {
			kind = "error"
		}
		return entry{kind: kind, text: strings.Join(texts, "\n")}
	}

	pretty, err := json.MarshalIndent(json.RawMessage(resp.Result), "", "  ")
	if err != nil {
		return entry{kind: "result", text: string(resp.Result)}
	}
	return entry{kind: "result", text: string(pretty)}
}
