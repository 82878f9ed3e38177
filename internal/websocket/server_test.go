// ABOUTME: Tests for the persistent WebSocket transport
// ABOUTME: Round-trips envelopes over a real connection via httptest

package websocket

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/weather-mcp/internal/insights"
	"github.com/harper/weather-mcp/internal/mcp"
	"github.com/harper/weather-mcp/internal/weather"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()

	ws := weather.NewService("")
	srv := NewServer(mcp.NewDispatcher(ws, insights.NewService(ws, "")))

	httpSrv := httptest.NewServer(srv)
	t.Cleanup(httpSrv.Close)

	wsURL := "ws" + strings.TrimPrefix(httpSrv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err, "failed to connect")
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestWebSocketRoundTrip(t *testing.T) {
	conn := dialTestServer(t)

	req := map[string]any{
		"jsonrpc": "2.0",
		"method":  "initialize",
		"id":      1,
	}
	require.NoError(t, conn.WriteJSON(req))

	var resp map[string]any
	require.NoError(t, conn.ReadJSON(&resp))

	assert.Equal(t, float64(1), resp["id"])
	result, ok := resp["result"].(map[string]any)
	require.True(t, ok, "expected result object")
	assert.Equal(t, "2024-11-05", result["protocolVersion"])
}

func TestWebSocketResponsesInArrivalOrder(t *testing.T) {
	conn := dialTestServer(t)

	ids := []string{"a", "b", "c"}
	for _, id := range ids {
		require.NoError(t, conn.WriteJSON(map[string]any{
			"jsonrpc": "2.0",
			"method":  "tools/list",
			"id":      id,
		}))
	}

	for _, want := range ids {
		var resp map[string]any
		require.NoError(t, conn.ReadJSON(&resp))
		assert.Equal(t, want, resp["id"])
	}
}

func TestWebSocketMalformedFrameKeepsConnection(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{broken`)))

	var errResp map[string]any
	require.NoError(t, conn.ReadJSON(&errResp))
	errObj, ok := errResp["error"].(map[string]any)
	require.True(t, ok, "expected error envelope")
	assert.Equal(t, float64(-32602), errObj["code"])

	// The connection survives and keeps serving
	require.NoError(t, conn.WriteJSON(map[string]any{
		"jsonrpc": "2.0",
		"method":  "initialize",
		"id":      2,
	}))
	var resp map[string]any
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, float64(2), resp["id"])
	assert.NotNil(t, resp["result"])
}

func TestWebSocketToolCall(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"jsonrpc": "2.0",
		"method":  "tools/call",
		"params": map[string]any{
			"name":      "get_weather",
			"arguments": map[string]any{"location": "Tokyo"},
		},
		"id": "tool-1",
	}))

	var resp map[string]any
	require.NoError(t, conn.ReadJSON(&resp))

	result := resp["result"].(map[string]any)
	assert.Equal(t, false, result["isError"])
	content := result["content"].([]any)
	require.Len(t, content, 1)
	assert.Contains(t, content[0].(map[string]any)["text"], "Weather in Tokyo:")
}

func TestWebSocketNotification(t *testing.T) {
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(map[string]any{
		"jsonrpc": "2.0",
		"method":  "notifications/cancelled",
		"params":  map[string]any{"requestId": 9},
		"id":      3,
	}))

	var resp map[string]any
	require.NoError(t, conn.ReadJSON(&resp))

	assert.Nil(t, resp["error"])
	assert.Equal(t, map[string]any{}, resp["result"])
}
