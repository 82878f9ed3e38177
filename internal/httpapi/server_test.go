// ABOUTME: End-to-end tests for the synchronous HTTP transport
// ABOUTME: Exercises envelope round-trips, health, CORS, and malformed bodies

package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/weather-mcp/internal/config"
	"github.com/harper/weather-mcp/internal/insights"
	"github.com/harper/weather-mcp/internal/jsonrpc"
	"github.com/harper/weather-mcp/internal/mcp"
	"github.com/harper/weather-mcp/internal/weather"
)

func newTestServer() *Server {
	ws := weather.NewService("")
	dispatcher := mcp.NewDispatcher(ws, insights.NewService(ws, ""))
	return NewServer(dispatcher, config.Default().CORS)
}

func postMCP(t *testing.T, srv *Server, body string) (*httptest.ResponseRecorder, *jsonrpc.Response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/mcp", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	var resp jsonrpc.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, &resp
}

func TestMCPRoundTrip(t *testing.T) {
	srv := newTestServer()

	rec, resp := postMCP(t, srv, `{"jsonrpc":"2.0","id":"req-1","method":"initialize"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.ID)
	assert.Equal(t, `"req-1"`, string(*resp.ID))

	var result map[string]any
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.Equal(t, "2024-11-05", result["protocolVersion"])
}

func TestMCPUnknownMethodStillHTTP200(t *testing.T) {
	srv := newTestServer()

	rec, resp := postMCP(t, srv, `{"jsonrpc":"2.0","id":5,"method":"foo/bar"}`)

	// JSON-RPC errors ride a successful HTTP response
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc.MethodNotFound, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "foo/bar")
	assert.Equal(t, `5`, string(*resp.ID))
}

func TestMCPMalformedJSON(t *testing.T) {
	srv := newTestServer()

	rec, resp := postMCP(t, srv, `{not json`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, jsonrpc.InvalidParams, resp.Error.Code)
	assert.Nil(t, resp.ID)
}

func TestMCPRejectsGET(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/mcp", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthBypassesDispatcher(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var health map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, "MCP Weather Server", health["service"])
}

func TestCORSAllowedOrigin(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/mcp",
		bytes.NewBufferString(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/mcp",
		bytes.NewBufferString(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	req.Header.Set("Origin", "http://evil.example")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSWildcardMode(t *testing.T) {
	ws := weather.NewService("")
	dispatcher := mcp.NewDispatcher(ws, insights.NewService(ws, ""))
	srv := NewServer(dispatcher, config.CORSConfig{AllowAllOrigins: true})

	req := httptest.NewRequest(http.MethodPost, "/mcp",
		bytes.NewBufferString(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	req.Header.Set("Origin", "https://anywhere.example")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	// credentials cannot combine with the wildcard
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodOptions, "/mcp", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
}
