// ABOUTME: WebSocket server for the persistent bidirectional MCP transport
// ABOUTME: Serializes inbound envelopes one at a time per connection

package websocket

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/harper/weather-mcp/internal/errors"
	"github.com/harper/weather-mcp/internal/jsonrpc"
	"github.com/harper/weather-mcp/internal/logger"
	"github.com/harper/weather-mcp/internal/mcp"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // origin policy is enforced by the HTTP transport's CORS layer
	},
}

type Server struct {
	dispatcher *mcp.Dispatcher
}

func NewServer(d *mcp.Dispatcher) *Server {
	return &Server{dispatcher: d}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("websocket upgrade failed: %v", err)
		return
	}

	s.handleConnection(r.Context(), conn)
}

// handleConnection reads one frame at a time and awaits the dispatcher before
// reading the next, so responses leave in request-arrival order. Connections
// share nothing but the read-only dispatcher.
func (s *Server) handleConnection(ctx context.Context, conn *websocket.Conn) {
	defer conn.Close()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("websocket read error: %v", err)
			}
			return
		}

		var req jsonrpc.Request
		if err := json.Unmarshal(message, &req); err != nil {
			// Malformed frame: answer with an error envelope, keep the connection.
			s.write(conn, jsonrpc.NewErrorResponse(nil,
				errors.NewInvalidParamsError("Invalid request: malformed JSON")))
			continue
		}

		s.write(conn, s.dispatcher.Dispatch(ctx, &req))
	}
}

func (s *Server) write(conn *websocket.Conn, resp *jsonrpc.Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		logger.Error("failed to marshal response: %v", err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		logger.Warn("websocket write error: %v", err)
	}
}
