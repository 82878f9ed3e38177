// ABOUTME: WebSocket client for talking to the weather MCP server
// ABOUTME: Manages connection lifecycle and message passing via channels

package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

type Client struct {
	url      string
	conn     *websocket.Conn
	mu       sync.RWMutex
	incoming chan []byte
	errors   chan error
	done     chan struct{}
	closed   bool
}

func New(url string) *Client {
	return &Client{
		url:      url,
		incoming: make(chan []byte, 100),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}
}

func (c *Client) Connect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil && !c.closed {
		return fmt.Errorf("already connected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}

	c.conn = conn
	c.closed = false

	go c.readLoop()

	return nil
}

func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.closed
}

func (c *Client) Send(msg []byte) error {
	c.mu.RLock()
	conn, closed := c.conn, c.closed
	c.mu.RUnlock()

	if conn == nil || closed {
		return fmt.Errorf("not connected")
	}
	return conn.WriteMessage(websocket.TextMessage, msg)
}

func (c *Client) Incoming() <-chan []byte {
	return c.incoming
}

func (c *Client) Errors() <-chan error {
	return c.errors
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)

	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) readLoop() {
	defer func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
	}()

	for {
		select {
		case <-c.done:
			return
		default:
		}

		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case c.errors <- err:
			default:
			}
			return
		}

		select {
		case c.incoming <- msg:
		case <-c.done:
			return
		}
	}
}
