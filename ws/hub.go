// Package ws pushes console events (chart lifecycle, metric refreshes) to
// connected websocket clients.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var ErrHubClosed = errors.New("websocket hub closed")

// Message is the envelope every pushed event is wrapped in.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Client is one websocket connection.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub tracks clients and fans broadcasts out to them. All client bookkeeping
// happens on the Run goroutine.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	count      atomic.Int64
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves the hub until ctx is cancelled, then drops every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.drop(client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
			h.count.Store(int64(len(h.clients)))
			h.logger.Debug("websocket client registered", zap.Int("clients", len(h.clients)))
		case client := <-h.unregister:
			if h.clients[client] {
				h.drop(client)
				h.logger.Debug("websocket client unregistered", zap.Int("clients", len(h.clients)))
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					h.logger.Warn("websocket client too slow, dropping")
					h.drop(client)
				}
			}
		}
	}
}

func (h *Hub) drop(client *Client) {
	delete(h.clients, client)
	close(client.Send)
	h.count.Store(int64(len(h.clients)))
}

// ClientCount reports how many clients are registered.
func (h *Hub) ClientCount() int {
	return int(h.count.Load())
}

// Publish broadcasts one typed message to every client.
func (h *Hub) Publish(msgType string, payload any) error {
	b, err := json.Marshal(Message{Type: msgType, Payload: payload})
	if err != nil {
		return err
	}
	select {
	case h.broadcast <- b:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

func (h *Hub) Register(c *Client) error {
	select {
	case h.register <- c:
		return nil
	case <-h.done:
		return ErrHubClosed
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}
