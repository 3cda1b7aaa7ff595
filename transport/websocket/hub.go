package websocket

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-despair/internal/event"
)

const clientBufferSize = 64

type Client struct {
	send chan []byte
}

func newClient() *Client {
	return &Client{send: make(chan []byte, clientBufferSize)}
}

// sendMessage queues msg without blocking. A client that is not reading loses it.
func (that *Client) sendMessage(msg Message) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		return false
	}

	return that.queue(data)
}

func (that *Client) queue(data []byte) bool {
	select {
	case that.send <- data:
		return true
	default:
		return false
	}
}

// Hub fans game events out to every connected client. It implements event.Sink.
type Hub struct {
	logger *slog.Logger

	mu      sync.Mutex
	clients map[*Client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger.With("component", "hub"),
		clients: make(map[*Client]struct{}),
	}
}

func (that *Hub) Register(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.clients[client] = struct{}{}
}

func (that *Hub) Unregister(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.clients[client]; ok {
		delete(that.clients, client)
		close(client.send)
	}
}

func (that *Hub) ClientCount() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.clients)
}

// Publish is called with the game lock held, so it only queues.
func (that *Hub) Publish(e event.Event) {
	data, err := json.Marshal(Message{Action: string(e.Kind), Payload: mustMarshal(e)})
	if err != nil {
		that.logger.Error("failed to marshal event", "kind", e.Kind, "error", err)
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	for client := range that.clients {
		if !client.queue(data) {
			that.logger.Warn("client buffer is full, event dropped", "kind", e.Kind)
		}
	}
}
