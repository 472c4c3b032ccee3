package websocket

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"minddock/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const DefaultClusterChannel = "minddock:activity"

// clusterMessage is what travels over Redis between API instances.
type clusterMessage struct {
	Origin  string          `json:"origin"`
	Message json.RawMessage `json:"message"`
}

// Hub fans activity messages out to every connected live client. With Redis
// configured, messages published on one instance reach clients of all.
type Hub struct {
	clients map[*Client]struct{}
	mu      sync.RWMutex

	// Redis connection for cross-instance communication, optional
	rdb     *redis.Client
	channel string
	origin  string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, channel string, log logger.ILogger) *Hub {
	if channel == "" {
		channel = DefaultClusterChannel
	}
	return &Hub{
		clients: make(map[*Client]struct{}),
		rdb:     rdb,
		channel: channel,
		origin:  uuid.NewString(),
		logger:  log,
	}
}

// Run relays Redis traffic until ctx is done, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}
	<-ctx.Done()

	h.mu.Lock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.Send)
	}
	h.mu.Unlock()
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.logger.Info("HUB", "Live client connected", map[string]interface{}{"clients": count})
}

// unregister is safe to call more than once for the same client.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.Send)
	}
	count := len(h.clients)
	h.mu.Unlock()
	if ok {
		h.logger.Info("HUB", "Live client disconnected", map[string]interface{}{"clients": count})
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast delivers payload locally and publishes it for other instances.
func (h *Hub) Broadcast(payload []byte) {
	h.deliver(payload)

	if h.rdb == nil {
		return
	}
	data, err := json.Marshal(clusterMessage{Origin: h.origin, Message: payload})
	if err != nil {
		h.logger.Warn("HUB", "Failed to encode cluster message", map[string]interface{}{"error": err.Error()})
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.rdb.Publish(ctx, h.channel, data).Err(); err != nil {
		h.logger.Warn("HUB", "Failed to publish to Redis", map[string]interface{}{"error": err.Error()})
	}
}

func (h *Hub) deliver(payload []byte) {
	var slow []*Client

	h.mu.RLock()
	for c := range h.clients {
		select {
		case c.Send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("HUB", "Client send buffer full, disconnecting", nil)
		h.unregister(c)
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, h.channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var cm clusterMessage
			if err := json.Unmarshal([]byte(msg.Payload), &cm); err != nil {
				h.logger.Warn("HUB", "Redis message parse error", map[string]interface{}{"error": err.Error()})
				continue
			}
			// our own publish comes back too
			if cm.Origin == h.origin {
				continue
			}
			h.deliver(cm.Message)
		}
	}
}
