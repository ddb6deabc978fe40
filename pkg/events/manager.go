package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps how many missed events a single catchup response may
// carry. Past that, the client is told to reload over REST instead of
// paginating.
const catchupLimit = 200

// ClientMessage is the client → server WebSocket message shape.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Topic       string `json:"topic,omitempty"`         // e.g. "tasks:abc-123:messages"
	LastEventID *int64 `json:"last_event_id,omitempty"` // for catchup
}

// ConnectionManager bridges WebSocket clients to the bus. Each client
// subscribes to topics; a pump goroutine per subscription forwards bus
// events into the socket.
type ConnectionManager struct {
	bus          *Bus
	writeTimeout time.Duration
	logger       *slog.Logger

	mu          sync.RWMutex
	connections map[string]*Connection
}

// Connection is one WebSocket client.
//
// subscriptions is accessed without a lock: all reads and writes happen on
// the goroutine that owns the connection (HandleConnection's read loop and
// its deferred cleanup).
type Connection struct {
	ID            string
	conn          *websocket.Conn
	subscriptions map[string]*Subscription
	ctx           context.Context
	cancel        context.CancelFunc

	// writeMu serializes socket writes between the read-loop goroutine and
	// the per-subscription pumps.
	writeMu sync.Mutex
}

func NewConnectionManager(bus *Bus, writeTimeout time.Duration, logger *slog.Logger) *ConnectionManager {
	return &ConnectionManager{
		bus:          bus,
		writeTimeout: writeTimeout,
		logger:       logger.With("component", "ws_manager"),
		connections:  make(map[string]*Connection),
	}
}

// HandleConnection runs one WebSocket connection's lifecycle. Called after
// the HTTP upgrade; blocks until the connection closes.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	connID := uuid.New().String()
	ctx, cancel := context.WithCancel(parentCtx)

	c := &Connection{
		ID:            connID,
		conn:          conn,
		subscriptions: make(map[string]*Subscription),
		ctx:           ctx,
		cancel:        cancel,
	}

	m.register(c)
	defer m.unregister(c)

	m.sendJSON(c, map[string]string{
		"type":          "connection.established",
		"connection_id": connID,
	})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			m.logger.Warn("invalid websocket message", "connection_id", connID, "error", err)
			continue
		}
		m.handleClientMessage(ctx, c, &msg)
	}
}

// ActiveConnections returns the count of open WebSocket connections.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.connections)
}

func (m *ConnectionManager) handleClientMessage(ctx context.Context, c *Connection, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Topic == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "topic is required for subscribe"})
			return
		}
		m.subscribe(c, msg.Topic)
		m.sendJSON(c, map[string]string{
			"type":  "subscription.confirmed",
			"topic": msg.Topic,
		})
		// Auto catch-up so late subscribers see the full persisted stream.
		m.sendCatchup(ctx, c, msg.Topic, 0)

	case "unsubscribe":
		if msg.Topic == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "topic is required for unsubscribe"})
			return
		}
		m.unsubscribe(c, msg.Topic)

	case "catchup":
		if msg.Topic == "" {
			m.sendJSON(c, map[string]string{"type": "error", "message": "topic is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.sendCatchup(ctx, c, msg.Topic, *msg.LastEventID)
		}

	case "ping":
		m.sendJSON(c, map[string]string{"type": "pong"})
	}
}

// subscribe attaches the connection to a bus topic. The subscription is
// live before subscribe returns, so the subsequent auto-catchup cannot race
// with new publishes: anything the catchup query misses arrives through the
// pump.
func (m *ConnectionManager) subscribe(c *Connection, topic string) {
	if _, exists := c.subscriptions[topic]; exists {
		return
	}
	sub := m.bus.Subscribe(topic)
	c.subscriptions[topic] = sub
	go m.pump(c, sub)
}

func (m *ConnectionManager) unsubscribe(c *Connection, topic string) {
	if sub, ok := c.subscriptions[topic]; ok {
		delete(c.subscriptions, topic)
		sub.Close()
	}
}

// pump forwards bus events for one subscription into the socket until the
// subscription closes.
func (m *ConnectionManager) pump(c *Connection, sub *Subscription) {
	for event := range sub.Events() {
		payload := map[string]any{
			"topic":   event.Topic,
			"payload": event.Payload,
		}
		if event.ID != 0 {
			payload["event_id"] = event.ID
		}
		m.sendJSON(c, payload)
	}
}

// sendCatchup replays persisted events after lastEventID to the client.
func (m *ConnectionManager) sendCatchup(ctx context.Context, c *Connection, topic string, lastEventID int64) {
	missed, err := m.bus.CatchUp(ctx, topic, lastEventID)
	if err != nil {
		m.logger.Error("catchup query failed", "topic", topic, "error", err)
		return
	}

	hasMore := len(missed) > catchupLimit
	if hasMore {
		missed = missed[:catchupLimit]
	}

	for _, event := range missed {
		m.sendJSON(c, map[string]any{
			"topic":    event.Topic,
			"payload":  event.Payload,
			"event_id": event.ID,
		})
	}

	if hasMore {
		m.sendJSON(c, map[string]any{
			"type":     "catchup.overflow",
			"topic":    topic,
			"has_more": true,
		})
	}
}

func (m *ConnectionManager) register(c *Connection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connections[c.ID] = c
}

func (m *ConnectionManager) unregister(c *Connection) {
	for topic := range c.subscriptions {
		m.unsubscribe(c, topic)
	}

	m.mu.Lock()
	delete(m.connections, c.ID)
	m.mu.Unlock()

	c.cancel()
	_ = c.conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) sendJSON(c *Connection, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.logger.Warn("failed to marshal websocket message", "connection_id", c.ID, "error", err)
		return
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	writeCtx, cancel := context.WithTimeout(c.ctx, m.writeTimeout)
	defer cancel()
	if err := c.conn.Write(writeCtx, websocket.MessageText, data); err != nil {
		m.logger.Warn("failed to send websocket message", "connection_id", c.ID, "error", err)
	}
}
