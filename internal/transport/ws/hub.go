package ws

import (
	"encoding/json"
	"sync"

	"go.uber.org/zap"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgEvaluationCompleted MessageType = "evaluation_completed"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket connections per user. A user may hold several
// connections, one per open browser tab.
type Hub struct {
	conns map[string]map[*Connection]struct{} // userID -> connections

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	done       chan struct{}
	stopOnce   sync.Once
	stopped    chan struct{}

	logger *zap.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID string
	Send   chan []byte
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	UserID  string
	Message *Message
}

// NewHub creates a new WebSocket hub and starts its loop
func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Hub{
		conns:      make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
		logger:     logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	defer close(h.stopped)
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.UserID] == nil {
				h.conns[conn.UserID] = make(map[*Connection]struct{})
			}
			h.conns[conn.UserID][conn] = struct{}{}
			h.mu.Unlock()
			h.logger.Debug("WebSocket connected", zap.String("user_id", conn.UserID))

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.conns[conn.UserID]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.conns, conn.UserID)
					}
					h.logger.Debug("WebSocket disconnected", zap.String("user_id", conn.UserID))
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Message)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for conn := range h.conns[msg.UserID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for userID, conns := range h.conns {
				for conn := range conns {
					close(conn.Send)
				}
				delete(h.conns, userID)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// BroadcastToUser sends a message to every connection of a user (implements service.Broadcaster)
func (h *Hub) BroadcastToUser(userID string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Warn("Dropping unencodable broadcast", zap.String("type", msgType), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- &BroadcastMessage{
		UserID: userID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}:
	case <-h.done:
	}
}

// ConnectionCount returns the number of open connections for a user
func (h *Hub) ConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID])
}

// Close stops the hub loop and closes every connection's send channel
func (h *Hub) Close() {
	h.stopOnce.Do(func() { close(h.done) })
	<-h.stopped
}
