package notification

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// writeWait bounds how long Publish waits on a single connection's write
// buffer; a stalled client times out and is pruned instead of holding the
// hub lock.
const writeWait = 10 * time.Second

// Hub tracks live websocket connections per user and fans notifications out
// to them. Delivery is best-effort: a user with no open connection simply
// misses the push and reads the store later.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string][]*websocket.Conn
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[string][]*websocket.Conn)}
}

// Register adds a connection for a user.
func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[userID] = append(h.subscribers[userID], conn)
}

// Unregister removes a connection for a user and closes it.
func (h *Hub) Unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.subscribers[userID]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	if len(newList) == 0 {
		delete(h.subscribers, userID)
	} else {
		h.subscribers[userID] = newList
	}
	conn.Close()
}

// Publish pushes a payload to every live connection of the user, pruning
// connections that fail to write. Errors are not surfaced; push is not part
// of the delivery guarantee.
func (h *Hub) Publish(userID string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		zap.L().Warn("Failed to marshal notification payload", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.subscribers[userID]
	newList := conns[:0]
	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, data); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close()
		}
	}
	if len(newList) == 0 {
		delete(h.subscribers, userID)
	} else {
		h.subscribers[userID] = newList
	}
}
