package events

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Event is one ledger mutation, broadcast to connected UI clients in the
// order the mutation was applied (inventory first, then the sale mirror).
type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// Hub fans ledger events out to websocket subscribers. Slow or gone clients
// are dropped rather than allowed to stall the broadcast loop.
type Hub struct {
	clientsMux sync.Mutex
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	upgrader   websocket.Upgrader
}

func NewHub() *Hub {
	h := &Hub{
		clients:   make(map[*websocket.Conn]bool),
		broadcast: make(chan Event, 64),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	go h.run()
	return h
}

// Publish queues an event for broadcast. It never blocks; when the queue is
// full the event is dropped, since the feed is a re-render hint, not a
// source of truth.
func (h *Hub) Publish(eventType string, payload interface{}) {
	ev := Event{Type: eventType, Timestamp: time.Now(), Payload: payload}
	select {
	case h.broadcast <- ev:
	default:
		log.Warn().Str("type", eventType).Msg("event feed full, dropping event")
	}
}

// HandleWS upgrades the connection and subscribes it to the feed.
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}

	h.clientsMux.Lock()
	h.clients[conn] = true
	h.clientsMux.Unlock()

	// Reader loop only exists to notice the close.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) run() {
	for ev := range h.broadcast {
		h.clientsMux.Lock()
		for conn := range h.clients {
			conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
			if err := conn.WriteJSON(ev); err != nil {
				conn.Close()
				delete(h.clients, conn)
			}
		}
		h.clientsMux.Unlock()
	}
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.clientsMux.Lock()
	if h.clients[conn] {
		conn.Close()
		delete(h.clients, conn)
	}
	h.clientsMux.Unlock()
}
