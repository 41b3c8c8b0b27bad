package events

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins; the server fronts a local browser app.
		return true
	},
}

// Event - one server-to-client notification. The browser mirrors these
// into its UI state: busy spinners, fresh results, error banners.
type Event struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId"`
	Busy      bool   `json:"busy,omitempty"`
	Image     string `json:"image,omitempty"`
	Message   string `json:"message,omitempty"`
}

const (
	EventBusy   = "busy"
	EventResult = "result"
	EventError  = "error"
)

// Client - one websocket subscriber
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// channel - the subscribers of one session
type channel struct {
	clients map[*Client]bool
	mutex   sync.RWMutex
}

// Hub - per-session broadcast of studio events. Publishing never blocks:
// a subscriber that cannot keep up is dropped.
type Hub struct {
	channels map[string]*channel
	mutex    sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		channels: make(map[string]*channel),
	}
}

func (h *Hub) channelFor(sessionID string) *channel {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	ch, ok := h.channels[sessionID]
	if !ok {
		ch = &channel{clients: make(map[*Client]bool)}
		h.channels[sessionID] = ch
	}
	return ch
}

// Publish - send an event to every subscriber of the session
func (h *Hub) Publish(event Event) {
	h.mutex.RLock()
	ch, ok := h.channels[event.SessionID]
	h.mutex.RUnlock()
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("⚠️ [Events] Marshal failed: %v", err)
		return
	}

	ch.mutex.Lock()
	defer ch.mutex.Unlock()
	for client := range ch.clients {
		select {
		case client.send <- data:
		default:
			close(client.send)
			delete(ch.clients, client)
		}
	}
}

// SubscriberCount - number of live subscribers for a session
func (h *Hub) SubscriberCount(sessionID string) int {
	h.mutex.RLock()
	ch, ok := h.channels[sessionID]
	h.mutex.RUnlock()
	if !ok {
		return 0
	}

	ch.mutex.RLock()
	defer ch.mutex.RUnlock()
	return len(ch.clients)
}

// HandleWebSocket - upgrade and subscribe a client to its session channel
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("❌ [Events] WebSocket upgrade failed: %v", err)
		return
	}

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		log.Println("❌ [Events] Missing session parameter")
		conn.Close()
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 64),
	}

	ch := h.channelFor(sessionID)
	ch.mutex.Lock()
	ch.clients[client] = true
	count := len(ch.clients)
	ch.mutex.Unlock()

	log.Printf("👤 [Events] Subscriber joined session %s (subscribers: %d)", sessionID, count)

	go client.writePump()
	go client.readPump(h, ch, sessionID)
}

// readPump - the client never sends anything meaningful; this just
// detects disconnects.
func (c *Client) readPump(h *Hub, ch *channel, sessionID string) {
	defer func() {
		ch.mutex.Lock()
		if _, ok := ch.clients[c]; ok {
			close(c.send)
			delete(ch.clients, c)
		}
		remaining := len(ch.clients)
		ch.mutex.Unlock()
		c.conn.Close()

		log.Printf("👋 [Events] Subscriber left session %s (remaining: %d)", sessionID, remaining)
	}()

	c.conn.SetReadLimit(512)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("⚠️ [Events] WebSocket error: %v", err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for {
		message, ok := <-c.send
		if !ok {
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("⚠️ [Events] WebSocket write error: %v", err)
			return
		}
	}
}
