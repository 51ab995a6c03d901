package remote

import (
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"music-scheduler/internal/logging"
	"music-scheduler/internal/metrics"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 64 << 10
	sendBuffer     = 64
)

// Player event types sent by browser pages.
const (
	EventEnded    = "ended"
	EventProgress = "progress"
	EventReady    = "ready"
)

// Event is a message from a browser player.
type Event struct {
	Type     string  `json:"type"`
	Backend  string  `json:"backend,omitempty"`
	SongID   string  `json:"songId,omitempty"`
	Position float64 `json:"position,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// EventSink receives player events.
type EventSink interface {
	TrackEnded(songID string)
	ReportProgress(songID string, position, duration float64)
}

// Hub keeps track of connected players and fans out commands to them.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan []byte
	register   chan *client
	unregister chan *client
	replay     chan *client

	connected atomic.Int64

	mu       sync.Mutex
	sink     EventSink
	backends []*Backend

	upgrader websocket.Upgrader
	stopChan chan struct{}
	done     chan struct{}
}

// NewHub creates a hub. Call Start before serving connections.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan []byte, 128),
		register:   make(chan *client, 16),
		unregister: make(chan *client, 16),
		replay:     make(chan *client, 16),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Players are served from the same host or from a kiosk page on the LAN.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// SetSink sets where player events go.
func (h *Hub) SetSink(sink EventSink) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sink = sink
}

func (h *Hub) eventSink() EventSink {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sink
}

func (h *Hub) attach(b *Backend) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.backends = append(h.backends, b)
}

// stateMessages returns the recorded state of every attached backend.
func (h *Hub) stateMessages() [][]byte {
	h.mu.Lock()
	backends := append([]*Backend(nil), h.backends...)
	h.mu.Unlock()

	msgs := make([][]byte, 0, len(backends))
	for _, b := range backends {
		if msg, err := b.stateMessage(); err == nil {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// Clients returns the number of connected players.
func (h *Hub) Clients() int {
	return int(h.connected.Load())
}

// Start runs the hub loop.
func (h *Hub) Start() {
	go h.run()
}

// Stop disconnects every player and ends the hub loop.
func (h *Hub) Stop() {
	close(h.stopChan)
	<-h.done
}

// Broadcast queues msg for every connected player.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.broadcast <- msg:
	case <-h.stopChan:
	}
}

func (h *Hub) run() {
	defer close(h.done)

	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			h.setConnected()
			h.sendState(c)
			logging.Info("Player connected from %s (%d attached)", c.remote, len(h.clients))
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.drop(c)
				logging.Info("Player disconnected from %s (%d attached)", c.remote, len(h.clients))
			}
		case c := <-h.replay:
			if _, ok := h.clients[c]; ok {
				h.sendState(c)
			}
		case msg := <-h.broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					logging.Warn("Player %s is not keeping up, disconnecting", c.remote)
					h.drop(c)
				}
			}
		case <-h.stopChan:
			for c := range h.clients {
				h.drop(c)
			}
			return
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	close(c.send)
	h.setConnected()
}

func (h *Hub) setConnected() {
	h.connected.Store(int64(len(h.clients)))
	metrics.PlayerClientsConnected.Set(float64(len(h.clients)))
}

func (h *Hub) sendState(c *client) {
	for _, msg := range h.stateMessages() {
		select {
		case c.send <- msg:
		default:
			return
		}
	}
}

// ServeWS upgrades the request and serves one player until it disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("Player websocket upgrade failed: %v", err)
		return
	}

	c := &client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		remote: r.RemoteAddr,
	}

	select {
	case h.register <- c:
	case <-h.stopChan:
		_ = conn.Close()
		return
	}

	go c.writePump()
	c.readPump()
}

func (h *Hub) dispatch(c *client, ev Event) {
	if ev.Type == EventReady {
		select {
		case h.replay <- c:
		case <-h.stopChan:
		}
		return
	}

	sink := h.eventSink()
	if sink == nil {
		return
	}

	switch ev.Type {
	case EventEnded:
		sink.TrackEnded(ev.SongID)
	case EventProgress:
		sink.ReportProgress(ev.SongID, ev.Position, ev.Duration)
	default:
		logging.Debug("Unknown player event %q from %s", ev.Type, c.remote)
	}
}

type client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	remote string
}

func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.stopChan:
		}
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Debug("Player %s read error: %v", c.remote, err)
			}
			return
		}

		var ev Event
		if err := json.Unmarshal(message, &ev); err != nil {
			logging.Debug("Ignoring malformed player event from %s: %v", c.remote, err)
			continue
		}
		c.hub.dispatch(c, ev)
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
