package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/farhatamiine/restaurent-menu/events"
)

// FeedHub pushes menu-item change events to every connected client. There is
// no per-shop scoping on the server: the feed cannot express the item→category
// →shop join, so clients receive everything and drop events for items they do
// not hold (unknown ID merges are no-ops on their side).
type FeedHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan events.Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

// broadcastBuffer absorbs event bursts so publishers never wait on the Run
// loop. When it fills (the loop is stuck on a dead client) events are dropped;
// clients reconcile on the next full reload anyway.
const broadcastBuffer = 64

// writeWait bounds each client write so one stalled connection cannot hold
// the Run loop, and with it every publisher, indefinitely.
const writeWait = 5 * time.Second

func NewFeedHub() *FeedHub {
	return &FeedHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan events.Event, broadcastBuffer),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Publish implements events.Sink. Never blocks the producing request: when
// the buffer is full the event is dropped and logged.
func (h *FeedHub) Publish(ev events.Event) {
	select {
	case h.broadcast <- ev:
	default:
		log.Printf("ws feed: buffer full, dropping %s/%d", ev.Kind, ev.ID)
	}
}

// Run serves register/unregister/broadcast until the process exits.
func (h *FeedHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				conn.SetWriteDeadline(time.Now().Add(writeWait))
				if err := conn.WriteJSON(ev); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/menu
func (h *FeedHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn

	go h.drainClient(conn)
}

// drainClient discards inbound frames so pings and close frames are handled,
// and unregisters the client once the connection drops.
func (h *FeedHub) drainClient(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
