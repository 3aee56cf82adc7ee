package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/7pessoal-source/noir-menu-v2/services"
)

// MenuHub pushes "menu updated" events to browsing clients so they can
// re-read the snapshot. Events carry only the version; clients re-fetch
// instead of trusting a payload.
type MenuHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan MenuEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

type MenuEvent struct {
	Type    string `json:"type"`
	Version int64  `json:"version"`
}

func NewMenuHub() *MenuHub {
	return &MenuHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan MenuEvent, 8),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *MenuHub) Run() {
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

// NotifySnapshot is wired as the sync service's OnApply hook.
func (h *MenuHub) NotifySnapshot(snap *services.Snapshot) {
	select {
	case h.broadcast <- MenuEvent{Type: "menu.updated", Version: snap.Version}:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/menu
func (h *MenuHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	h.register <- conn

	// drain reads until the client hangs up
	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
