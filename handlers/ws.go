package handlers

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"hits/middlewares"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// sendBufferSize bounds how many pending hit keys a client can lag behind
// before notifications are dropped for it.
const sendBufferSize = 16

// wsClient owns one connection. All writes go through the send channel so
// only the writer goroutine touches the connection.
type wsClient struct {
	conn *websocket.Conn
	send chan string
	done chan struct{}
}

// Hub tracks live WebSocket clients and pushes them the key of every
// recorded hit.
type Hub struct {
	mu      sync.Mutex
	clients map[*wsClient]struct{}
}

var WSHub = NewHub()

func NewHub() *Hub {
	return &Hub{clients: make(map[*wsClient]struct{})}
}

// Broadcast queues key for every connected client. A client whose buffer is
// full just misses this notification; the hub never blocks on a slow
// reader and never writes to the network while holding its lock.
func (h *Hub) Broadcast(key string) {
	h.mu.Lock()
	clients := make([]*wsClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		select {
		case c.send <- key:
		default:
		}
	}
}

func (h *Hub) add(c *wsClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// remove detaches the client and closes its connection. Safe to call from
// both the reader and writer goroutines; only the first call acts.
func (h *Hub) remove(c *wsClient) {
	h.mu.Lock()
	_, live := h.clients[c]
	if live {
		delete(h.clients, c)
	}
	h.mu.Unlock()

	if live {
		close(c.done)
		c.conn.Close()
	}
}

func (h *Hub) clientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// WSHandler upgrades the connection and parks it in the hub. The writer
// goroutine drains the client's send buffer; the reader goroutine discards
// inbound messages so pings and closes are processed.
func WSHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		middlewares.ErrorLogger.Printf("websocket upgrade failed: %v", err)
		return
	}
	c := &wsClient{
		conn: conn,
		send: make(chan string, sendBufferSize),
		done: make(chan struct{}),
	}
	WSHub.add(c)

	go func() {
		for {
			select {
			case key := <-c.send:
				if err := conn.WriteMessage(websocket.TextMessage, []byte(key)); err != nil {
					WSHub.remove(c)
					return
				}
			case <-c.done:
				return
			}
		}
	}()

	go func() {
		defer WSHub.remove(c)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
