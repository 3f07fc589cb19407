package hub

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"github.com/segmentio/ksuid"

	"github.com/JusmeJr93/random-user-gen-backend/logger"
)

const closeGrace = time.Second

// Hub maintains the set of open websocket sessions so they can be closed
// when the server shuts down. All state is owned by the Run goroutine.
type Hub struct {
	log        *logger.Log
	clients    map[string]*websocket.Conn
	register   chan *client
	unregister chan string
	size       chan chan int
	done       chan struct{}
}

type client struct {
	conn *websocket.Conn
	id   string
}

func New(log *logger.Log) *Hub {
	return &Hub{
		log:        log,
		clients:    make(map[string]*websocket.Conn),
		register:   make(chan *client),
		unregister: make(chan string),
		size:       make(chan chan int),
		done:       make(chan struct{}),
	}
}

// Run serves registrations until ctx is done, then closes every session.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	h.log.Debugf("HUB:: Starting the hub")
	for {
		select {
		case c := <-h.register:
			h.log.Debugf("HUB:: Registering session %s", c.id)
			h.clients[c.id] = c.conn
		case id := <-h.unregister:
			if _, ok := h.clients[id]; ok {
				delete(h.clients, id)
				h.log.Debugf("HUB:: %s unregistered", id)
			}
		case reply := <-h.size:
			reply <- len(h.clients)
		case <-ctx.Done():
			h.closeAll()
			return
		}
	}
}

func (h *Hub) closeAll() {
	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for id, conn := range h.clients {
		h.log.Debugf("HUB:: Closing session %s", id)
		conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGrace))
		conn.Close()
		delete(h.clients, id)
	}
}

// Register adds c and returns its session id. Once the hub has stopped the
// connection is closed instead.
func (h *Hub) Register(c *websocket.Conn) string {
	id := ksuid.New().String()
	select {
	case h.register <- &client{c, id}:
	case <-h.done:
		c.Close()
	}
	return id
}

func (h *Hub) Unregister(id string) {
	select {
	case h.unregister <- id:
	case <-h.done:
	}
}

// Len reports the number of open sessions.
func (h *Hub) Len() int {
	reply := make(chan int, 1)
	select {
	case h.size <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}
