// Package feed streams allocation notices to websocket subscribers of an
// event.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/charity-events/fundraiser-api/internal/domain"
)

const (
	sendBuffer      = 16
	broadcastBuffer = 256
	writeWait       = 10 * time.Second
)

var ErrClosed = errors.New("feed: hub stopped")

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type topic struct {
	kind domain.EventKind
	id   uint
}

type client struct {
	conn  *websocket.Conn
	topic topic
	send  chan []byte
}

// Hub fans notices out to the clients subscribed to the notice's event.
type Hub struct {
	mu         sync.RWMutex
	clients    map[topic]map[*client]struct{}
	register   chan *client
	unregister chan *client
	broadcast  chan domain.AllocationNotice
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[topic]map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan domain.AllocationNotice, broadcastBuffer),
		done:       make(chan struct{}),
	}
}

// Run dispatches until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for t, set := range h.clients {
				for c := range set {
					close(c.send)
				}
				delete(h.clients, t)
			}
			h.mu.Unlock()
			return
		case c := <-h.register:
			h.mu.Lock()
			set, ok := h.clients[c.topic]
			if !ok {
				set = make(map[*client]struct{})
				h.clients[c.topic] = set
			}
			set[c] = struct{}{}
			h.mu.Unlock()
		case c := <-h.unregister:
			h.mu.Lock()
			h.remove(c)
			h.mu.Unlock()
		case n := <-h.broadcast:
			h.dispatch(n)
		}
	}
}

func (h *Hub) dispatch(n domain.AllocationNotice) {
	msg, err := json.Marshal(n)
	if err != nil {
		zap.L().Error("feed: failed to encode notice", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients[topic{kind: n.Kind, id: n.EventID}] {
		select {
		case c.send <- msg:
		default:
			// Slow consumer.
			h.remove(c)
		}
	}
}

// remove must be called with mu held.
func (h *Hub) remove(c *client) {
	set, ok := h.clients[c.topic]
	if !ok {
		return
	}
	if _, ok := set[c]; !ok {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.topic)
	}
}

// Broadcast queues n for delivery. It never blocks; notices are dropped
// when the queue is full.
func (h *Hub) Broadcast(n domain.AllocationNotice) {
	select {
	case h.broadcast <- n:
	default:
		zap.L().Warn("feed: broadcast queue full, dropping notice",
			zap.String("kind", string(n.Kind)),
			zap.Uint("event_id", n.EventID),
		)
	}
}

// Subscribers reports how many clients currently follow the event.
func (h *Hub) Subscribers(kind domain.EventKind, eventID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[topic{kind: kind, id: eventID}])
}

// Serve upgrades the request and subscribes the connection to the event.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, kind domain.EventKind, eventID uint) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &client{
		conn:  conn,
		topic: topic{kind: kind, id: eventID},
		send:  make(chan []byte, sendBuffer),
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return ErrClosed
	}

	go c.writePump()
	go c.readPump(h)

	return nil
}

func (c *client) writePump() {
	defer c.conn.Close()
	for message := range c.send {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump only watches for the peer going away; the feed is one-way.
func (c *client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				zap.L().Debug("feed: connection closed", zap.Error(err))
			}
			return
		}
	}
}
