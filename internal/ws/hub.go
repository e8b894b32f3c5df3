package ws

import (
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// Hub fans company-change events out to every connected client so open list
// views know to re-fetch. Broadcast only; nothing here addresses one client.
type Client struct {
	ID   string
	Send chan []byte
}

type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	register chan *Client
	unreg    chan *Client
	sendAll  chan []byte

	log     *zap.Logger
	stop    chan struct{}
	stopped chan struct{}

	nextID atomic.Uint64
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients:  make(map[string]*Client),
		register: make(chan *Client),
		unreg:    make(chan *Client),
		sendAll:  make(chan []byte, 256),
		log:      log.Named("ws.hub"),
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

func (h *Hub) newID() string {
	return fmt.Sprintf("c%d", h.nextID.Add(1))
}

func (h *Hub) Run() {
	defer close(h.stopped)

	for {
		select {
		case c := <-h.register:
			if c.ID == "" {
				c.ID = h.newID()
			}
			h.mu.Lock()
			h.clients[c.ID] = c
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client registered", zap.String("id", c.ID), zap.Int("total", total))

		case c := <-h.unreg:
			h.mu.Lock()
			if c != nil && c.ID != "" {
				if _, ok := h.clients[c.ID]; ok {
					delete(h.clients, c.ID)
					close(c.Send)
				}
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.log.Info("client unregistered", zap.Int("total", total))

		case msg := <-h.sendAll:
			h.mu.Lock()
			for id, c := range h.clients {
				select {
				case c.Send <- msg:
				default:
					// slow client, drop it rather than stall the hub
					delete(h.clients, id)
					close(c.Send)
					h.log.Warn("dropped slow client", zap.String("id", id))
				}
			}
			h.mu.Unlock()

		case <-h.stop:
			h.mu.Lock()
			for id, c := range h.clients {
				delete(h.clients, id)
				close(c.Send)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.stop)
	<-h.stopped
}

func (h *Hub) Register(c *Client) {
	h.register <- c
}

func (h *Hub) Unregister(c *Client) {
	h.unreg <- c
}

// Broadcast queues a message for every connected client. Never blocks the
// caller; if the hub's queue is full the event is dropped.
func (h *Hub) Broadcast(msg []byte) {
	select {
	case h.sendAll <- msg:
	default:
		h.log.Warn("broadcast queue full, event dropped")
	}
}
