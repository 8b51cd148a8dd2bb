package server

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/marianogappa/guinote/guinote"
)

// Hub fans out game snapshots to spectators. The game loop only ever hands
// it finished snapshots; all client bookkeeping happens in Run.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	gimme      chan *Client
	messages   chan []byte
	done       chan struct{}

	mu       sync.RWMutex
	snapshot []byte // latest snapshot JSON
	message  []byte // latest snapshot wrapped in a MessageHeresSnapshot
}

// NewHub creates a Hub instance.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		gimme:      make(chan *Client),
		messages:   make(chan []byte, 16),
		done:       make(chan struct{}),
	}
}

// Publish stores the snapshot as the latest one and broadcasts it. It never
// blocks the game loop: if spectators fall behind, frames are dropped.
func (h *Hub) Publish(snapshot guinote.Snapshot) {
	msg, err := NewMessageHeresSnapshot(snapshot)
	if err != nil {
		log.Error().Err(err).Msg("marshalling snapshot")
		return
	}
	bs, err := json.Marshal(msg)
	if err != nil {
		log.Error().Err(err).Msg("marshalling snapshot message")
		return
	}

	h.mu.Lock()
	h.snapshot = msg.Snapshot
	h.message = bs
	h.mu.Unlock()

	select {
	case h.messages <- bs:
	default:
		log.Debug().Msg("spectators behind, frame dropped")
	}
}

// Latest returns the latest snapshot JSON, or nil if nothing was published.
func (h *Hub) Latest() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snapshot
}

func (h *Hub) latestMessage() []byte {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.message
}

// Run starts the Hub's main loop. It returns when ctx is done.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return

		case client := <-h.register:
			h.clients[client] = true
			log.Info().Str("client", client.ID).Str("addr", client.conn.RemoteAddr().String()).Msg("spectator connected")
			hello, _ := json.Marshal(NewMessageHello(client.ID))
			h.send(client, hello)
			if latest := h.latestMessage(); latest != nil {
				h.send(client, latest)
			}

		case client := <-h.unregister:
			if h.clients[client] {
				delete(h.clients, client)
				close(client.send)
				log.Info().Str("client", client.ID).Msg("spectator disconnected")
			}

		case client := <-h.gimme:
			if latest := h.latestMessage(); latest != nil && h.clients[client] {
				h.send(client, latest)
			}

		case message := <-h.messages:
			for client := range h.clients {
				h.send(client, message)
			}
		}
	}
}

// send queues a message for a client, dropping the client if its buffer is full.
func (h *Hub) send(client *Client, message []byte) {
	select {
	case client.send <- message:
	default:
		log.Warn().Str("client", client.ID).Msg("spectator too slow, dropping")
		delete(h.clients, client)
		close(client.send)
	}
}
