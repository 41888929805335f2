package ws

import (
	"encoding/json"
	"sync"
)

// Room is one channel per collaboration (brand + influencer).
type Room struct {
	CollaborationID uint
	BrandID         uint
	InfluencerID    uint
	clients         map[*Client]struct{}
	mu              sync.RWMutex
}

func NewRoom(collaborationID, brandID, influencerID uint) *Room {
	return &Room{
		CollaborationID: collaborationID,
		BrandID:         brandID,
		InfluencerID:    influencerID,
		clients:         make(map[*Client]struct{}),
	}
}

func (r *Room) Join(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c.room = r
	r.clients[c] = struct{}{}
}

func (r *Room) Leave(c *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.clients, c)
}

func (r *Room) ClientCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.clients)
}

// Broadcast sends payload to every participant except from (nil = everyone).
func (r *Room) Broadcast(from *Client, payload interface{}) {
	data, _ := json.Marshal(payload)
	r.mu.RLock()
	clients := make([]*Client, 0, len(r.clients))
	for c := range r.clients {
		if c != from {
			clients = append(clients, c)
		}
	}
	r.mu.RUnlock()
	for _, c := range clients {
		select {
		case c.Send <- data:
		default:
		}
	}
}

// CollabHub holds all message rooms by collaboration ID.
type CollabHub struct {
	mu    sync.RWMutex
	rooms map[uint]*Room
}

func NewCollabHub() *CollabHub {
	return &CollabHub{rooms: make(map[uint]*Room)}
}

func (h *CollabHub) GetOrCreateRoom(collaborationID, brandID, influencerID uint) *Room {
	h.mu.Lock()
	defer h.mu.Unlock()
	if r, ok := h.rooms[collaborationID]; ok {
		return r
	}
	r := NewRoom(collaborationID, brandID, influencerID)
	h.rooms[collaborationID] = r
	return r
}

func (h *CollabHub) RemoveRoom(collaborationID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms, collaborationID)
}
