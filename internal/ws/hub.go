package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

const (
	EventNoteCreated   = "note_created"
	EventTaskCreated   = "task_created"
	EventSetCreated    = "flashcard_set_created"
	EventMemberAdded   = "member_added"
	EventMemberRemoved = "member_removed"
)

type GroupEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub fans group activity events out to every member connected to that
// group's feed.
type Hub struct {
	mu     sync.RWMutex
	groups map[uint]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		groups: make(map[uint]map[*websocket.Conn]bool),
	}
}

func (h *Hub) AddConnection(groupID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.groups[groupID] == nil {
		h.groups[groupID] = make(map[*websocket.Conn]bool)
	}
	h.groups[groupID][conn] = true
	log.Printf("ws: client connected to group %d (total: %d)", groupID, len(h.groups[groupID]))
}

func (h *Hub) RemoveConnection(groupID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.groups[groupID]; ok {
		delete(conns, conn)
		conn.Close()
		if len(conns) == 0 {
			delete(h.groups, groupID)
		}
		log.Printf("ws: client disconnected from group %d", groupID)
	}
}

func (h *Hub) Broadcast(groupID uint, event GroupEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.groups[groupID]
	if !ok {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: marshal error: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("ws: write error: %v", err)
			conn.Close()
			delete(conns, conn)
		}
	}
}
