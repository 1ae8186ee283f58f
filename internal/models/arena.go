package models

import "sync"

// Arena couples the world with its connected clients behind a single lock
type Arena struct {
	World   *World
	mu      sync.RWMutex
	clients map[chan Message]string // channel -> playerID
}

// Message is an event queued for delivery to one client
type Message struct {
	Event   string // Event type (e.g., "update", "playerLeft")
	Payload any    // Snapshot value, encoded by the client's codec
}

// NewArena creates an arena around an empty world
func NewArena() *Arena {
	return &Arena{
		World:   NewWorld(),
		clients: make(map[chan Message]string),
	}
}

// Lock acquires the arena's write lock
func (a *Arena) Lock() {
	a.mu.Lock()
}

// Unlock releases the arena's write lock
func (a *Arena) Unlock() {
	a.mu.Unlock()
}

// RLock acquires the arena's read lock
func (a *Arena) RLock() {
	a.mu.RLock()
}

// RUnlock releases the arena's read lock
func (a *Arena) RUnlock() {
	a.mu.RUnlock()
}

// GetClients returns a copy of the clients map (must be called with lock held)
func (a *Arena) GetClients() map[chan Message]string {
	clients := make(map[chan Message]string, len(a.clients))
	for k, v := range a.clients {
		clients[k] = v
	}
	return clients
}

// AddClient registers a client channel for a player (must be called with lock held)
func (a *Arena) AddClient(client chan Message, playerID string) {
	if a.clients == nil {
		a.clients = make(map[chan Message]string)
	}
	a.clients[client] = playerID
}

// RemoveClient unregisters a client channel (must be called with lock held)
func (a *Arena) RemoveClient(client chan Message) {
	delete(a.clients, client)
}

// ClientCount returns the number of connected clients
func (a *Arena) ClientCount() int {
	return len(a.clients)
}
