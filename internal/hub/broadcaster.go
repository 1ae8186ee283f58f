package hub

import (
	"log"
	"os"

	"github.com/aaronzipp/blobarena/internal/models"
)

var debug bool

func init() {
	debug = os.Getenv("DEBUG") != ""
}

// Register adds a client channel to the arena (must be called with lock held)
func Register(arena *models.Arena, client chan models.Message, playerID string) {
	arena.AddClient(client, playerID)
	if debug {
		log.Printf("hub: player %s registered, now have %d clients", playerID, arena.ClientCount())
	}
}

// Unregister removes a client channel from the arena (must be called with lock held)
func Unregister(arena *models.Arena, client chan models.Message) {
	arena.RemoveClient(client)
	if debug {
		log.Printf("hub: client removed, now have %d clients", arena.ClientCount())
	}
}

// Send queues a message for one client without blocking.
// A full buffer drops the message and reports false.
func Send(client chan models.Message, msg models.Message) bool {
	select {
	case client <- msg:
		return true
	default:
		return false
	}
}

// Broadcast queues an event for every connected client (must be called with lock held)
func Broadcast(arena *models.Arena, event string, payload any) int {
	return BroadcastExcept(arena, nil, event, payload)
}

// BroadcastExcept queues an event for every client but skip (must be called with lock held).
// Queueing while locked keeps events in tick order for every client; sends never block.
func BroadcastExcept(arena *models.Arena, skip chan models.Message, event string, payload any) int {
	clients := arena.GetClients()
	msg := models.Message{Event: event, Payload: payload}
	sent, dropped := 0, 0
	for client := range clients {
		if client == skip {
			continue
		}
		if Send(client, msg) {
			sent++
		} else {
			dropped++
		}
	}
	if debug || dropped > 0 {
		log.Printf("hub: event=%s sent to %d clients, dropped for %d", event, sent, dropped)
	}
	return sent
}
