package protocol

import "github.com/aaronzipp/blobarena/internal/models"

// Event names carried in the envelope
const (
	EventMove        = "move"
	EventInit        = "init"
	EventNewPlayer   = "newPlayer"
	EventUpdate      = "update"
	EventPlayerEaten = "playerEaten"
	EventPlayerLeft  = "playerLeft"
)

// Envelope is a decoded frame whose payload is still in the codec's wire format
type Envelope struct {
	Event string
	Data  []byte
}

// Move is the client's reported pointer target.
// Fields are pointers so a missing coordinate can be told apart from zero.
type Move struct {
	TargetX *float64 `json:"targetX" msgpack:"targetX"`
	TargetY *float64 `json:"targetY" msgpack:"targetY"`
}

// Init is sent once to a newly connected client
type Init struct {
	Players  []models.Player `json:"players" msgpack:"players"`
	Foods    []models.Food   `json:"foods" msgpack:"foods"`
	PlayerID string          `json:"playerId" msgpack:"playerId"`
}

// Update is the full world state broadcast after each processed move
type Update struct {
	Players []models.Player `json:"players" msgpack:"players"`
	Foods   []models.Food   `json:"foods" msgpack:"foods"`
}

// PlayerRef names a player that was eaten or left
type PlayerRef struct {
	ID string `json:"id" msgpack:"id"`
}
