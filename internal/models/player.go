package models

// Player represents a blob controlled by one connection
type Player struct {
	ID    string  `json:"id" msgpack:"id"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	Size  float64 `json:"size" msgpack:"size"`
	Color string  `json:"color" msgpack:"color"`
}

// Food represents a collectible pellet in the arena
type Food struct {
	ID    int64   `json:"id" msgpack:"id"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	Color string  `json:"color" msgpack:"color"`
}
