package models

// World holds the authoritative blob arena state.
// Players are kept in join order; every method must be called with the owning arena locked.
type World struct {
	Foods []*Food

	players    map[string]*Player
	order      []string
	nextFoodID int64
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{
		players: make(map[string]*Player),
	}
}

// AddPlayer registers a player, replacing any record with the same ID
func (w *World) AddPlayer(p *Player) {
	if _, exists := w.players[p.ID]; !exists {
		w.order = append(w.order, p.ID)
	}
	w.players[p.ID] = p
}

// Player looks up a player by ID
func (w *World) Player(id string) (*Player, bool) {
	p, ok := w.players[id]
	return p, ok
}

// RemovePlayer deletes a player and reports whether it existed
func (w *World) RemovePlayer(id string) bool {
	if _, ok := w.players[id]; !ok {
		return false
	}
	delete(w.players, id)
	for i, pid := range w.order {
		if pid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
	return true
}

// Players returns the live player records in join order
func (w *World) Players() []*Player {
	out := make([]*Player, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.players[id])
	}
	return out
}

// PlayerCount returns the number of players in the world
func (w *World) PlayerCount() int {
	return len(w.players)
}

// NextFoodID hands out a fresh food identifier
func (w *World) NextFoodID() int64 {
	id := w.nextFoodID
	w.nextFoodID++
	return id
}
