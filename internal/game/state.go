package game

import (
	"errors"
	"math/rand/v2"

	"github.com/aaronzipp/blobarena/internal/models"
)

// ErrPlayerNotFound is returned when an intent targets a player that is no longer in the world
var ErrPlayerNotFound = errors.New("player not found")

// MoveResult describes what a single tick did to the world
type MoveResult struct {
	Moved      bool
	FoodEaten  int
	EatenIDs   []string // players consumed by the mover, in join order
	PlayerSize float64
}

// Replenish tops the food pool back up to FoodTarget
func Replenish(w *models.World, rng *rand.Rand) {
	for len(w.Foods) < FoodTarget {
		w.Foods = append(w.Foods, NewFood(w, rng))
	}
}

// SpawnPlayer creates a player with the given ID and adds it to the world
func SpawnPlayer(w *models.World, id string, rng *rand.Rand) *models.Player {
	p := NewPlayer(id, rng)
	w.AddPlayer(p)
	return p
}

// Move runs one tick for a player heading toward (targetX, targetY).
// Ticks are driven by intents, so a player who sends more intents moves more often.
func Move(w *models.World, playerID string, targetX, targetY float64, rng *rand.Rand) (*MoveResult, error) {
	p, ok := w.Player(playerID)
	if !ok {
		return nil, ErrPlayerNotFound
	}
	result := &MoveResult{}

	dist := distance(targetX, targetY, p.X, p.Y)
	if dist > ArrivalDistance {
		p.X += (targetX - p.X) / dist * MoveStep
		p.Y += (targetY - p.Y) / dist * MoveStep
		result.Moved = true
	}
	p.X = clamp(p.X, 0, WorldSize)
	p.Y = clamp(p.Y, 0, WorldSize)

	result.FoodEaten = eatFood(w, p)
	Replenish(w, rng)

	for _, other := range w.Players() {
		if other.ID == p.ID {
			continue
		}
		if !CanEat(p, other) {
			continue
		}
		p.Size += other.Size / 2
		w.RemovePlayer(other.ID)
		result.EatenIDs = append(result.EatenIDs, other.ID)
	}

	result.PlayerSize = p.Size
	return result, nil
}

// CanEat reports whether a overlaps b enough and is large enough to consume it.
// The plain size comparison is redundant with the ratio but kept alongside it.
func CanEat(a, b *models.Player) bool {
	if distance(a.X, a.Y, b.X, b.Y) >= a.Size+b.Size-OverlapMargin {
		return false
	}
	return a.Size > b.Size && a.Size > b.Size*EatRatio
}

// eatFood removes every food item within the player's radius and grows the player
func eatFood(w *models.World, p *models.Player) int {
	eaten := 0
	kept := w.Foods[:0]
	for _, f := range w.Foods {
		if distance(p.X, p.Y, f.X, f.Y) < p.Size {
			p.Size += FoodGrowth
			eaten++
			continue
		}
		kept = append(kept, f)
	}
	for i := len(kept); i < len(w.Foods); i++ {
		w.Foods[i] = nil
	}
	w.Foods = kept
	return eaten
}

// Snapshot copies the current players and foods so they can be sent outside the lock
func Snapshot(w *models.World) ([]models.Player, []models.Food) {
	players := make([]models.Player, 0, w.PlayerCount())
	for _, p := range w.Players() {
		players = append(players, *p)
	}
	foods := make([]models.Food, 0, len(w.Foods))
	for _, f := range w.Foods {
		foods = append(foods, *f)
	}
	return players, foods
}
