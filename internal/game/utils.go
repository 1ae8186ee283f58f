package game

import (
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/aaronzipp/blobarena/internal/models"
)

// RandomColor picks a fully saturated color with a random hue
func RandomColor(rng *rand.Rand) string {
	return colorful.Hsl(rng.Float64()*360, 1, 0.5).Hex()
}

// NewPlayer creates a player at a random spawn point
func NewPlayer(id string, rng *rand.Rand) *models.Player {
	return &models.Player{
		ID:    id,
		X:     rng.Float64() * SpawnWidth,
		Y:     rng.Float64() * SpawnHeight,
		Size:  InitialSize,
		Color: RandomColor(rng),
	}
}

// NewFood creates a food item anywhere in the world
func NewFood(w *models.World, rng *rand.Rand) *models.Food {
	return &models.Food{
		ID:    w.NextFoodID(),
		X:     rng.Float64() * WorldSize,
		Y:     rng.Float64() * WorldSize,
		Color: RandomColor(rng),
	}
}

func distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
