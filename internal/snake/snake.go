package snake

import (
	"log"
	"math/rand/v2"

	"github.com/aaronzipp/blobarena/internal/store"
)

// Game is a single-player snake session
type Game struct {
	Body          []Point // head first
	Direction     Direction
	NextDirection Direction
	Food          Point
	Score         int
	HighScore     int
	Over          bool

	occupied map[Point]struct{}
	rng      *rand.Rand
	scores   store.ScoreStore
}

// New starts a game and loads the stored high score
func New(rng *rand.Rand, scores store.ScoreStore) *Game {
	g := &Game{rng: rng, scores: scores}
	if scores != nil {
		high, err := scores.Get(HighScoreKey)
		if err != nil {
			log.Printf("snake: loading high score: %v", err)
		}
		g.HighScore = high
	}
	g.Restart()
	return g
}

// Restart puts the snake back at its starting position with a fresh score
func (g *Game) Restart() {
	g.reset(startBody, Right)
}

func (g *Game) reset(body []Point, dir Direction) {
	g.Body = append([]Point(nil), body...)
	g.occupied = make(map[Point]struct{}, len(body))
	for _, p := range g.Body {
		g.occupied[p] = struct{}{}
	}
	g.Direction = dir
	g.NextDirection = dir
	g.Score = 0
	g.Over = false
	g.Food, _ = g.placeFood()
}

// Head returns the snake's leading cell
func (g *Game) Head() Point {
	return g.Body[0]
}

// Occupies reports whether the snake covers p
func (g *Game) Occupies(p Point) bool {
	_, ok := g.occupied[p]
	return ok
}

// ChangeDirection buffers a heading for the next advance.
// Reversing straight into the neck is ignored.
func (g *Game) ChangeDirection(d Direction) bool {
	if d == g.Direction.Opposite() {
		return false
	}
	g.NextDirection = d
	return true
}

// Advance moves the snake one cell
func (g *Game) Advance() Event {
	if g.Over {
		return EventNone
	}
	g.Direction = g.NextDirection

	delta := g.Direction.Delta()
	head := Point{X: g.Head().X + delta.X, Y: g.Head().Y + delta.Y}
	if !inBounds(head) {
		g.end()
		return EventDied
	}

	ate := head == g.Food
	if !ate {
		tail := g.Body[len(g.Body)-1]
		g.Body = g.Body[:len(g.Body)-1]
		delete(g.occupied, tail)
	}
	collided := g.Occupies(head)
	g.Body = append([]Point{head}, g.Body...)
	g.occupied[head] = struct{}{}

	if collided {
		g.end()
		return EventDied
	}
	if ate {
		g.Score += FoodScore
		food, ok := g.placeFood()
		if !ok {
			g.end()
			return EventDied
		}
		g.Food = food
		return EventAte
	}
	return EventMoved
}

// placeFood picks a random free cell, reporting false when the board is full
func (g *Game) placeFood() (Point, bool) {
	if len(g.occupied) >= GridSize*GridSize {
		return Point{X: -1, Y: -1}, false
	}
	for {
		p := Point{X: g.rng.IntN(GridSize), Y: g.rng.IntN(GridSize)}
		if !g.Occupies(p) {
			return p, true
		}
	}
}

func (g *Game) end() {
	g.Over = true
	if g.Score <= g.HighScore {
		return
	}
	g.HighScore = g.Score
	if g.scores == nil {
		return
	}
	if err := g.scores.Set(HighScoreKey, g.HighScore); err != nil {
		log.Printf("snake: saving high score: %v", err)
	}
}

func inBounds(p Point) bool {
	return p.X >= 0 && p.X < GridSize && p.Y >= 0 && p.Y < GridSize
}
