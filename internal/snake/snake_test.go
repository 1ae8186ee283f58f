package snake

import (
	"math/rand/v2"
	"testing"

	"github.com/aaronzipp/blobarena/internal/store"
)

func newTestGame(t *testing.T) (*Game, *store.MemoryStore) {
	t.Helper()
	scores := store.NewMemoryStore()
	return New(rand.New(rand.NewPCG(7, 11)), scores), scores
}

func TestChangeDirectionRejectsReversal(t *testing.T) {
	for _, current := range []Direction{Right, Left, Up, Down} {
		g, _ := newTestGame(t)
		g.Direction = current
		g.NextDirection = current
		if g.ChangeDirection(current.Opposite()) {
			t.Fatalf("%s: reversal accepted", current)
		}
		if g.NextDirection != current {
			t.Fatalf("%s: next direction changed to %s", current, g.NextDirection)
		}
	}
}

func TestChangeDirectionIsBufferedUntilAdvance(t *testing.T) {
	g, _ := newTestGame(t)
	g.Food = Point{X: 0, Y: 0}
	if !g.ChangeDirection(Up) {
		t.Fatalf("turning up from right should be allowed")
	}
	if g.Direction != Right {
		t.Fatalf("direction applied before advance")
	}
	g.Advance()
	if g.Direction != Up || g.Head() != (Point{X: 10, Y: 9}) {
		t.Fatalf("head = %v dir = %s, want (10,9) up", g.Head(), g.Direction)
	}
}

func TestAdvanceEatsFood(t *testing.T) {
	g, _ := newTestGame(t)
	g.Food = Point{X: 11, Y: 10}

	if ev := g.Advance(); ev != EventAte {
		t.Fatalf("event = %v, want EventAte", ev)
	}
	want := []Point{{11, 10}, {10, 10}, {9, 10}, {8, 10}}
	if len(g.Body) != len(want) {
		t.Fatalf("body = %v, want %v", g.Body, want)
	}
	for i := range want {
		if g.Body[i] != want[i] {
			t.Fatalf("body = %v, want %v", g.Body, want)
		}
	}
	if g.Score != FoodScore {
		t.Fatalf("score = %d, want %d", g.Score, FoodScore)
	}
	if g.Occupies(g.Food) {
		t.Fatalf("new food %v placed on snake", g.Food)
	}
}

func TestAdvanceMovesWithoutGrowing(t *testing.T) {
	g, _ := newTestGame(t)
	g.Food = Point{X: 0, Y: 0}

	if ev := g.Advance(); ev != EventMoved {
		t.Fatalf("event = %v, want EventMoved", ev)
	}
	want := []Point{{11, 10}, {10, 10}, {9, 10}}
	for i := range want {
		if g.Body[i] != want[i] {
			t.Fatalf("body = %v, want %v", g.Body, want)
		}
	}
	if len(g.Body) != 3 || g.Occupies(Point{X: 8, Y: 10}) {
		t.Fatalf("tail was not removed")
	}
}

func TestAdvanceHitsWall(t *testing.T) {
	g, scores := newTestGame(t)
	g.Food = Point{X: 0, Y: 0}
	for i := 0; i < GridSize; i++ {
		g.Advance()
		if g.Over {
			break
		}
		if h := g.Head(); h.X < 0 || h.X >= GridSize || h.Y < 0 || h.Y >= GridSize {
			t.Fatalf("head %v out of bounds while alive", h)
		}
	}
	if !g.Over {
		t.Fatalf("expected game over after running into the wall")
	}
	if g.Head().X != GridSize-1 {
		t.Fatalf("head = %v, want last column", g.Head())
	}
	if v, _ := scores.Get(HighScoreKey); v != 0 {
		t.Fatalf("zero score should not be stored, got %d", v)
	}
	if ev := g.Advance(); ev != EventNone {
		t.Fatalf("advance after game over = %v", ev)
	}
}

func TestAdvanceHitsSelf(t *testing.T) {
	g, _ := newTestGame(t)
	g.reset([]Point{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}}, Down)
	g.Food = Point{X: 0, Y: 0}

	if ev := g.Advance(); ev != EventDied {
		t.Fatalf("event = %v, want EventDied", ev)
	}
	if !g.Over {
		t.Fatalf("expected game over")
	}
}

func TestAdvanceChasingTailIsSafe(t *testing.T) {
	g, _ := newTestGame(t)
	// A 2x2 loop: the head moves into the cell the tail is leaving.
	g.reset([]Point{{5, 5}, {6, 5}, {6, 6}, {5, 6}}, Down)
	g.Food = Point{X: 0, Y: 0}

	if ev := g.Advance(); ev != EventMoved {
		t.Fatalf("event = %v, want EventMoved", ev)
	}
	if g.Over {
		t.Fatalf("moving into the vacated tail cell should not end the game")
	}
}

func TestGameOverPersistsHighScore(t *testing.T) {
	g, scores := newTestGame(t)
	g.Food = Point{X: 11, Y: 10}
	g.Advance()
	g.Food = Point{X: 0, Y: 0}
	for !g.Over {
		g.Advance()
	}
	if g.HighScore != FoodScore {
		t.Fatalf("high score = %d, want %d", g.HighScore, FoodScore)
	}
	if v, _ := scores.Get(HighScoreKey); v != FoodScore {
		t.Fatalf("stored high score = %d, want %d", v, FoodScore)
	}

	g.Restart()
	if g.Score != 0 || g.Over || len(g.Body) != 3 || g.Direction != Right {
		t.Fatalf("restart did not reset the game: %+v", g)
	}
	if g.HighScore != FoodScore {
		t.Fatalf("restart must keep the high score")
	}
}

func TestNewLoadsHighScore(t *testing.T) {
	scores := store.NewMemoryStore()
	if err := scores.Set(HighScoreKey, 90); err != nil {
		t.Fatalf("set: %v", err)
	}
	g := New(rand.New(rand.NewPCG(1, 1)), scores)
	if g.HighScore != 90 {
		t.Fatalf("high score = %d, want 90", g.HighScore)
	}

	g.Food = Point{X: 11, Y: 10}
	g.Advance()
	g.Food = Point{X: 0, Y: 0}
	for !g.Over {
		g.Advance()
	}
	if v, _ := scores.Get(HighScoreKey); v != 90 {
		t.Fatalf("lower score overwrote high score: %d", v)
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	g, _ := newTestGame(t)
	for i := 0; i < 500; i++ {
		food, ok := g.placeFood()
		if !ok {
			t.Fatalf("board reported full")
		}
		for _, p := range g.Body {
			if p == food {
				t.Fatalf("food %v placed on snake", food)
			}
		}
	}
}

func TestFullBoardEndsGame(t *testing.T) {
	g, _ := newTestGame(t)
	body := make([]Point, 0, GridSize*GridSize)
	// Snake the whole board row by row, leaving (0,0) free for the head.
	for y := GridSize - 1; y >= 0; y-- {
		for i := 0; i < GridSize; i++ {
			x := i
			if y%2 == 0 {
				x = GridSize - 1 - i
			}
			if x == 0 && y == 0 {
				continue
			}
			body = append(body, Point{X: x, Y: y})
		}
	}
	// Reverse so the head is next to (0,0).
	for i, j := 0, len(body)-1; i < j; i, j = i+1, j-1 {
		body[i], body[j] = body[j], body[i]
	}
	g.reset(body, Left)
	g.Food = Point{X: 0, Y: 0}

	if ev := g.Advance(); ev != EventDied {
		t.Fatalf("event = %v, want EventDied when the board fills", ev)
	}
	if g.Score != FoodScore {
		t.Fatalf("score = %d, want %d", g.Score, FoodScore)
	}
}
