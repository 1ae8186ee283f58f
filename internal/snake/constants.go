package snake

import "time"

const (
	// GridSize is the width and height of the square board
	GridSize = 20

	// FoodScore is added to the score for each food eaten
	FoodScore = 10

	// TickInterval is how often the snake advances
	TickInterval = 150 * time.Millisecond

	// HighScoreKey is the name the best score is stored under
	HighScoreKey = "snakeHighScore"
)

// startBody is the initial snake, head first
var startBody = []Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
