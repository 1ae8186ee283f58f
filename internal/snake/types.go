package snake

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Direction is a heading on the grid
type Direction int

const (
	Right Direction = iota
	Left
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Delta is the one-cell offset for the direction; y grows downward
func (d Direction) Delta() Point {
	switch d {
	case Right:
		return Point{X: 1}
	case Left:
		return Point{X: -1}
	case Up:
		return Point{Y: -1}
	case Down:
		return Point{Y: 1}
	default:
		return Point{}
	}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case Right:
		return Left
	case Left:
		return Right
	case Up:
		return Down
	default:
		return Up
	}
}

// Event reports what an advance did
type Event int

const (
	EventNone Event = iota
	EventMoved
	EventAte
	EventDied
)
