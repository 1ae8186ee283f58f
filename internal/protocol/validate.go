package protocol

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidIntent marks a move intent that cannot be applied
var ErrInvalidIntent = errors.New("invalid move intent")

// Target validates the intent and returns its coordinates
func (m Move) Target() (float64, float64, error) {
	if m.TargetX == nil || m.TargetY == nil {
		return 0, 0, fmt.Errorf("%w: missing target coordinate", ErrInvalidIntent)
	}
	x, y := *m.TargetX, *m.TargetY
	if !finite(x) || !finite(y) {
		return 0, 0, fmt.Errorf("%w: non-finite target (%v, %v)", ErrInvalidIntent, x, y)
	}
	return x, y, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
