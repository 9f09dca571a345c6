package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMove marks a rejected action. The state is left untouched.
	ErrInvalidMove = errors.New("invalid move")
	// ErrEmptyDraw is returned when drawing from an exhausted pile.
	ErrEmptyDraw = errors.New("draw pile is empty")
)

// IllegalPlacementError is the panic value raised when a placement is
// committed without a prior legality check. It is never a normal game event.
type IllegalPlacementError struct {
	Tile   Tile
	Side   Side
	Reason string
}

func (e *IllegalPlacementError) Error() string {
	return fmt.Sprintf("illegal placement of %s on %s: %s", e.Tile, e.Side, e.Reason)
}
