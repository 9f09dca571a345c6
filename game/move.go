package game

import "fmt"

// Side is a board end.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// ParseSide accepts "left"/"l" and "right"/"r".
func ParseSide(s string) (Side, error) {
	switch s {
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	default:
		return 0, fmt.Errorf("invalid side %q", s)
	}
}

// Seat identifies one of the two hands.
type Seat int

const (
	Player Seat = iota
	Opponent
)

func (s Seat) String() string {
	if s == Player {
		return "player"
	}
	return "opponent"
}

// Move is a tile together with the board end it attaches to.
type Move struct {
	Tile Tile
	Side Side
}

func (m Move) String() string {
	return fmt.Sprintf("%s@%s", m.Tile, m.Side)
}
