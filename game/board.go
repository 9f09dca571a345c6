package game

import "fmt"

// Placement is a tile committed to the board with its resolved orientation.
// Position only orders placements for rendering: the first tile is 0, left
// placements count down and right placements count up.
type Placement struct {
	Tile     Tile
	Side     Side
	Left     int
	Right    int
	Position int
}

// Vertical reports whether the tile is drawn crosswise (doubles).
func (p Placement) Vertical() bool {
	return p.Tile.IsDouble()
}

func (p Placement) String() string {
	return fmt.Sprintf("[%d|%d]", p.Left, p.Right)
}

// Board is the line of placed tiles. The exposed left end is the Left face of
// the first placement and the exposed right end the Right face of the last.
type Board struct {
	Placements []Placement
}

func (b *Board) Len() int {
	return len(b.Placements)
}

func (b *Board) Empty() bool {
	return len(b.Placements) == 0
}

// Ends returns the exposed values. ok is false on an empty board.
func (b *Board) Ends() (left, right int, ok bool) {
	if b.Empty() {
		return 0, 0, false
	}
	return b.Placements[0].Left, b.Placements[len(b.Placements)-1].Right, true
}

// Ends tells which board ends accept a tile.
type Ends struct {
	Left  bool
	Right bool
}

func (e Ends) Any() bool {
	return e.Left || e.Right
}

func (e Ends) Allows(side Side) bool {
	switch side {
	case Left:
		return e.Left
	case Right:
		return e.Right
	default:
		return false
	}
}

// PlayableEnds reports which ends accept t. Both can be true; choosing is up
// to the caller.
func (b *Board) PlayableEnds(t Tile) Ends {
	left, right, ok := b.Ends()
	if !ok {
		return Ends{Left: true, Right: true}
	}
	return Ends{Left: t.Has(left), Right: t.Has(right)}
}

// ResolveOrientation places t against the given end so that the matching face
// points inward. It panics with *IllegalPlacementError when neither face
// matches; call PlayableEnds first.
func (b *Board) ResolveOrientation(t Tile, side Side) Placement {
	left, right, ok := b.Ends()
	if !ok {
		return Placement{Tile: t, Side: side, Left: t.A, Right: t.B}
	}

	switch side {
	case Left:
		first := b.Placements[0]
		switch {
		case t.A == left:
			return Placement{Tile: t, Side: Left, Left: t.B, Right: t.A, Position: first.Position - 1}
		case t.B == left:
			return Placement{Tile: t, Side: Left, Left: t.A, Right: t.B, Position: first.Position - 1}
		}
		panic(&IllegalPlacementError{Tile: t, Side: side, Reason: fmt.Sprintf("no face matches left end %d", left)})
	case Right:
		last := b.Placements[len(b.Placements)-1]
		switch {
		case t.A == right:
			return Placement{Tile: t, Side: Right, Left: t.A, Right: t.B, Position: last.Position + 1}
		case t.B == right:
			return Placement{Tile: t, Side: Right, Left: t.B, Right: t.A, Position: last.Position + 1}
		}
		panic(&IllegalPlacementError{Tile: t, Side: side, Reason: fmt.Sprintf("no face matches right end %d", right)})
	default:
		panic(&IllegalPlacementError{Tile: t, Side: side, Reason: "unknown side"})
	}
}

// Insert prepends left placements and appends right ones.
func (b *Board) Insert(p Placement) {
	if b.Empty() || p.Side == Right {
		b.Placements = append(b.Placements, p)
		return
	}
	b.Placements = append([]Placement{p}, b.Placements...)
}

// Tiles lists the placed tiles from left to right.
func (b *Board) Tiles() []Tile {
	tiles := make([]Tile, len(b.Placements))
	for i, p := range b.Placements {
		tiles[i] = p.Tile
	}
	return tiles
}

func (b *Board) Copy() Board {
	placements := make([]Placement, len(b.Placements))
	copy(placements, b.Placements)
	return Board{Placements: placements}
}

func (b *Board) String() string {
	s := ""
	for _, p := range b.Placements {
		s += p.String()
	}
	return s
}
