package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"

	"domino/meta"
	"domino/utils"
)

type StateHash uint64

// GameState owns every zone of a single game: both hands, the draw pile and
// the board. All tile movement goes through Commit and Draw.
type GameState struct {
	PlayerHand   []Tile // Tiles in deal/draw order
	OpponentHand []Tile // Tiles in deal/draw order
	Pile         []Tile // Draw pile, front is drawn first
	Board        Board
	Plays        int // Committed placements
	Draws        int // Tiles moved from the pile into a hand
}

// NewGameState deals the given deck as-is: HAND_SIZE tiles to the player,
// the next HAND_SIZE to the opponent and the rest to the pile.
func NewGameState(deck []Tile) *GameState {
	if len(deck) < 2*meta.HAND_SIZE {
		panic(fmt.Sprintf("deck of %d tiles cannot deal two hands of %d", len(deck), meta.HAND_SIZE))
	}
	gs := &GameState{
		PlayerHand:   make([]Tile, meta.HAND_SIZE),
		OpponentHand: make([]Tile, meta.HAND_SIZE),
		Pile:         make([]Tile, len(deck)-2*meta.HAND_SIZE),
	}
	copy(gs.PlayerHand, deck[:meta.HAND_SIZE])
	copy(gs.OpponentHand, deck[meta.HAND_SIZE:2*meta.HAND_SIZE])
	copy(gs.Pile, deck[2*meta.HAND_SIZE:])
	return gs
}

// Deal shuffles a fresh set and deals it.
func Deal(rng Rand) *GameState {
	return NewGameState(Shuffle(NewSet(), rng))
}

func (gs *GameState) hand(seat Seat) *[]Tile {
	if seat == Player {
		return &gs.PlayerHand
	}
	return &gs.OpponentHand
}

// Hand returns the seat's tiles. The slice is owned by the state.
func (gs *GameState) Hand(seat Seat) []Tile {
	return *gs.hand(seat)
}

func (gs *GameState) Holds(seat Seat, t Tile) bool {
	return utils.FindIndex(gs.Hand(seat), t) >= 0
}

// Playable lists every legal move for the seat in hand order, left before
// right. On an empty board both ends are the same, so only Left is listed.
func (gs *GameState) Playable(seat Seat) []Move {
	var moves []Move
	for _, t := range gs.Hand(seat) {
		ends := gs.Board.PlayableEnds(t)
		if ends.Left {
			moves = append(moves, Move{Tile: t, Side: Left})
		}
		if ends.Right && !gs.Board.Empty() {
			moves = append(moves, Move{Tile: t, Side: Right})
		}
	}
	return moves
}

// CanMove reports whether the seat holds at least one playable tile.
func (gs *GameState) CanMove(seat Seat) bool {
	for _, t := range gs.Hand(seat) {
		if gs.Board.PlayableEnds(t).Any() {
			return true
		}
	}
	return false
}

// Commit moves t from the seat's hand onto the given board end. Everything is
// checked before anything changes; a violation panics with
// *IllegalPlacementError because callers validate first.
func (gs *GameState) Commit(seat Seat, t Tile, side Side) Placement {
	hand := gs.hand(seat)
	idx := utils.FindIndex(*hand, t)
	if idx < 0 {
		panic(&IllegalPlacementError{Tile: t, Side: side, Reason: fmt.Sprintf("tile is not in the %s's hand", seat)})
	}
	if !gs.Board.PlayableEnds(t).Allows(side) {
		panic(&IllegalPlacementError{Tile: t, Side: side, Reason: "end does not match"})
	}
	p := gs.Board.ResolveOrientation(t, side)

	*hand = append((*hand)[:idx:idx], (*hand)[idx+1:]...)
	gs.Board.Insert(p)
	gs.Plays++
	return p
}

// Draw moves the front of the pile into the seat's hand.
func (gs *GameState) Draw(seat Seat) (Tile, error) {
	if len(gs.Pile) == 0 {
		return Tile{}, ErrEmptyDraw
	}
	t := gs.Pile[0]
	gs.Pile = gs.Pile[1:]
	hand := gs.hand(seat)
	*hand = append(*hand, t)
	gs.Draws++
	return t, nil
}

func (gs GameState) Copy() *GameState {
	playerHandCopy := make([]Tile, len(gs.PlayerHand))
	copy(playerHandCopy, gs.PlayerHand)

	opponentHandCopy := make([]Tile, len(gs.OpponentHand))
	copy(opponentHandCopy, gs.OpponentHand)

	pileCopy := make([]Tile, len(gs.Pile))
	copy(pileCopy, gs.Pile)

	return &GameState{
		PlayerHand:   playerHandCopy,
		OpponentHand: opponentHandCopy,
		Pile:         pileCopy,
		Board:        gs.Board.Copy(),
		Plays:        gs.Plays,
		Draws:        gs.Draws,
	}
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	writeTiles := func(tiles []Tile) {
		binary.Write(hasher, binary.LittleEndian, int64(len(tiles)))
		for _, t := range tiles {
			binary.Write(hasher, binary.LittleEndian, [2]int64{int64(t.A), int64(t.B)})
		}
	}

	writeTiles(gs.PlayerHand)
	writeTiles(gs.OpponentHand)
	writeTiles(gs.Pile)

	// Orientation matters for the board, so hash the resolved faces
	binary.Write(hasher, binary.LittleEndian, int64(gs.Board.Len()))
	for _, p := range gs.Board.Placements {
		binary.Write(hasher, binary.LittleEndian, [2]int64{int64(p.Left), int64(p.Right)})
	}

	return StateHash(hasher.Sum64())
}

// Verify checks that every tile of the set sits in exactly one zone and that
// the board is a consistent chain.
func (gs *GameState) Verify() error {
	seen := make(map[Tile]string, meta.SET_SIZE)
	zones := []struct {
		name  string
		tiles []Tile
	}{
		{"player hand", gs.PlayerHand},
		{"opponent hand", gs.OpponentHand},
		{"draw pile", gs.Pile},
		{"board", gs.Board.Tiles()},
	}
	for _, zone := range zones {
		for _, t := range zone.tiles {
			if prev, ok := seen[t]; ok {
				return fmt.Errorf("tile %s is in both the %s and the %s", t, prev, zone.name)
			}
			seen[t] = zone.name
		}
	}
	for _, t := range NewSet() {
		if _, ok := seen[t]; !ok {
			return fmt.Errorf("tile %s is missing", t)
		}
	}
	if len(seen) != meta.SET_SIZE {
		return fmt.Errorf("found %d distinct tiles, want %d", len(seen), meta.SET_SIZE)
	}

	for i, p := range gs.Board.Placements {
		if NewTile(p.Left, p.Right) != p.Tile {
			return fmt.Errorf("placement %d shows %d|%d for tile %s", i, p.Left, p.Right, p.Tile)
		}
		if i > 0 && gs.Board.Placements[i-1].Right != p.Left {
			return fmt.Errorf("placement %d left face %d does not meet %d", i, p.Left, gs.Board.Placements[i-1].Right)
		}
	}
	return nil
}
