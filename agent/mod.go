package agent

import "domino/game"

// Policy picks a move for a hand against the current board. It returns false
// when no tile in the hand can be played.
type Policy interface {
	SelectMove(hand []game.Tile, board *game.Board) (game.Move, bool)
}

// Func lets an ordinary function serve as a Policy.
type Func func(hand []game.Tile, board *game.Board) (game.Move, bool)

func (f Func) SelectMove(hand []game.Tile, board *game.Board) (game.Move, bool) {
	return f(hand, board)
}
