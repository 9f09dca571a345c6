package agent

import "domino/game"

type firstMatch struct{}

// NewFirstMatch returns the scripted opponent: it scans the hand in order and
// plays the first tile that fits, on the left end whenever the left end
// accepts it. There is no look-ahead and no weighting of pips.
func NewFirstMatch() Policy {
	return firstMatch{}
}

func (firstMatch) SelectMove(hand []game.Tile, board *game.Board) (game.Move, bool) {
	for _, tile := range hand {
		ends := board.PlayableEnds(tile)
		if ends.Left {
			return game.Move{Tile: tile, Side: game.Left}, true
		}
		if ends.Right {
			return game.Move{Tile: tile, Side: game.Right}, true
		}
	}
	return game.Move{}, false
}
