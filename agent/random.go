package agent

import "domino/game"

type random struct {
	rng game.Rand
}

// NewRandom returns a policy that picks uniformly among every legal
// (tile, side) pair. Experiments use it to stand in for the human seat.
func NewRandom(rng game.Rand) Policy {
	return random{rng: rng}
}

func (r random) SelectMove(hand []game.Tile, board *game.Board) (game.Move, bool) {
	var moves []game.Move
	for _, tile := range hand {
		ends := board.PlayableEnds(tile)
		if ends.Left {
			moves = append(moves, game.Move{Tile: tile, Side: game.Left})
		}
		// Both ends are the same spot on an empty board
		if ends.Right && !board.Empty() {
			moves = append(moves, game.Move{Tile: tile, Side: game.Right})
		}
	}
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
