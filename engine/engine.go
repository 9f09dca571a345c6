package engine

import (
	"errors"
	"fmt"
	"sync"

	"domino/game"
)

// Status is the turn controller's state.
type Status int

const (
	PlayerTurn Status = iota
	OpponentTurn
	PlayerWon
	OpponentWon
	Blocked
)

func (s Status) String() string {
	switch s {
	case PlayerTurn:
		return "player_turn"
	case OpponentTurn:
		return "opponent_turn"
	case PlayerWon:
		return "player_won"
	case OpponentWon:
		return "opponent_won"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Terminal reports whether only a new game can leave this state.
func (s Status) Terminal() bool {
	return s == PlayerWon || s == OpponentWon || s == Blocked
}

var (
	// ErrGameOver rejects actions once the game reached a terminal state.
	ErrGameOver = errors.New("game is over")
	// ErrHasPlayableTile rejects drawing or passing while a tile fits the board.
	ErrHasPlayableTile = fmt.Errorf("%w: hand holds a playable tile", game.ErrInvalidMove)
	// ErrMustDraw rejects passing while the pile still has tiles.
	ErrMustDraw = fmt.Errorf("%w: draw pile is not empty", game.ErrInvalidMove)
)

// Snapshot is what a presentation layer reads after every transition.
type Snapshot struct {
	Status           Status
	Game             int // 1 for the first game, incremented by RequestNewGame
	PlayerHand       []game.Tile
	OpponentHandSize int
	Board            []game.Placement
	DrawPileSize     int
	PlayerMustDraw   bool // No playable tile, pile has tiles
	PlayerBlocked    bool // No playable tile, pile is empty
	Plays            int
	Draws            int
	Hash             game.StateHash
}

// ScoreStore is notified once per finished game with PlayerWon, OpponentWon
// or Blocked.
type ScoreStore interface {
	Record(outcome Status)
}

// Score is a tally of finished games.
type Score struct {
	PlayerWins   int
	OpponentWins int
	Blocked      int
}

func (s Score) Games() int {
	return s.PlayerWins + s.OpponentWins + s.Blocked
}

// Tally keeps the score in memory. It is safe for concurrent use.
type Tally struct {
	mutex sync.RWMutex
	score Score
}

func NewTally() *Tally {
	return &Tally{}
}

func (t *Tally) Record(outcome Status) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	switch outcome {
	case PlayerWon:
		t.score.PlayerWins++
	case OpponentWon:
		t.score.OpponentWins++
	case Blocked:
		t.score.Blocked++
	}
}

func (t *Tally) Score() Score {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return t.score
}
