package engine

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"domino/agent"
	"domino/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// Engine drives a single human-vs-opponent game at a time. Every exported
// method is one synchronous transition: an opponent turn, draws included,
// is fully resolved before the call returns.
type Engine struct {
	mutex    sync.Mutex
	rng      game.Rand
	policy   agent.Policy
	scores   ScoreStore
	observer func(Snapshot)
	state    *game.GameState
	status   Status
	game     int
}

// WithRand sets the source used for every deal.
func WithRand(rng game.Rand) Option {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(e *Engine) {
		e.rng = game.NewRand(seed)
	}
}

// WithPolicy replaces the opponent's move selection.
func WithPolicy(policy agent.Policy) Option {
	return func(e *Engine) {
		if policy != nil {
			e.policy = policy
		}
	}
}

func WithScoreStore(scores ScoreStore) Option {
	return func(e *Engine) {
		e.scores = scores
	}
}

// WithObserver registers a callback that receives a snapshot after every
// transition. It runs while the engine is locked and must not call back
// into the engine.
func WithObserver(observer func(Snapshot)) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// WithState starts the first game from a prepared state instead of a deal.
func WithState(state *game.GameState) Option {
	return func(e *Engine) {
		e.state = state
	}
}

func New(options ...Option) *Engine {
	e := &Engine{ // Default values
		rng:    game.NewRand(uint64(time.Now().UnixNano())),
		policy: agent.NewFirstMatch(),
	}
	for _, option := range options {
		option(e)
	}
	if e.state == nil {
		e.state = game.Deal(e.rng)
	}
	e.game = 1
	e.status = PlayerTurn

	log.Info().Msgf("game %d dealt, player to move", e.game)
	return e
}

// Snapshot returns the current view of the game.
func (e *Engine) Snapshot() Snapshot {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.snapshot()
}

// State returns a copy of the full game state, hidden zones included.
func (e *Engine) State() *game.GameState {
	e.mutex.Lock()
	defer e.mutex.Unlock()
	return e.state.Copy()
}

// AttemptPlay plays a tile from the player's hand on the given end. A tile
// that is not in hand, or does not fit that end, is rejected with an error
// wrapping game.ErrInvalidMove and nothing changes.
func (e *Engine) AttemptPlay(tileID string, side game.Side) (Snapshot, error) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if err := e.requirePlayerTurn(); err != nil {
		return e.reject("play", err)
	}
	tile, err := game.ParseTile(tileID)
	if err != nil {
		return e.reject("play", fmt.Errorf("%w: %v", game.ErrInvalidMove, err))
	}
	if !e.state.Holds(game.Player, tile) {
		return e.reject("play", fmt.Errorf("%w: tile %s is not in hand", game.ErrInvalidMove, tile))
	}
	if !e.state.Board.PlayableEnds(tile).Allows(side) {
		return e.reject("play", fmt.Errorf("%w: tile %s does not fit the %s end", game.ErrInvalidMove, tile, side))
	}

	e.commit(game.Player, game.Move{Tile: tile, Side: side})
	if len(e.state.PlayerHand) == 0 {
		e.finish(PlayerWon)
		return e.snapshot(), nil
	}

	e.transition(OpponentTurn)
	e.opponentTurn()
	return e.snapshot(), nil
}

// RequestDraw moves the front of the pile into the player's hand. It is only
// allowed when nothing in hand fits the board; the turn stays with the player.
func (e *Engine) RequestDraw() (game.Tile, Snapshot, error) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if err := e.requirePlayerTurn(); err != nil {
		snap, err := e.reject("draw", err)
		return game.Tile{}, snap, err
	}
	if e.state.CanMove(game.Player) {
		snap, err := e.reject("draw", ErrHasPlayableTile)
		return game.Tile{}, snap, err
	}
	tile, err := e.state.Draw(game.Player)
	if err != nil {
		snap, err := e.reject("draw", err)
		return game.Tile{}, snap, err
	}

	log.Debug().Str("seat", game.Player.String()).Str("tile", tile.ID()).Int("pile", len(e.state.Pile)).Msg("drew tile")
	e.notify()
	return tile, e.snapshot(), nil
}

// RequestPass hands the turn to the opponent when the player can neither
// play nor draw. If the opponent is stuck too, the game is blocked.
func (e *Engine) RequestPass() (Snapshot, error) {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if err := e.requirePlayerTurn(); err != nil {
		return e.reject("pass", err)
	}
	if e.state.CanMove(game.Player) {
		return e.reject("pass", ErrHasPlayableTile)
	}
	if len(e.state.Pile) > 0 {
		return e.reject("pass", ErrMustDraw)
	}

	log.Debug().Str("seat", game.Player.String()).Msg("passed")
	e.transition(OpponentTurn)
	e.opponentTurn()
	return e.snapshot(), nil
}

// RequestNewGame discards the current game, whatever its state, and deals a
// fresh one with the player to move.
func (e *Engine) RequestNewGame() Snapshot {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	previous := e.status
	e.state = game.Deal(e.rng)
	e.game++
	e.status = PlayerTurn

	log.Info().Msgf("game %d dealt, previous game ended as %s", e.game, previous)
	e.notify()
	return e.snapshot()
}

// opponentTurn asks the policy for a move, drawing one tile at a time while
// it has none. Every pass either commits a tile or shrinks the pile, so the
// loop ends within len(Pile)+1 iterations.
func (e *Engine) opponentTurn() {
	for {
		hand := slices.Clone(e.state.Hand(game.Opponent))
		board := e.state.Board.Copy()
		if move, ok := e.policy.SelectMove(hand, &board); ok {
			e.commit(game.Opponent, move)
			if len(e.state.OpponentHand) == 0 {
				e.finish(OpponentWon)
				return
			}
			e.transition(PlayerTurn)
			return
		}

		tile, err := e.state.Draw(game.Opponent)
		if errors.Is(err, game.ErrEmptyDraw) {
			e.finish(Blocked)
			return
		}
		log.Debug().Str("seat", game.Opponent.String()).Str("tile", tile.ID()).Int("pile", len(e.state.Pile)).Msg("drew tile")
		e.notify()
	}
}

// commit is the only path that places tiles. A move that slipped past
// validation panics inside game.GameState.Commit.
func (e *Engine) commit(seat game.Seat, move game.Move) {
	p := e.state.Commit(seat, move.Tile, move.Side)
	log.Debug().
		Str("seat", seat.String()).
		Str("tile", move.Tile.ID()).
		Str("side", move.Side.String()).
		Int("left", p.Left).
		Int("right", p.Right).
		Msg("played tile")
}

func (e *Engine) transition(status Status) {
	e.status = status
	e.notify()
}

func (e *Engine) finish(outcome Status) {
	e.status = outcome
	log.Info().Msgf("game %d over: %s after %d plays", e.game, outcome, e.state.Plays)
	if e.scores != nil {
		e.scores.Record(outcome)
	}
	e.notify()
}

func (e *Engine) notify() {
	if e.observer != nil {
		e.observer(e.snapshot())
	}
}

func (e *Engine) requirePlayerTurn() error {
	if e.status.Terminal() {
		return fmt.Errorf("%w: %s", ErrGameOver, e.status)
	}
	return nil
}

func (e *Engine) reject(action string, err error) (Snapshot, error) {
	log.Warn().Err(err).Str("action", action).Msg("rejected")
	return e.snapshot(), err
}

func (e *Engine) snapshot() Snapshot {
	stuck := e.status == PlayerTurn && !e.state.CanMove(game.Player)
	return Snapshot{
		Status:           e.status,
		Game:             e.game,
		PlayerHand:       slices.Clone(e.state.PlayerHand),
		OpponentHandSize: len(e.state.OpponentHand),
		Board:            slices.Clone(e.state.Board.Placements),
		DrawPileSize:     len(e.state.Pile),
		PlayerMustDraw:   stuck && len(e.state.Pile) > 0,
		PlayerBlocked:    stuck && len(e.state.Pile) == 0,
		Plays:            e.state.Plays,
		Draws:            e.state.Draws,
		Hash:             e.state.Hash(),
	}
}
