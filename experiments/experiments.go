package experiments

import (
	"fmt"

	"domino/agent"
	"domino/config"
	"domino/engine"
	"domino/experiments/metrics"
	"domino/game"
	"domino/meta"

	"github.com/rs/zerolog/log"
)

// Summary is the outcome of an experiment run.
type Summary struct {
	Score   engine.Score
	Records []metrics.GameRecord
	Dir     string // Where results were written, empty when not stored
}

// Run plays cfg.Games games on one engine. A seeded random policy stands in
// for the human seat and goes through the same calls a presentation layer
// would make.
func Run(cfg config.Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	opponent, err := newOpponent(cfg)
	if err != nil {
		return Summary{}, err
	}

	tally := engine.NewTally()
	eng := engine.New(
		engine.WithSeed(cfg.Seed),
		engine.WithPolicy(opponent),
		engine.WithScoreStore(tally),
	)
	player := agent.NewRandom(game.NewRand(cfg.Seed + 1))
	collector := metrics.NewCollector()

	log.Info().Msgf("starting %s experiment with %d games against %s...", cfg.Name, cfg.Games, cfg.Opponent)

	records := make([]metrics.GameRecord, 0, cfg.Games)
	for i := 1; i <= cfg.Games; i++ {
		if i > 1 {
			eng.RequestNewGame()
		}
		record, err := runGame(i, eng, player, collector)
		if err != nil {
			return Summary{}, err
		}
		records = append(records, record)
		log.Debug().Msgf("completed game %d of %d: %s", i, cfg.Games, record.Outcome)
	}

	score := tally.Score()
	log.Info().Msgf("completed %s experiment: player %d, opponent %d, blocked %d", cfg.Name, score.PlayerWins, score.OpponentWins, score.Blocked)

	summary := Summary{Score: score, Records: records}
	if cfg.OutputDir == "" {
		return summary, nil
	}

	writer, err := metrics.NewWriter(cfg.OutputDir, cfg.Name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteConfig(cfg); err != nil {
		return summary, fmt.Errorf("failed to store config: %w", err)
	}
	log.Info().Msg("stored config")
	if err := writer.WriteGameRecords(records); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msgf("stored game records in %s", writer.Dir())

	summary.Dir = writer.Dir()
	return summary, nil
}

// runGame drives the player seat until the engine reaches a terminal state.
func runGame(id int, eng *engine.Engine, player agent.Policy, collector metrics.Collector) (metrics.GameRecord, error) {
	collector.Start()

	snap := eng.Snapshot()
	for step := 0; !snap.Status.Terminal(); step++ {
		if step >= meta.MAX_ACTIONS {
			return metrics.GameRecord{}, fmt.Errorf("game %d did not finish after %d actions", id, meta.MAX_ACTIONS)
		}

		var err error
		board := game.Board{Placements: snap.Board}
		if move, ok := player.SelectMove(snap.PlayerHand, &board); ok {
			snap, err = eng.AttemptPlay(move.Tile.ID(), move.Side)
		} else if snap.PlayerMustDraw {
			_, snap, err = eng.RequestDraw()
			collector.AddPlayerDraw()
		} else {
			snap, err = eng.RequestPass()
			collector.AddPass()
		}
		if err != nil {
			// The random policy only proposes legal moves, so this is a bug
			return metrics.GameRecord{}, fmt.Errorf("game %d step %d: %w", id, step, err)
		}
	}

	return metrics.GameRecord{
		ID:         id,
		Hash:       uint64(snap.Hash),
		GameMetric: collector.Complete(snap.Status.String(), snap.Plays, snap.Draws, len(snap.Board)),
	}, nil
}

func newOpponent(cfg config.Config) (agent.Policy, error) {
	switch cfg.Opponent {
	case config.OpponentFirstMatch:
		return agent.NewFirstMatch(), nil
	case config.OpponentRandom:
		return agent.NewRandom(game.NewRand(cfg.Seed + 2)), nil
	default:
		return nil, fmt.Errorf("unknown opponent %q", cfg.Opponent)
	}
}
