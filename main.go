package main

import (
	"flag"
	"os"
	"time"

	"domino/config"
	"domino/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML experiment config")
	games := flag.Int("games", 0, "Number of games to play (overrides config)")
	seed := flag.Uint64("seed", 0, "Seed for deals and policies (overrides config)")
	opponent := flag.String("opponent", "", "Opponent policy: first_match or random (overrides config)")
	out := flag.String("out", "", "Directory for CSV results (overrides config)")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		cfg = *loaded
	}

	// Only flags given on the command line override the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "games":
			cfg.Games = *games
		case "seed":
			cfg.Seed = *seed
		case "opponent":
			cfg.Opponent = *opponent
		case "out":
			cfg.OutputDir = *out
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})

	setupLogging(cfg.Logging)

	summary, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().
		Int("games", summary.Score.Games()).
		Int("player_wins", summary.Score.PlayerWins).
		Int("opponent_wins", summary.Score.OpponentWins).
		Int("blocked", summary.Score.Blocked).
		Msg("done")
}

func setupLogging(cfg config.LoggingConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}
