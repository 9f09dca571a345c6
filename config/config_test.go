package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "experiment.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeFile(t, "name: strength\ngames: 12\nseed: 77\nopponent: random\nlogging:\n  level: debug\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, "strength", cfg.Name)
		require.Equal(t, 12, cfg.Games)
		require.Equal(t, uint64(77), cfg.Seed)
		require.Equal(t, OpponentRandom, cfg.Opponent)
		require.Equal(t, "debug", cfg.Logging.Level)
		require.Equal(t, "console", cfg.Logging.Format, "Unset fields should keep defaults")
		require.Empty(t, cfg.OutputDir)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "games: [1"))
		require.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := Load(writeFile(t, "opponent: greedy\n"))
		require.ErrorContains(t, err, "unknown opponent")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "no games", mutate: func(c *Config) { c.Games = 0 }, wantErr: "games"},
		{name: "no name", mutate: func(c *Config) { c.Name = "" }, wantErr: "name"},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "log format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
