package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hearth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 3000, cfg.Matches)
	require.Equal(t, 1000, cfg.WinRateWindow)
	require.Equal(t, 14, cfg.StartHealth)
}

func TestLoad(t *testing.T) {
	t.Run("no file keeps defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
	})

	t.Run("file overrides only what it names", func(t *testing.T) {
		path := writeFile(t, `
matches: 10
record_format: parquet
player2:
  policy: softmax
  temperature: 0.5
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 10, cfg.Matches)
		require.Equal(t, FormatParquet, cfg.RecordFormat)
		require.Equal(t, PolicySoftmax, cfg.Player2.Policy)
		require.Equal(t, 0.5, cfg.Player2.Temperature)
		require.Equal(t, "player2", cfg.Player2.Name, "Fields missing from the file keep their default")
		require.Equal(t, 1000, cfg.WinRateWindow)
	})

	t.Run("environment wins over the file", func(t *testing.T) {
		path := writeFile(t, "matches: 10\n")
		t.Setenv("HEARTH_MATCHES", "7")
		t.Setenv("HEARTH_PLAYER1_POLICY", "greedy")
		t.Setenv("HEARTH_PLAYER1_DECK", "mage")
		t.Setenv("HEARTH_DEDUPE", "false")
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, 7, cfg.Matches)
		require.Equal(t, PolicyGreedy, cfg.Player1.Policy)
		require.Equal(t, "mage", cfg.Player1.Deck)
		require.False(t, cfg.Dedupe)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorContains(t, err, "read config")

		_, err = Load(writeFile(t, "matches: [1, 2]\n"))
		require.ErrorContains(t, err, "parse config")

		t.Setenv("HEARTH_SEED", "not-a-number")
		_, err = Load("")
		require.ErrorContains(t, err, "parse env:")
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		_, err := Load(writeFile(t, "matches: 0\n"))
		require.ErrorContains(t, err, "matches must be positive")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Config)
		errMsg string
	}{
		{"window", func(c *Config) { c.WinRateWindow = -1 }, "win rate window"},
		{"health", func(c *Config) { c.StartHealth = 0 }, "start health"},
		{"search bounds", func(c *Config) { c.MaxDepth = 0 }, "search bounds"},
		{"log level", func(c *Config) { c.LogLevel = "" }, "unknown log level"},
		{"record format", func(c *Config) { c.RecordFormat = "xml" }, `unknown record format "xml"`},
		{"policy", func(c *Config) { c.Player1.Policy = "mcts" }, `player1: unknown policy "mcts"`},
		{"deck", func(c *Config) { c.Player2.Deck = "warlock" }, `player2: unknown deck "warlock"`},
		{"temperature", func(c *Config) {
			c.Player2.Policy = PolicySoftmax
			c.Player2.Temperature = 0
		}, "softmax temperature"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			require.ErrorContains(t, cfg.Validate(), tt.errMsg)
		})
	}
}
