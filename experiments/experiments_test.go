package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/require"

	"hearth/config"
	"hearth/experiments/metrics"
)

func smallConfig(t *testing.T) config.Config {
	cfg := config.Default()
	cfg.Matches = 3
	cfg.WinRateWindow = 2
	cfg.MaxSequences = 100
	cfg.RecordsDir = t.TempDir()
	return cfg
}

func TestRun(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		dir, err := Run(smallConfig(t))
		require.NoError(t, err)
		for _, name := range []string{"player_configs.csv", "game_records.csv", "move_records.csv"} {
			require.FileExists(t, filepath.Join(dir, name))
		}
	})

	t.Run("parquet", func(t *testing.T) {
		cfg := smallConfig(t)
		cfg.RecordFormat = config.FormatParquet
		cfg.Player1.Policy = config.PolicySoftmax
		dir, err := Run(cfg)
		require.NoError(t, err)

		games, err := parquet.ReadFile[metrics.GameRow](filepath.Join(dir, "game_records.parquet"))
		require.NoError(t, err)
		require.Len(t, games, 3)
		for i, g := range games {
			require.Equal(t, int32(i), g.Index)
			require.Contains(t, []string{"player1", "player2"}, g.Winner)
		}
	})

	t.Run("custom card library", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cards.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
cards:
  - name: Fireball
    cost: 1
    spell: damage_to_a_target_20
`), 0o644))
		cfg := smallConfig(t)
		cfg.Matches = 1
		cfg.LibraryPath = path
		cfg.Player1.Policy = config.PolicyGreedy
		_, err := Run(cfg)
		require.NoError(t, err)
	})

	t.Run("errors", func(t *testing.T) {
		cfg := smallConfig(t)
		cfg.LibraryPath = filepath.Join(t.TempDir(), "missing.yaml")
		_, err := Run(cfg)
		require.ErrorContains(t, err, "failed to open card library")

		cfg = smallConfig(t)
		cfg.Matches = 0
		_, err = Run(cfg)
		require.Error(t, err)
	})
}
