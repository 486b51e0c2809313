// Package experiments plays a configured series of matches and stores the
// results.
package experiments

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hearth/card"
	"hearth/config"
	"hearth/engine"
	"hearth/experiments/metrics"
	"hearth/game"
	"hearth/player"
	"hearth/searcher"
	"hearth/searcher/picker"
)

// Run plays cfg.Matches matches and writes the records under
// cfg.RecordsDir. It returns the directory the records went to.
func Run(cfg config.Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	library, err := loadLibrary(cfg.LibraryPath)
	if err != nil {
		return "", err
	}

	seeds := rand.New(rand.NewSource(cfg.Seed))
	player1, err := createPlayer(cfg, game.Player1, cfg.Player1, library, seeds.Uint64())
	if err != nil {
		return "", err
	}
	player2, err := createPlayer(cfg, game.Player2, cfg.Player2, library, seeds.Uint64())
	if err != nil {
		return "", err
	}

	log.Info().Msgf("starting %d matches between player1=%+v and player2=%+v...", cfg.Matches, cfg.Player1, cfg.Player2)
	match := engine.NewMatch(player1, player2, cfg.WinRateWindow)
	gameMetrics, moveRecords := match.PlayN(cfg.Matches)
	rate, n := match.WinRate()
	log.Info().Msgf("completed %d matches, last %d player 1 win rate: %.3f", cfg.Matches, n, rate)

	gameRecords := make([]metrics.GameRecord, len(gameMetrics))
	for i, g := range gameMetrics {
		gameRecords[i] = metrics.GameRecord{
			Player1:    cfg.Player1.Name,
			Player2:    cfg.Player2.Name,
			GameMetric: g,
		}
	}
	return writeRecords(cfg, gameRecords, moveRecords)
}

func loadLibrary(path string) (*card.Library, error) {
	library := card.NewLibrary()
	if path == "" {
		return library, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open card library: %w", err)
	}
	defer f.Close()
	if err := library.Load(f); err != nil {
		return nil, fmt.Errorf("failed to load card library %s: %w", path, err)
	}
	return library, nil
}

func createPlayer(cfg config.Config, seat game.PlayerID, pc config.PlayerConfig, library *card.Library, seed uint64) (*player.Player, error) {
	deck, ok := card.DeckList(pc.Deck)
	if !ok {
		return nil, fmt.Errorf("%s: unknown deck %q", seat, pc.Deck)
	}
	rng := rand.New(rand.NewSource(seed))
	return player.New(player.Config{
		Seat:        seat,
		Name:        pc.Name,
		Library:     library,
		Deck:        deck,
		StartHealth: cfg.StartHealth,
		Searcher:    createSearcher(cfg),
		Picker:      createPicker(pc, rng),
		Rng:         rng,
	})
}

func createSearcher(cfg config.Config) *searcher.Searcher {
	options := []searcher.Option{
		searcher.WithDedupe(cfg.Dedupe),
		searcher.WithMetrics(),
	}
	if cfg.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(cfg.MaxDepth))
	}
	if cfg.MaxSequences > 0 {
		options = append(options, searcher.WithMaxSequences(cfg.MaxSequences))
	}
	return searcher.New(options...)
}

func createPicker(pc config.PlayerConfig, rng *rand.Rand) picker.Picker {
	switch pc.Policy {
	case config.PolicyGreedy:
		return picker.NewGreedy(game.EvaluateBoard, rng)
	case config.PolicySoftmax:
		return picker.NewSoftmax(game.EvaluateBoard, pc.Temperature, pc.Decay, rng)
	default:
		return picker.NewRandom(rng)
	}
}

func writeRecords(cfg config.Config, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	var (
		writer metrics.RecordWriter
		err    error
	)
	if cfg.RecordFormat == config.FormatParquet {
		writer, err = metrics.NewParquetWriter(cfg.RecordsDir)
	} else {
		writer, err = metrics.NewWriter(cfg.RecordsDir)
	}
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	players := []metrics.PlayerConfig{
		playerRecord(game.Player1, cfg.Player1),
		playerRecord(game.Player2, cfg.Player2),
	}
	if err := writer.WritePlayerConfigs(players); err != nil {
		return "", fmt.Errorf("failed to store player configs: %w", err)
	}
	log.Info().Msg("stored player configs")

	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

func playerRecord(seat game.PlayerID, pc config.PlayerConfig) metrics.PlayerConfig {
	return metrics.PlayerConfig{
		Seat:        int(seat),
		Name:        pc.Name,
		Policy:      pc.Policy,
		Temperature: pc.Temperature,
		Deck:        pc.Deck,
	}
}
