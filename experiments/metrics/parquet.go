package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

type PlayerConfigRow struct {
	Seat        int32   `parquet:"seat"`
	Name        string  `parquet:"name,dict"`
	Policy      string  `parquet:"policy,dict"`
	Temperature float64 `parquet:"temperature"`
	Deck        string  `parquet:"deck,dict"`
}

type GameRow struct {
	ID             string `parquet:"id"`
	Index          int32  `parquet:"index"`
	Player1        string `parquet:"player1,dict"`
	Player2        string `parquet:"player2,dict"`
	StartingPlayer int32  `parquet:"starting_player"`
	Winner         string `parquet:"winner,dict"`
	Loser          string `parquet:"loser,dict"`
	Reason         string `parquet:"reason,dict"`
	Turns          int32  `parquet:"turns"`
	StartUnixNano  int64  `parquet:"start_unix_nano"`
	EndUnixNano    int64  `parquet:"end_unix_nano"`
	DurationNanos  int64  `parquet:"duration_nanos"`
}

type MoveRow struct {
	Game          string `parquet:"game,dict"`
	Turn          int32  `parquet:"turn"`
	Player        int32  `parquet:"player"`
	DurationNanos int64  `parquet:"duration_nanos"`
	Nodes         int32  `parquet:"nodes"`
	Sequences     int32  `parquet:"sequences"`
	MaxDepth      int32  `parquet:"max_depth"`
	MaxSequences  int32  `parquet:"max_sequences"`
	IsTruncated   bool   `parquet:"is_truncated"`
}

// ParquetWriter stores records as zstd compressed parquet files.
type ParquetWriter struct {
	baseDir string
}

func NewParquetWriter(root string) (*ParquetWriter, error) {
	baseDir, err := timestampedDir(root)
	if err != nil {
		return nil, err
	}
	return &ParquetWriter{baseDir: baseDir}, nil
}

func (w *ParquetWriter) Dir() string {
	return w.baseDir
}

func (w *ParquetWriter) WritePlayerConfigs(configs []PlayerConfig) error {
	rows := make([]PlayerConfigRow, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, PlayerConfigRow{
			Seat:        int32(c.Seat),
			Name:        c.Name,
			Policy:      c.Policy,
			Temperature: c.Temperature,
			Deck:        c.Deck,
		})
	}
	return writeParquet(filepath.Join(w.baseDir, "player_configs.parquet"), rows, "player_config_v1")
}

func (w *ParquetWriter) WriteGameRecords(records []GameRecord) error {
	rows := make([]GameRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, GameRow{
			ID:             r.ID,
			Index:          int32(r.Index),
			Player1:        r.Player1,
			Player2:        r.Player2,
			StartingPlayer: int32(r.StartingPlayer),
			Winner:         r.Winner,
			Loser:          r.Loser,
			Reason:         r.Reason,
			Turns:          int32(r.Turns),
			StartUnixNano:  r.StartTime.UnixNano(),
			EndUnixNano:    r.EndTime.UnixNano(),
			DurationNanos:  int64(r.Duration),
		})
	}
	return writeParquet(filepath.Join(w.baseDir, "game_records.parquet"), rows, "game_record_v1")
}

func (w *ParquetWriter) WriteMoveRecords(records []MoveRecord) error {
	rows := make([]MoveRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, MoveRow{
			Game:          r.Game,
			Turn:          int32(r.Turn),
			Player:        int32(r.Player),
			DurationNanos: int64(r.Duration),
			Nodes:         int32(r.Nodes),
			Sequences:     int32(r.Sequences),
			MaxDepth:      int32(r.MaxDepth),
			MaxSequences:  int32(r.MaxSequences),
			IsTruncated:   r.IsTruncated,
		})
	}
	return writeParquet(filepath.Join(w.baseDir, "move_records.parquet"), rows, "move_record_v1")
}

func writeParquet[T any](outPath string, rows []T, schema string) error {
	// Write to a temp file and rename atomically.
	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, rows,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schema),
	); err != nil {
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}
