package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type PlayerConfig struct {
	Seat        int
	Name        string
	Policy      string
	Temperature float64
	Deck        string
}

type GameRecord struct {
	Player1 string // PlayerConfig.Name
	Player2 string // PlayerConfig.Name
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

// RecordWriter persists the output of an experiment run.
type RecordWriter interface {
	Dir() string
	WritePlayerConfigs(configs []PlayerConfig) error
	WriteGameRecords(records []GameRecord) error
	WriteMoveRecords(records []MoveRecord) error
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subdirectory of root named by the current timestamp.
func NewWriter(root string) (*Writer, error) {
	baseDir, err := timestampedDir(root)
	if err != nil {
		return nil, err
	}
	return &Writer{
		baseDir: baseDir,
	}, nil
}

func timestampedDir(root string) (string, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(root, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	return baseDir, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WritePlayerConfigs(configs []PlayerConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.Seat),
			config.Name,
			config.Policy,
			strconv.FormatFloat(config.Temperature, 'f', -1, 64),
			config.Deck,
		})
	}
	header := []string{"seat", "name", "policy", "temperature", "deck"}
	return w.write("player_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.Index),
			record.Player1,
			record.Player2,
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			record.Loser,
			record.Reason,
			strconv.Itoa(record.Turns),
			record.StartTime.Format(time.RFC3339Nano),
			record.EndTime.Format(time.RFC3339Nano),
			record.Duration.String(),
		})
	}
	header := []string{"id", "index", "player1", "player2", "starting_player", "winner", "loser", "reason", "turns", "start_time", "end_time", "duration"}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Player),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Sequences),
			strconv.Itoa(record.MaxDepth),
			strconv.Itoa(record.MaxSequences),
			strconv.FormatBool(record.IsTruncated),
		})
	}
	header := []string{"game", "turn", "player", "duration", "nodes", "sequences", "max_depth", "max_sequences", "is_truncated"}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}

	return nil
}
