package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// RaceStatsRow is one exported row of per-race aggregate statistics.
type RaceStatsRow struct {
	Race          string
	Wins          int
	Losses        int
	Draws         int
	WinRate       float64
	AvgLandGained float64
	AvgGoldGained float64
}

// Writer exports suite results as CSV files under a timestamped directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a report directory named by the suite and current
// timestamp, e.g. reports/full_grid/2026-08-25T12:00:00Z.
func NewWriter(name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join("reports", name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) writeCSV(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", file, err)
		}
	}
	return nil
}

func (w *Writer) WriteRaceStats(rows []RaceStatsRow) error {
	header := []string{"race", "wins", "losses", "draws", "win_rate", "avg_land_gained", "avg_gold_gained"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.Race,
			strconv.Itoa(r.Wins),
			strconv.Itoa(r.Losses),
			strconv.Itoa(r.Draws),
			strconv.FormatFloat(r.WinRate, 'f', 4, 64),
			strconv.FormatFloat(r.AvgLandGained, 'f', 2, 64),
			strconv.FormatFloat(r.AvgGoldGained, 'f', 2, 64),
		})
	}
	return w.writeCSV("race_stats.csv", header, out)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "race_a", "strategy_a", "race_b", "strategy_b", "winner", "turns", "win_condition"}
	out := make([][]string, 0, len(records))
	for _, rec := range records {
		out = append(out, []string{
			strconv.Itoa(rec.ID),
			rec.RaceA,
			rec.StrategyA,
			rec.RaceB,
			rec.StrategyB,
			rec.Winner,
			strconv.Itoa(rec.Turns),
			rec.WinCondition,
		})
	}
	return w.writeCSV("game_records.csv", header, out)
}

func (w *Writer) WriteRecommendations(recommendations []string) error {
	header := []string{"recommendation"}
	out := make([][]string, 0, len(recommendations))
	for _, r := range recommendations {
		out = append(out, []string{r})
	}
	return w.writeCSV("recommendations.csv", header, out)
}
