package balance

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"

	"kingdoms/balance/metrics"
	"kingdoms/game"
)

// Recommendation tuning steps and bounds for the military multiplier.
const (
	overpoweredWinRate  = 0.6
	underpoweredWinRate = 0.4
	militaryStep        = 0.1
	militaryFloor       = 0.8
	militaryCap         = 1.3
)

// RaceStats is the per-race aggregate over one suite.
type RaceStats struct {
	Wins   int
	Losses int
	Draws  int

	WinRate float64

	AvgLandGained   float64 // per victory
	AvgGoldGained   float64 // per victory
	TotalLandGained int
	TotalGoldGained int
}

// BalanceReport is the terminal output of one aggregation run. Records is
// the raw game log kept for export; all statistics derive from the per-race
// sums, never from record order.
type BalanceReport struct {
	Races           map[string]RaceStats
	ImbalanceScore  float64
	Recommendations []string
	GamesPlayed     int
	Records         []metrics.GameRecord
}

// buildReport reduces a merged tally into per-race statistics, the imbalance
// score and rule-based tuning recommendations.
func buildReport(tally *metrics.Tally, table *game.RaceTable, tuning *game.Tuning) BalanceReport {
	report := BalanceReport{
		Races:       make(map[string]RaceStats, len(tally.Races)),
		GamesPlayed: tally.GamesPlayed(),
		Records:     tally.Records,
	}

	var winRates []float64
	for _, id := range sortedRaces(tally) {
		rt := tally.Races[id]
		stats := RaceStats{
			Wins:            rt.Wins,
			Losses:          rt.Losses,
			Draws:           rt.Draws,
			TotalLandGained: rt.LandGained,
			TotalGoldGained: rt.GoldGained,
		}
		if decided := rt.Wins + rt.Losses; decided > 0 {
			stats.WinRate = float64(rt.Wins) / float64(decided)
		}
		if rt.Wins > 0 {
			stats.AvgLandGained = float64(rt.LandGained) / float64(rt.Wins)
			stats.AvgGoldGained = float64(rt.GoldGained) / float64(rt.Wins)
		}
		report.Races[id] = stats
		winRates = append(winRates, stats.WinRate)
	}

	// Population std-dev of win rates is the single "distance from parity"
	// scalar. One race or none means nothing to compare.
	if len(winRates) > 1 {
		report.ImbalanceScore = stat.PopStdDev(winRates, nil)
	}

	report.Recommendations = recommendations(report, table, tuning)
	return report
}

// recommendations derives deterministic, rule-based tuning advice. Race
// iteration is in sorted order so repeated runs over the same tally emit
// identical text.
func recommendations(report BalanceReport, table *game.RaceTable, tuning *game.Tuning) []string {
	ids := make([]string, 0, len(report.Races))
	for id := range report.Races {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if len(ids) == 0 {
		return nil
	}

	var recs []string

	best, worst := ids[0], ids[0]
	for _, id := range ids[1:] {
		if report.Races[id].WinRate > report.Races[best].WinRate {
			best = id
		}
		if report.Races[id].WinRate < report.Races[worst].WinRate {
			worst = id
		}
	}

	if rate := report.Races[best].WinRate; rate > overpoweredWinRate {
		mult := militaryMult(table, best)
		lowered := mult - militaryStep
		if lowered < militaryFloor {
			lowered = militaryFloor
		}
		recs = append(recs, fmt.Sprintf(
			"%s win rate %.2f exceeds %.2f: lower military multiplier from %.2f to %.2f",
			best, rate, overpoweredWinRate, mult, lowered))
	}

	if rate := report.Races[worst].WinRate; rate < underpoweredWinRate && worst != best {
		mult := militaryMult(table, worst)
		raised := mult + militaryStep
		if raised > militaryCap {
			raised = militaryCap
		}
		recs = append(recs, fmt.Sprintf(
			"%s win rate %.2f is below %.2f: raise military multiplier from %.2f to %.2f",
			worst, rate, underpoweredWinRate, mult, raised))
	}

	for _, id := range ids {
		stats := report.Races[id]
		if stats.Wins == 0 {
			continue
		}
		if stats.AvgLandGained > tuning.LandGainCeiling {
			recs = append(recs, fmt.Sprintf(
				"%s is gaining too much land per victory: avg %.0f acres exceeds ceiling %.0f",
				id, stats.AvgLandGained, tuning.LandGainCeiling))
		}
		if stats.AvgGoldGained > tuning.GoldGainCeiling {
			recs = append(recs, fmt.Sprintf(
				"%s is gaining too much gold per victory: avg %.0f exceeds ceiling %.0f",
				id, stats.AvgGoldGained, tuning.GoldGainCeiling))
		}
	}

	return recs
}

func sortedRaces(tally *metrics.Tally) []string {
	ids := make([]string, 0, len(tally.Races))
	for id := range tally.Races {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func militaryMult(table *game.RaceTable, id string) float64 {
	if p, ok := table.Lookup(id); ok {
		return p.MilitaryMult
	}
	return table.Default().MilitaryMult
}

// StatsRows flattens the report for CSV export, in sorted race order.
func (r BalanceReport) StatsRows() []metrics.RaceStatsRow {
	ids := make([]string, 0, len(r.Races))
	for id := range r.Races {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rows := make([]metrics.RaceStatsRow, 0, len(ids))
	for _, id := range ids {
		stats := r.Races[id]
		rows = append(rows, metrics.RaceStatsRow{
			Race:          id,
			Wins:          stats.Wins,
			Losses:        stats.Losses,
			Draws:         stats.Draws,
			WinRate:       stats.WinRate,
			AvgLandGained: stats.AvgLandGained,
			AvgGoldGained: stats.AvgGoldGained,
		})
	}
	return rows
}
