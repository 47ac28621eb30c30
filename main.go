package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"kingdoms/balance"
	"kingdoms/balance/metrics"
	"kingdoms/game"
)

func main() {
	var (
		tuningPath = flag.String("tuning", "", "path to a YAML tuning override")
		strategyID = flag.String("strategy", "balanced", "strategy used on both sides of the race grid")
		games      = flag.Int("games", 50, "games per pairing")
		workers    = flag.Int("workers", 0, "worker pool size (0 = GOMAXPROCS)")
		maxGames   = flag.Int("max-games", 0, "game budget across the whole suite (0 = unlimited)")
		seed       = flag.Uint64("seed", 0, "suite seed (0 = from clock)")
		name       = flag.String("name", "full_grid", "suite name for the report directory")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	tuning, err := game.LoadTuning(*tuningPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load tuning")
	}

	table := game.NewRaceTable()
	cfg := balance.SuiteConfig{
		Pairings:        balance.AllRacePairings(table, *strategyID),
		GamesPerPairing: *games,
		Workers:         *workers,
		MaxGames:        *maxGames,
		Seed:            *seed,
	}

	report, err := balance.RunSuite(cfg, table, tuning)
	if err != nil {
		log.Fatal().Err(err).Msg("balance suite failed")
	}

	for _, row := range report.StatsRows() {
		log.Info().
			Str("race", row.Race).
			Int("wins", row.Wins).
			Int("losses", row.Losses).
			Int("draws", row.Draws).
			Float64("win_rate", row.WinRate).
			Msg("race stats")
	}
	log.Info().Float64("imbalance", report.ImbalanceScore).Msg("imbalance score")
	for _, rec := range report.Recommendations {
		log.Info().Msgf("recommendation: %s", rec)
	}

	writer, err := metrics.NewWriter(*name)
	if err != nil {
		panic(fmt.Sprintf("failed to create report writer: %v", err))
	}
	if err := writer.WriteRaceStats(report.StatsRows()); err != nil {
		panic(fmt.Sprintf("failed to write race stats: %v", err))
	}
	if err := writer.WriteGameRecords(report.Records); err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	if err := writer.WriteRecommendations(report.Recommendations); err != nil {
		panic(fmt.Sprintf("failed to write recommendations: %v", err))
	}
	log.Info().Msg("stored balance report")
}
