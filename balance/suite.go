package balance

import (
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"golang.org/x/sync/errgroup"

	"kingdoms/balance/metrics"
	"kingdoms/engine"
	"kingdoms/game"
)

// Pairing is one race/strategy matchup in a suite.
type Pairing struct {
	RaceA     string
	StrategyA string
	RaceB     string
	StrategyB string
}

// SuiteConfig enumerates the games a balance suite runs.
type SuiteConfig struct {
	Pairings        []Pairing
	GamesPerPairing int
	Workers         int    // 0 means GOMAXPROCS
	MaxGames        int    // >0 truncates the schedule; partial results are valid
	Seed            uint64 // 0 means seed from the clock
}

// AllRacePairings builds the full ordered race x race grid with a single
// strategy on both sides. Ordered pairs cancel any first-mover advantage in
// the per-race totals.
func AllRacePairings(table *game.RaceTable, strategy string) []Pairing {
	ids := table.IDs()
	pairings := make([]Pairing, 0, len(ids)*len(ids))
	for _, a := range ids {
		for _, b := range ids {
			pairings = append(pairings, Pairing{RaceA: a, StrategyA: strategy, RaceB: b, StrategyB: strategy})
		}
	}
	return pairings
}

// AllStrategyPairings builds the strategy x strategy grid with a single race
// on both sides.
func AllStrategyPairings(race string, strategies []string) []Pairing {
	pairings := make([]Pairing, 0, len(strategies)*len(strategies))
	for _, a := range strategies {
		for _, b := range strategies {
			pairings = append(pairings, Pairing{RaceA: race, StrategyA: a, RaceB: race, StrategyB: b})
		}
	}
	return pairings
}

type job struct {
	id      int
	pairing Pairing
}

// RunSuite plays every configured game on a bounded worker pool and reduces
// the outcomes into a BalanceReport. Games are independent: each gets its own
// RNG seeded from the suite seed plus its schedule index, so a fixed seed
// reproduces the full suite regardless of worker count or completion order.
// Zero configured pairings yields an empty report, not an error.
func RunSuite(cfg SuiteConfig, table *game.RaceTable, tuning *game.Tuning) (BalanceReport, error) {
	schedule := buildSchedule(cfg)
	if len(schedule) == 0 {
		return buildReport(metrics.NewTally(), table, tuning), nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(schedule) {
		workers = len(schedule)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	log.Info().
		Int("pairings", len(cfg.Pairings)).
		Int("games", len(schedule)).
		Int("workers", workers).
		Msg("starting balance suite")

	// Round-robin chunks keep worker-local tallies; the final fold is the
	// only synchronization point.
	tallies := make([]*metrics.Tally, workers)
	var g errgroup.Group
	g.SetLimit(workers)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			tally := metrics.NewTally()
			for i := w; i < len(schedule); i += workers {
				runJob(schedule[i], seed, table, tuning, tally)
			}
			tallies[w] = tally
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BalanceReport{}, err
	}

	merged := metrics.NewTally()
	merged.Merge(tallies...)

	report := buildReport(merged, table, tuning)
	log.Info().
		Int("games", report.GamesPlayed).
		Float64("imbalance", report.ImbalanceScore).
		Msg("completed balance suite")
	return report, nil
}

func buildSchedule(cfg SuiteConfig) []job {
	var schedule []job
	id := 0
	for _, pairing := range cfg.Pairings {
		for i := 0; i < cfg.GamesPerPairing; i++ {
			id++
			schedule = append(schedule, job{id: id, pairing: pairing})
		}
	}
	if cfg.MaxGames > 0 && len(schedule) > cfg.MaxGames {
		schedule = schedule[:cfg.MaxGames]
	}
	return schedule
}

func runJob(j job, seed uint64, table *game.RaceTable, tuning *game.Tuning, tally *metrics.Tally) {
	rng := rand.New(rand.NewSource(seed + uint64(j.id)*0x9E3779B9))
	p := j.pairing

	result := engine.SimulateGame(table, tuning, p.RaceA, p.StrategyA, p.RaceB, p.StrategyB, engine.WithRand(rng))

	rec := metrics.GameRecord{
		ID:           j.id,
		RaceA:        result.Races[0],
		StrategyA:    result.Strategies[0],
		RaceB:        result.Races[1],
		StrategyB:    result.Strategies[1],
		Winner:       result.Winner,
		Turns:        result.Turns,
		WinCondition: string(result.WinCondition),
	}

	switch result.Winner {
	case engine.Player1:
		tally.RecordWin(rec, result.Races[0], result.Races[1], result.LandGained[0], result.GoldGained[0])
	case engine.Player2:
		tally.RecordWin(rec, result.Races[1], result.Races[0], result.LandGained[1], result.GoldGained[1])
	default:
		tally.RecordDraw(rec, result.Races[0], result.Races[1])
	}
}
