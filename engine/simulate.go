package engine

import (
	"kingdoms/game"
)

// SimulateGame runs a single synchronous game between two race/strategy
// pairs using the shared race table and tuning. Unknown identifiers resolve
// to defaults per the fallback contract; the call never fails for well-formed
// input.
func SimulateGame(table *game.RaceTable, tuning *game.Tuning, raceA, strategyA, raceB, strategyB string, opts ...Option) GameResult {
	return New(table, tuning, raceA, strategyA, raceB, strategyB, opts...).Run()
}
