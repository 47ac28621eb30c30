package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func record(id int, winner string) GameRecord {
	return GameRecord{ID: id, RaceA: "orc", StrategyA: "balanced", RaceB: "gnome", StrategyB: "balanced",
		Winner: winner, Turns: 10, WinCondition: "land_advantage"}
}

func TestTallyRecords(t *testing.T) {
	tally := NewTally()

	tally.RecordWin(record(1, "player1"), "orc", "gnome", 500, 20000)
	tally.RecordWin(record(2, "player2"), "gnome", "orc", 300, 10000)
	tally.RecordDraw(record(3, "draw"), "orc", "gnome")

	require.Equal(t, 3, tally.GamesPlayed())
	require.Equal(t, &RaceTally{Wins: 1, Losses: 1, Draws: 1, LandGained: 500, GoldGained: 20000}, tally.Races["orc"])
	require.Equal(t, &RaceTally{Wins: 1, Losses: 1, Draws: 1, LandGained: 300, GoldGained: 10000}, tally.Races["gnome"])
}

func TestMergeIsOrderIndependent(t *testing.T) {
	build := func() []*Tally {
		a := NewTally()
		a.RecordWin(record(1, "player1"), "orc", "gnome", 500, 20000)
		b := NewTally()
		b.RecordWin(record(2, "player2"), "gnome", "orc", 300, 10000)
		b.RecordDraw(record(3, "draw"), "orc", "gnome")
		c := NewTally()
		c.RecordWin(record(4, "player1"), "orc", "human", 200, 5000)
		return []*Tally{a, b, c}
	}

	forward := NewTally()
	forward.Merge(build()...)

	parts := build()
	backward := NewTally()
	backward.Merge(parts[2])
	backward.Merge(parts[1], parts[0])

	require.Equal(t, forward.Races, backward.Races, "merge must be associative and commutative")
	require.Equal(t, forward.GamesPlayed(), backward.GamesPlayed())
}

func TestMergeSkipsNil(t *testing.T) {
	tally := NewTally()
	tally.Merge(nil, nil)
	require.Equal(t, 0, tally.GamesPlayed())
}
