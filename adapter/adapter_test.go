package adapter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kingdoms/game"
)

func snapshot() KingdomSnapshot {
	return KingdomSnapshot{
		Kingdom:       "Stormhold",
		Race:          "dwarf",
		Strategy:      "defensive",
		Gold:          82000,
		Population:    1200,
		Land:          2400,
		Turns:         57,
		OffensePoints: 3100,
		DefensePoints: 4800,
		Buildings:     map[string]int{"farms": 300, "mines": 150, "barracks": 50},
	}
}

func TestToAgentStateMapsFields(t *testing.T) {
	table := game.NewRaceTable()

	conv := ToAgentState(snapshot(), table)

	require.False(t, conv.RaceFallback)
	require.Equal(t, "dwarf", conv.State.Race.ID)
	require.Equal(t, 2400, conv.State.Land)
	require.Equal(t, 82000, conv.State.Gold)
	require.Equal(t, 1200, conv.State.Population)
	require.Equal(t, 500, conv.State.Structures, "structures are the building total")
	require.Equal(t, 3100, conv.State.Offense)
	require.Equal(t, 4800, conv.State.Defense)
	require.Equal(t, 57, conv.State.Turns)
}

func TestToAgentStateUnknownRaceFallsBack(t *testing.T) {
	table := game.NewRaceTable()
	snap := snapshot()
	snap.Race = "merfolk"

	conv := ToAgentState(snap, table)

	require.True(t, conv.RaceFallback, "the substitution must be observable")
	require.Equal(t, game.DefaultRaceID, conv.State.Race.ID)
}

func TestToAgentStateClampsNegatives(t *testing.T) {
	table := game.NewRaceTable()
	snap := snapshot()
	snap.Gold = -100
	snap.Land = -5
	snap.Buildings = map[string]int{"ruins": -20}

	conv := ToAgentState(snap, table)

	require.Equal(t, 0, conv.State.Gold)
	require.Equal(t, 0, conv.State.Land)
	require.Equal(t, 0, conv.State.Structures)
}

func TestLegalTargetsNetworthWindow(t *testing.T) {
	table := game.NewRaceTable()
	self := snapshot() // networth: 2400*1000 + 82000 + 1200*100 = 2602000

	within := snapshot()
	within.Kingdom = "Peer"

	tiny := snapshot()
	tiny.Kingdom = "Hamlet"
	tiny.Land = 100
	tiny.Gold = 1000
	tiny.Population = 50

	giant := snapshot()
	giant.Kingdom = "Empire"
	giant.Land = 50000

	targets := LegalTargets(self, []KingdomSnapshot{within, tiny, giant}, table)

	require.Len(t, targets, 1, "only the peer kingdom is inside the 0.5x-2x window")
	require.Equal(t, 2400, targets[0].Land)
}
