package strategy

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"kingdoms/game"
)

func testProfile(t *testing.T, id string) game.RaceProfile {
	t.Helper()
	p, ok := game.NewRaceTable().Lookup(id)
	require.True(t, ok)
	return p
}

func TestDecideIsDeterministic(t *testing.T) {
	tuning := game.DefaultTuning()
	state := game.NewAgentState(testProfile(t, "human"), game.DefaultBaseline())
	target := game.NewAgentState(testProfile(t, "gnome"), game.DefaultBaseline())

	first := Decide(state, []*game.AgentState{target}, Balanced, tuning)
	for i := 0; i < 10; i++ {
		got := Decide(state, []*game.AgentState{target}, Balanced, tuning)
		require.Equal(t, first, got, "repeated calls must return byte-identical intents")
	}
}

func TestDecideOutputInvariants(t *testing.T) {
	tuning := game.DefaultTuning()
	human := testProfile(t, "human")

	states := []*game.AgentState{
		game.NewAgentState(human, game.DefaultBaseline()),
		{Race: human}, // all-zero degenerate kingdom
		{Race: human, Land: 1, Gold: 1, Offense: 1, Defense: 1},
		{Race: human, Land: 50000, Gold: 10000000, Population: 100000, Structures: 40000, Offense: 90000, Defense: 90000},
	}

	for _, s := range states {
		for _, policy := range []Policy{Balanced, Aggressive, Economic, Defensive, Arcane} {
			intent := Decide(s, nil, policy, tuning)
			require.GreaterOrEqual(t, intent.Priority, 0)
			require.LessOrEqual(t, intent.Priority, 100)
			require.NotEmpty(t, intent.Reasoning)
			if intent.Amount > 0 {
				require.LessOrEqual(t, intent.Amount, s.Gold, "amount must not exceed current gold")
			}
		}
	}
}

func TestDecideEconomicFoundationThreshold(t *testing.T) {
	tuning := game.DefaultTuning()
	s := &game.AgentState{
		Race: testProfile(t, "human"),
		Land: 1000, Gold: 50000, Population: 500,
		Structures: 800, Offense: 700, Defense: 1000,
	}

	intent := Decide(s, nil, Balanced, tuning)

	require.Equal(t, game.EconomicAction, intent.Kind)
	require.Greater(t, intent.Priority, 80)
	require.Contains(t, intent.Reasoning, "economic foundation")
}

func TestDecideDefendsWhenBuildRateLow(t *testing.T) {
	tuning := game.DefaultTuning()
	s := &game.AgentState{
		Race: testProfile(t, "human"),
		Land: 1000, Gold: 50000, Population: 500,
		Structures: 100, Offense: 1000, Defense: 1000,
	}

	intent := Decide(s, nil, Balanced, tuning)

	require.Equal(t, game.DefendAction, intent.Kind)
	require.Greater(t, intent.Priority, 80)
	require.Contains(t, intent.Reasoning, "build rate")
	require.Contains(t, intent.Reasoning, "0.60", "reasoning should name the target threshold")
}

func TestDecidePrioritizesMagicForAffineRaces(t *testing.T) {
	tuning := game.DefaultTuning()
	s := game.NewAgentState(testProfile(t, "elf"), game.DefaultBaseline())

	intent := Decide(s, nil, Balanced, tuning)

	require.Equal(t, game.MagicAction, intent.Kind)
	require.Greater(t, intent.Priority, 90)
	require.Equal(t, tuning.ChannelCost, intent.Amount)
}

func TestDecideTargetSelection(t *testing.T) {
	tuning := game.DefaultTuning()
	human := testProfile(t, "human")

	t.Run("prefers with_ease over good_fight", func(t *testing.T) {
		s := &game.AgentState{Race: human, Land: 5000, Gold: 1000, Offense: 2000, Defense: 2000, Structures: 4000}
		goodFight := &game.AgentState{Race: human, Land: 2000, Defense: 1500}
		withEase := &game.AgentState{Race: human, Land: 1000, Defense: 900}

		intent := Decide(s, []*game.AgentState{goodFight, withEase}, Aggressive, tuning)

		require.Equal(t, game.AttackAction, intent.Kind)
		require.Equal(t, 1, intent.Target, "should pick the with_ease target")
	})

	t.Run("never attacks a failing target when anything else is possible", func(t *testing.T) {
		s := &game.AgentState{Race: human, Land: 5000, Gold: 50000, Offense: 1000, Defense: 1000, Structures: 4000}
		wall := &game.AgentState{Race: human, Land: 1000, Defense: 5000}

		intent := Decide(s, []*game.AgentState{wall}, Aggressive, tuning)

		require.NotEqual(t, game.AttackAction, intent.Kind)
	})

	t.Run("attacks a failing target as the last resort", func(t *testing.T) {
		// Broke kingdom: no candidate can spend, so the hopeless attack is
		// still a valid action and must be returned.
		s := &game.AgentState{Race: human, Land: 5000, Gold: 0, Offense: 1000, Defense: 1000, Structures: 4000}
		wall := &game.AgentState{Race: human, Land: 1000, Defense: 5000}

		intent := Decide(s, []*game.AgentState{wall}, Aggressive, tuning)

		require.Equal(t, game.AttackAction, intent.Kind)
		require.Equal(t, 0, intent.Target)
		require.NotEmpty(t, intent.Reasoning)
	})
}

func TestNoisyDecideStaysInRange(t *testing.T) {
	tuning := game.DefaultTuning()
	rng := rand.New(rand.NewSource(11))
	s := game.NewAgentState(testProfile(t, "human"), game.DefaultBaseline())
	target := game.NewAgentState(testProfile(t, "gnome"), game.DefaultBaseline())

	for i := 0; i < 100; i++ {
		intent := NoisyDecide(s, []*game.AgentState{target}, Balanced, tuning, rng)
		require.GreaterOrEqual(t, intent.Priority, 0)
		require.LessOrEqual(t, intent.Priority, 100)
		require.NotEmpty(t, intent.Reasoning)
	}
}

func TestPolicyByNameFallsBack(t *testing.T) {
	p, ok := PolicyByName("zerg_rush")
	require.False(t, ok)
	require.Equal(t, DefaultPolicy, p)

	for _, name := range PolicyNames() {
		p, ok := PolicyByName(name)
		require.True(t, ok)
		require.Equal(t, name, p.Name)
	}
}
