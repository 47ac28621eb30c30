package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestApplyGrowthDeterministicWithoutRand(t *testing.T) {
	tuning := DefaultTuning()
	table := NewRaceTable()
	human, _ := table.Lookup("human")

	a := NewAgentState(human, DefaultBaseline())
	b := NewAgentState(human, DefaultBaseline())

	ApplyGrowth(a, tuning, nil)
	ApplyGrowth(b, tuning, nil)

	require.Equal(t, a, b, "nil rng growth must be identical across calls")
	require.Equal(t, 50000+800*tuning.IncomePerStructure, a.Gold)
	require.Equal(t, 500+int(1000*tuning.PopGrowthPerAcre), a.Population)
}

func TestApplyGrowthHousingCap(t *testing.T) {
	tuning := DefaultTuning()
	table := NewRaceTable()
	human, _ := table.Lookup("human")

	s := NewAgentState(human, DefaultBaseline())
	s.Population = s.Land * tuning.HousingPerAcre

	ApplyGrowth(s, tuning, nil)

	require.Equal(t, s.Land*tuning.HousingPerAcre, s.Population, "population must not exceed housing")
}

func TestApplyGrowthIncomeJitterBounds(t *testing.T) {
	tuning := DefaultTuning()
	table := NewRaceTable()
	human, _ := table.Lookup("human")
	rng := rand.New(rand.NewSource(3))

	base := 800 * tuning.IncomePerStructure
	// Boom can add up to BoomBonus on top of the jitter band.
	maxIncome := int(float64(base) * (1 + tuning.IncomeJitter) * (1 + tuning.BoomBonus))
	minIncome := int(float64(base) * (1 - tuning.IncomeJitter))

	for i := 0; i < 200; i++ {
		s := NewAgentState(human, DefaultBaseline())
		ApplyGrowth(s, tuning, rng)
		income := s.Gold - 50000
		require.GreaterOrEqual(t, income, minIncome-1)
		require.LessOrEqual(t, income, maxIncome+1)
	}
}

func TestApplyGrowthEconomyMultiplier(t *testing.T) {
	tuning := DefaultTuning()
	table := NewRaceTable()
	gnome, _ := table.Lookup("gnome")

	s := NewAgentState(gnome, DefaultBaseline())
	startGold := s.Gold

	ApplyGrowth(s, tuning, nil)

	expected := int(float64(s.Structures) * float64(tuning.IncomePerStructure) * gnome.EconomyMult)
	require.Equal(t, startGold+expected, s.Gold)
}
