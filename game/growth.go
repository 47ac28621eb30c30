package game

import (
	"golang.org/x/exp/rand"
)

// ApplyGrowth applies one turn of passive accrual to a kingdom: structure
// income scaled by the race's economy multiplier, population growth
// proportional to land (capped by housing), and two small-probability events.
// A nil rng disables jitter and events, which makes growth fully
// deterministic for tests.
func ApplyGrowth(s *AgentState, t *Tuning, rng *rand.Rand) {
	income := float64(s.Structures) * float64(t.IncomePerStructure) * s.Race.EconomyMult
	if rng != nil {
		income *= 1 + (rng.Float64()*2-1)*t.IncomeJitter
		if rng.Float64() < t.BoomChance {
			income *= 1 + t.BoomBonus
		}
	}
	if income > 0 {
		s.Gold += int(income)
	}

	growth := int(float64(s.Land) * t.PopGrowthPerAcre)
	housing := s.Land * t.HousingPerAcre
	if s.Population+growth > housing {
		growth = housing - s.Population
	}
	if growth > 0 {
		s.Population += growth
	}

	if rng != nil && rng.Float64() < t.TrainingChance {
		s.Offense += int(float64(s.Offense) * t.TrainingBonus)
		s.Defense += int(float64(s.Defense) * t.TrainingBonus)
	}
}
