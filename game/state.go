package game

// Baseline is the starting stat block every kingdom is created from. Race
// multipliers are applied exactly once, at creation.
type Baseline struct {
	Land       int
	Gold       int
	Population int
	Structures int
	Offense    int
	Defense    int
}

// DefaultBaseline returns the standard starting kingdom.
func DefaultBaseline() Baseline {
	return Baseline{
		Land:       1000,
		Gold:       50000,
		Population: 500,
		Structures: 800,
		Offense:    1000,
		Defense:    1000,
	}
}

// AgentState is the mutable state of one kingdom inside a single simulation.
// It is owned exclusively by the engine running that game and is discarded at
// game end.
type AgentState struct {
	Race       RaceProfile
	Land       int
	Gold       int
	Population int
	Structures int
	Offense    int
	Defense    int
	Turns      int
}

// NewAgentState builds a starting kingdom from a race profile and baseline.
// Economy scales gold, population and structures; military scales offense and
// defense. Land is the same for every race.
func NewAgentState(race RaceProfile, b Baseline) *AgentState {
	return &AgentState{
		Race:       race,
		Land:       b.Land,
		Gold:       int(float64(b.Gold) * race.EconomyMult),
		Population: int(float64(b.Population) * race.EconomyMult),
		Structures: int(float64(b.Structures) * race.EconomyMult),
		Offense:    int(float64(b.Offense) * race.MilitaryMult),
		Defense:    int(float64(b.Defense) * race.MilitaryMult),
	}
}

// Networth is the scalar strength measure used for matchmaking and balance
// reporting. The weighting is fixed: land*1000 + gold + population*100.
func (s *AgentState) Networth() int {
	return s.Land*1000 + s.Gold + s.Population*100
}

// BuildRate is the structures-per-acre ratio. It drives the defend/build
// branch of the decision engine.
func (s *AgentState) BuildRate() float64 {
	land := s.Land
	if land < 1 {
		land = 1
	}
	return float64(s.Structures) / float64(land)
}

func (s *AgentState) Copy() *AgentState {
	c := *s
	return &c
}
