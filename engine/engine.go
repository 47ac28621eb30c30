package engine

import (
	"golang.org/x/exp/rand"

	"github.com/rs/zerolog/log"

	"kingdoms/game"
	"kingdoms/strategy"
)

// Winner identities and win-condition tags carried on a GameResult.
const (
	Player1 = "player1"
	Player2 = "player2"
	Draw    = "draw"
)

type WinCondition string

const (
	WinElimination   WinCondition = "elimination"
	WinLandAdvantage WinCondition = "land_advantage"
	WinTimeout       WinCondition = "timeout"
)

// GameResult is the terminal record of one simulated game.
type GameResult struct {
	Winner       string
	Turns        int
	WinCondition WinCondition
	Races        [2]string
	Strategies   [2]string
	Final        [2]game.AgentState
	LandGained   [2]int // cumulative combat land gains per agent
	GoldGained   [2]int // cumulative combat gold gains per agent
}

// Engine owns two kingdoms' state for the duration of one game and drives the
// decision -> action -> growth -> win-check loop. All randomness in a game
// (combat variance, growth jitter, events) flows through the injected rng;
// the decision engine itself stays pure.
type Engine struct {
	agents   [2]*game.AgentState
	policies [2]strategy.Policy
	races    [2]string
	strats   [2]string
	tuning   *game.Tuning
	rng      *rand.Rand
	variance float64
	turnCap  int

	landGained [2]int
	goldGained [2]int
}

type Option func(*Engine)

// WithRand injects the random source. A nil source removes all combat
// variance and growth events, making the whole game deterministic.
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithVariance overrides the ±fraction applied to each side's effective power
// before the combat ratio is computed.
func WithVariance(v float64) Option {
	return func(e *Engine) { e.variance = v }
}

// WithTurnCap overrides the hard turn cap. The cap is the circuit breaker
// that guarantees termination; it cannot be disabled.
func WithTurnCap(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.turnCap = n
		}
	}
}

// New builds an engine for one game between two race/strategy pairs. Unknown
// race or strategy identifiers fall back to the defaults and are logged at
// warn level so a skewed balance run is observable, never silent.
func New(table *game.RaceTable, tuning *game.Tuning, raceA, strategyA, raceB, strategyB string, opts ...Option) *Engine {
	e := &Engine{
		races:    [2]string{raceA, raceB},
		strats:   [2]string{strategyA, strategyB},
		tuning:   tuning,
		variance: tuning.CombatVariance,
		turnCap:  tuning.MaxTurns,
	}

	for i, id := range e.races {
		profile, ok := table.Lookup(id)
		if !ok {
			profile = table.Default()
			log.Warn().Str("race", id).Msgf("unknown race, falling back to %s", profile.ID)
			e.races[i] = profile.ID
		}
		e.agents[i] = game.NewAgentState(profile, game.DefaultBaseline())
	}

	for i, name := range e.strats {
		policy, ok := strategy.PolicyByName(name)
		if !ok {
			log.Warn().Str("strategy", name).Msgf("unknown strategy, falling back to %s", strategy.DefaultPolicy.Name)
			e.strats[i] = policy.Name
		}
		e.policies[i] = policy
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run plays the game to completion and returns its terminal result. The turn
// cap bounds the loop, so Run always terminates.
func (e *Engine) Run() GameResult {
	for turn := 1; turn <= e.turnCap; turn++ {
		for i := range e.agents {
			intent := strategy.Decide(e.agents[i], []*game.AgentState{e.agents[1-i]}, e.policies[i], e.tuning)
			e.apply(i, intent)
		}
		for i := range e.agents {
			game.ApplyGrowth(e.agents[i], e.tuning, e.rng)
			e.agents[i].Turns++
		}
		if result, over := e.checkWin(turn); over {
			return result
		}
	}
	return e.timeoutResult()
}

// apply mutates agent state according to the chosen intent. Combat is the
// only branch that touches the opponent.
func (e *Engine) apply(idx int, intent game.ActionIntent) {
	self := e.agents[idx]
	t := e.tuning

	switch intent.Kind {
	case game.AttackAction:
		// Two-kingdom game: the only legal target index is 0.
		if intent.Target != 0 {
			return
		}
		e.resolveAttack(idx)

	case game.MagicAction:
		if self.Gold < t.ChannelCost {
			return
		}
		self.Gold -= t.ChannelCost
		gain := int(float64(t.ChannelPower) * self.Race.MagicMult)
		self.Offense += gain
		self.Defense += gain

	case game.DefendAction:
		amount := minInt(intent.Amount, self.Gold)
		points := amount / t.DefenseCostPerPoint
		if points <= 0 {
			return
		}
		self.Gold -= points * t.DefenseCostPerPoint
		self.Defense += points

	case game.EconomicAction:
		amount := minInt(intent.Amount, self.Gold)
		count := amount / t.StructureCost
		if count <= 0 {
			return
		}
		self.Gold -= count * t.StructureCost
		self.Structures += count

	case game.BuildAction:
		spend := minInt(intent.Amount, self.Gold)
		acres := spend / t.BuildCostPerAcre
		if acres <= 0 {
			return
		}
		self.Gold -= acres * t.BuildCostPerAcre
		self.Land += acres
		self.Structures += acres / 2

	case game.WaitAction:
		// turn increment only
	}
}

// resolveAttack runs the bounded-random combat path: each side's effective
// power is perturbed by up to ±variance before the ratio is computed, then
// casualties and transfers apply to both kingdoms.
func (e *Engine) resolveAttack(idx int) {
	self := e.agents[idx]
	foe := e.agents[1-idx]

	atkPower := float64(self.Offense) * e.varianceFactor()
	defPower := float64(foe.Defense) * e.varianceFactor()

	out := game.ResolveCombat(atkPower, defPower, float64(foe.Land), e.tuning, e.rng)

	self.Offense -= int(float64(self.Offense) * out.AttackerLoss)
	foe.Defense -= int(float64(foe.Defense) * out.DefenderLoss)

	land := minInt(out.LandGained, foe.Land)
	foe.Land -= land
	self.Land += land

	gold := minInt(out.GoldTransfer, foe.Gold)
	foe.Gold -= gold
	self.Gold += gold

	e.landGained[idx] += land
	e.goldGained[idx] += gold
}

func (e *Engine) varianceFactor() float64 {
	if e.rng == nil || e.variance == 0 {
		return 1
	}
	return 1 + (e.rng.Float64()*2-1)*e.variance
}

// checkWin evaluates elimination and land-advantage after each full turn.
func (e *Engine) checkWin(turn int) (GameResult, bool) {
	floor := e.tuning.EliminationFloor
	a, b := e.agents[0], e.agents[1]

	aDead := a.Land < floor
	bDead := b.Land < floor
	switch {
	case aDead && bDead:
		return e.result(e.leaderByLand(), turn, WinElimination), true
	case aDead:
		return e.result(Player2, turn, WinElimination), true
	case bDead:
		return e.result(Player1, turn, WinElimination), true
	}

	ratio := e.tuning.LandAdvantageRatio
	if float64(a.Land) >= float64(b.Land)*ratio {
		return e.result(Player1, turn, WinLandAdvantage), true
	}
	if float64(b.Land) >= float64(a.Land)*ratio {
		return e.result(Player2, turn, WinLandAdvantage), true
	}
	return GameResult{}, false
}

func (e *Engine) timeoutResult() GameResult {
	return e.result(e.leaderByLand(), e.turnCap, WinTimeout)
}

func (e *Engine) leaderByLand() string {
	switch {
	case e.agents[0].Land > e.agents[1].Land:
		return Player1
	case e.agents[1].Land > e.agents[0].Land:
		return Player2
	default:
		return Draw
	}
}

func (e *Engine) result(winner string, turns int, condition WinCondition) GameResult {
	return GameResult{
		Winner:       winner,
		Turns:        turns,
		WinCondition: condition,
		Races:        e.races,
		Strategies:   e.strats,
		Final:        [2]game.AgentState{*e.agents[0], *e.agents[1]},
		LandGained:   e.landGained,
		GoldGained:   e.goldGained,
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
