// Package adapter converts the host application's live kingdom records into
// the engine's agent state. The mapping is one-directional: a read-only
// snapshot comes in, simulation results go back out. Nothing here writes to
// host state.
package adapter

import (
	"kingdoms/game"
)

// KingdomSnapshot is the host application's record shape for one kingdom.
type KingdomSnapshot struct {
	Kingdom  string
	Race     string
	Strategy string

	Gold       int
	Population int
	Land       int
	Turns      int

	OffensePoints int
	DefensePoints int

	// Building counts by kind; only the total matters to the simulation.
	Buildings map[string]int
}

// Conversion is the result of mapping a snapshot. RaceFallback flags that the
// snapshot named an unknown race and the default profile was substituted, so
// the caller can log it per the fallback contract.
type Conversion struct {
	State        *game.AgentState
	RaceFallback bool
}

// ToAgentState maps a host snapshot field-by-field onto a fresh AgentState.
// Negative resource values clamp to zero; the simulation core assumes
// non-negative state.
func ToAgentState(snap KingdomSnapshot, table *game.RaceTable) Conversion {
	profile, ok := table.Lookup(snap.Race)
	if !ok {
		profile = table.Default()
	}

	structures := 0
	for _, count := range snap.Buildings {
		if count > 0 {
			structures += count
		}
	}

	state := &game.AgentState{
		Race:       profile,
		Land:       clampNonNegative(snap.Land),
		Gold:       clampNonNegative(snap.Gold),
		Population: clampNonNegative(snap.Population),
		Structures: structures,
		Offense:    clampNonNegative(snap.OffensePoints),
		Defense:    clampNonNegative(snap.DefensePoints),
		Turns:      clampNonNegative(snap.Turns),
	}

	return Conversion{State: state, RaceFallback: !ok}
}

// Networth matchmaking window: a target is legal when its networth falls
// within this band relative to the agent's own.
const (
	networthWindowLow  = 0.5
	networthWindowHigh = 2.0
)

// LegalTargets converts candidate snapshots and filters them to the networth
// window around self. The returned order follows the candidate order, so a
// fixed input yields a fixed target list.
func LegalTargets(self KingdomSnapshot, candidates []KingdomSnapshot, table *game.RaceTable) []*game.AgentState {
	own := float64(ToAgentState(self, table).State.Networth())

	var targets []*game.AgentState
	for _, candidate := range candidates {
		converted := ToAgentState(candidate, table)
		nw := float64(converted.State.Networth())
		if nw >= own*networthWindowLow && nw <= own*networthWindowHigh {
			targets = append(targets, converted.State)
		}
	}
	return targets
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
