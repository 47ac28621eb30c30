package strategy

import (
	"fmt"

	"golang.org/x/exp/rand"

	"kingdoms/game"
)

// Decision thresholds. The land floor and offense ratio gate the economic
// foundation branch; the magic affinity cutoff gates channeling.
const (
	foundationLandFloor  = 3000
	foundationOffenseMax = 0.8
	magicAffinityCutoff  = 1.15
	// Channeling stops paying off once the army saturates the territory
	// backing it; past this many offense points per acre, attacking wins.
	magicSaturationPerAcre = 5
)

// Decide maps a kingdom's state and the legal target list to exactly one
// action. It is pure: for a fixed (state, targets, policy, tuning) input it
// returns an identical intent on every call. All candidates score in [0,100]
// and the highest wins; ties break by precedence
// (attack > magic > defend > economic > build > wait).
func Decide(s *game.AgentState, targets []*game.AgentState, p Policy, t *game.Tuning) game.ActionIntent {
	return pick(candidates(s, targets, p, t))
}

// NoisyDecide is the playout variant: it jitters each candidate's priority by
// up to ±5 before picking, to diversify otherwise-identical rollouts. The
// balance path and all determinism guarantees use Decide, never this.
func NoisyDecide(s *game.AgentState, targets []*game.AgentState, p Policy, t *game.Tuning, rng *rand.Rand) game.ActionIntent {
	cands := candidates(s, targets, p, t)
	for i := range cands {
		cands[i].Priority = clampPriority(cands[i].Priority + rng.Intn(11) - 5)
	}
	return pick(cands)
}

// candidates builds the fixed candidate set in precedence order.
func candidates(s *game.AgentState, targets []*game.AgentState, p Policy, t *game.Tuning) []game.ActionIntent {
	return []game.ActionIntent{
		attackCandidate(s, targets, p, t),
		magicCandidate(s, p, t),
		defendCandidate(s, p, t),
		economicCandidate(s, p, t),
		buildCandidate(s, p, t),
		{Kind: game.WaitAction, Target: -1, Priority: 5, Reasoning: "holding: no action improves the position"},
	}
}

// pick returns the highest-priority candidate. Candidates arrive in
// precedence order, so a strict comparison implements the tie-break.
func pick(cands []game.ActionIntent) game.ActionIntent {
	best := cands[0]
	for _, c := range cands[1:] {
		if c.Priority > best.Priority {
			best = c
		}
	}
	return best
}

// attackCandidate scores the best legal target via the deterministic combat
// double (nil rng, band midpoint). A target projected to fail is kept only as
// a last resort at rock-bottom priority, so any other candidate outranks it.
func attackCandidate(s *game.AgentState, targets []*game.AgentState, p Policy, t *game.Tuning) game.ActionIntent {
	bestIdx := -1
	bestTier := game.TierFailed
	bestLand := 0
	for i, target := range targets {
		if target == nil {
			continue
		}
		out := game.ResolveCombat(float64(s.Offense), float64(target.Defense), float64(target.Land), t, nil)
		if bestIdx == -1 || out.Tier > bestTier || (out.Tier == bestTier && out.LandGained > bestLand) {
			bestIdx, bestTier, bestLand = i, out.Tier, out.LandGained
		}
	}

	if bestIdx == -1 {
		return game.ActionIntent{Kind: game.AttackAction, Target: -1, Priority: 0, Reasoning: "no legal targets in range"}
	}

	switch bestTier {
	case game.TierWithEase:
		return game.ActionIntent{
			Kind:      game.AttackAction,
			Target:    bestIdx,
			Priority:  clampPriority(78 + p.AttackBias),
			Reasoning: fmt.Sprintf("striking target %d: projected with_ease for ~%d acres", bestIdx, bestLand),
		}
	case game.TierGoodFight:
		return game.ActionIntent{
			Kind:      game.AttackAction,
			Target:    bestIdx,
			Priority:  clampPriority(62 + p.AttackBias),
			Reasoning: fmt.Sprintf("striking target %d: projected good_fight for ~%d acres", bestIdx, bestLand),
		}
	default:
		return game.ActionIntent{
			Kind:      game.AttackAction,
			Target:    bestIdx,
			Priority:  15,
			Reasoning: fmt.Sprintf("only failing attacks available against target %d", bestIdx),
		}
	}
}

func magicCandidate(s *game.AgentState, p Policy, t *game.Tuning) game.ActionIntent {
	if s.Race.MagicMult > magicAffinityCutoff && s.Gold >= t.ChannelCost && s.Offense < magicSaturationPerAcre*s.Land {
		return game.ActionIntent{
			Kind:      game.MagicAction,
			Target:    -1,
			Amount:    t.ChannelCost,
			Priority:  clampPriority(95 + p.MagicBias),
			Reasoning: fmt.Sprintf("channeling: magic affinity %.2f with %d gold reserve", s.Race.MagicMult, s.Gold),
		}
	}
	if s.Gold >= 2*t.ChannelCost && s.Race.MagicMult >= 1.0 {
		return game.ActionIntent{
			Kind:      game.MagicAction,
			Target:    -1,
			Amount:    t.ChannelCost,
			Priority:  clampPriority(35 + p.MagicBias),
			Reasoning: "surplus gold could fuel a channeling",
		}
	}
	return game.ActionIntent{Kind: game.MagicAction, Target: -1, Priority: 4, Reasoning: "magic too weak or too expensive"}
}

func defendCandidate(s *game.AgentState, p Policy, t *game.Tuning) game.ActionIntent {
	amount := s.Gold / 4
	if amount < t.DefenseCostPerPoint {
		return game.ActionIntent{Kind: game.DefendAction, Target: -1, Priority: 3, Reasoning: "not enough gold to train defense"}
	}
	if br := s.BuildRate(); br < t.TargetBuildRate {
		return game.ActionIntent{
			Kind:      game.DefendAction,
			Target:    -1,
			Amount:    amount,
			Priority:  clampPriority(86 + p.DefenseBias),
			Reasoning: fmt.Sprintf("build rate %.2f below target %.2f, training defense to cover", br, t.TargetBuildRate),
		}
	}
	return game.ActionIntent{
		Kind:      game.DefendAction,
		Target:    -1,
		Amount:    amount,
		Priority:  clampPriority(40 + p.DefenseBias),
		Reasoning: "routine defense training",
	}
}

func economicCandidate(s *game.AgentState, p Policy, t *game.Tuning) game.ActionIntent {
	amount := s.Gold / 3
	if amount < t.StructureCost {
		return game.ActionIntent{Kind: game.EconomicAction, Target: -1, Priority: 2, Reasoning: "not enough gold for new structures"}
	}
	if s.Land < foundationLandFloor && float64(s.Offense) < foundationOffenseMax*float64(s.Defense) {
		return game.ActionIntent{
			Kind:      game.EconomicAction,
			Target:    -1,
			Amount:    amount,
			Priority:  clampPriority(85 + p.EconomyBias),
			Reasoning: fmt.Sprintf("laying economic foundation: %d acres and weak offense", s.Land),
		}
	}
	return game.ActionIntent{
		Kind:      game.EconomicAction,
		Target:    -1,
		Amount:    amount,
		Priority:  clampPriority(50 + p.EconomyBias),
		Reasoning: "growing income capacity",
	}
}

func buildCandidate(s *game.AgentState, p Policy, t *game.Tuning) game.ActionIntent {
	spend := int(float64(s.Gold) * t.BuildSpendFraction)
	if spend < t.BuildCostPerAcre {
		return game.ActionIntent{Kind: game.BuildAction, Target: -1, Priority: 1, Reasoning: "not enough gold to claim land"}
	}
	return game.ActionIntent{
		Kind:      game.BuildAction,
		Target:    -1,
		Amount:    spend,
		Priority:  clampPriority(45 + p.EconomyBias/2),
		Reasoning: "expanding territory from the treasury",
	}
}

func clampPriority(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
