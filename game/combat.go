package game

import (
	"golang.org/x/exp/rand"
)

// OutcomeTier is the discretized result of a combat power-ratio comparison.
type OutcomeTier int

const (
	TierFailed OutcomeTier = iota
	TierGoodFight
	TierWithEase
)

func (t OutcomeTier) String() string {
	switch t {
	case TierWithEase:
		return "with_ease"
	case TierGoodFight:
		return "good_fight"
	default:
		return "failed"
	}
}

// Ratio thresholds for tier selection. Closed and ordered: ratio >= 2.0 wins
// with ease, >= 1.2 is a good fight, anything lower fails.
const (
	withEaseRatio  = 2.0
	goodFightRatio = 1.2
)

// CombatOutcome is produced and consumed within a single turn. The caller
// applies the casualties and transfers; the resolver mutates nothing.
type CombatOutcome struct {
	Tier         OutcomeTier
	AttackerLoss float64 // fraction of attacker offense lost
	DefenderLoss float64 // fraction of defender defense lost
	LandGained   int
	GoldTransfer int
}

// ResolveCombat converts two forces' power into an outcome tier, casualty
// fractions and a land/gold transfer. Negative inputs clamp to zero and the
// ratio denominator floors at 1, so the resolver never divides by zero and
// never errors.
//
// rng draws the land gain uniformly from the tier's band; a nil rng takes the
// band midpoint, which is the deterministic double used by the decision
// engine's target scoring and by tests.
func ResolveCombat(attackerPower, defenderPower, defenderLand float64, t *Tuning, rng *rand.Rand) CombatOutcome {
	if attackerPower < 0 {
		attackerPower = 0
	}
	if defenderPower < 0 {
		defenderPower = 0
	}
	if defenderLand < 0 {
		defenderLand = 0
	}

	denom := defenderPower
	if denom < 1 {
		denom = 1
	}
	ratio := attackerPower / denom

	var tier OutcomeTier
	var tt TierTuning
	switch {
	case ratio >= withEaseRatio:
		tier, tt = TierWithEase, t.WithEase
	case ratio >= goodFightRatio:
		tier, tt = TierGoodFight, t.GoodFight
	default:
		tier, tt = TierFailed, t.Failed
	}

	landGained := 0
	if tier != TierFailed {
		pct := tt.LandBand.Min + (tt.LandBand.Max-tt.LandBand.Min)/2
		if rng != nil {
			pct = tt.LandBand.Min + rng.Float64()*(tt.LandBand.Max-tt.LandBand.Min)
		}
		landGained = int(defenderLand * pct / 100)
		if landGained < 0 {
			landGained = 0
		}
	}

	return CombatOutcome{
		Tier:         tier,
		AttackerLoss: tt.AttackerLoss,
		DefenderLoss: tt.DefenderLoss,
		LandGained:   landGained,
		GoldTransfer: landGained * t.GoldPerAcre,
	}
}
