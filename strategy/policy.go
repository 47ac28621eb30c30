package strategy

// Policy is a fixed strategy personality. Biases shift candidate priorities
// by constant offsets; they never introduce randomness, so a policy plus a
// state always scores the same way.
type Policy struct {
	Name        string
	AttackBias  int
	EconomyBias int
	DefenseBias int
	MagicBias   int
}

var (
	Balanced   = Policy{Name: "balanced"}
	Aggressive = Policy{Name: "aggressive", AttackBias: 12, EconomyBias: -4, DefenseBias: -4}
	Economic   = Policy{Name: "economic", AttackBias: -8, EconomyBias: 8, MagicBias: -4}
	Defensive  = Policy{Name: "defensive", AttackBias: -8, DefenseBias: 10}
	Arcane     = Policy{Name: "arcane", AttackBias: -4, MagicBias: 6}
)

// DefaultPolicy is the fallback for unknown strategy identifiers.
var DefaultPolicy = Balanced

var policies = map[string]Policy{
	Balanced.Name:   Balanced,
	Aggressive.Name: Aggressive,
	Economic.Name:   Economic,
	Defensive.Name:  Defensive,
	Arcane.Name:     Arcane,
}

// PolicyByName resolves a strategy identifier. Unknown names return the
// default policy and false so the caller can flag the fallback.
func PolicyByName(name string) (Policy, bool) {
	if p, ok := policies[name]; ok {
		return p, true
	}
	return DefaultPolicy, false
}

// PolicyNames returns the known strategy identifiers.
func PolicyNames() []string {
	return []string{Balanced.Name, Aggressive.Name, Economic.Name, Defensive.Name, Arcane.Name}
}
