package game

// ActionKind enumerates the closed set of actions an agent can take in one
// turn. The engine switches exhaustively over this set, so adding a kind is a
// compile-time-visible change.
type ActionKind int

// Declaration order doubles as tie-break precedence:
// attack > magic > defend > economic > build > wait.
const (
	AttackAction ActionKind = iota
	MagicAction
	DefendAction
	EconomicAction
	BuildAction
	WaitAction
)

func (k ActionKind) String() string {
	switch k {
	case AttackAction:
		return "attack"
	case MagicAction:
		return "magic"
	case DefendAction:
		return "defend"
	case EconomicAction:
		return "economic"
	case BuildAction:
		return "build"
	case WaitAction:
		return "wait"
	default:
		return "unknown"
	}
}

// ActionIntent is the single action an agent chose for one turn.
// Exactly one is produced per agent per turn.
type ActionIntent struct {
	Kind   ActionKind
	Target int // index into the legal target list; -1 when not attacking
	Amount int // gold to spend; never exceeds the agent's gold when set

	Priority  int    // 0-100
	Reasoning string // non-empty justification for logging and tests
}
