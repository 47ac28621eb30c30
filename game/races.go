package game

// RaceProfile holds the static per-race ratings and multipliers. Profiles are
// immutable once the table is built.
type RaceProfile struct {
	ID   string
	Name string

	// 1-5 ratings
	War     int
	Sorcery int
	Scum    int
	Defense int
	Economy int

	EconomyMult  float64
	MilitaryMult float64
	MagicMult    float64
}

// DefaultRaceID is the fallback profile for unknown race identifiers.
const DefaultRaceID = "human"

// RaceTable is a read-only lookup of race profiles. It is built once and may
// be shared by reference across concurrent simulations.
type RaceTable struct {
	profiles  map[string]RaceProfile
	ids       []string
	defaultID string
}

// NewRaceTable returns the standard ten-race roster.
func NewRaceTable() *RaceTable {
	profiles := []RaceProfile{
		{ID: "human", Name: "Human", War: 3, Sorcery: 3, Scum: 3, Defense: 3, Economy: 3,
			EconomyMult: 1.0, MilitaryMult: 1.0, MagicMult: 1.0},
		{ID: "elf", Name: "Elf", War: 2, Sorcery: 5, Scum: 2, Defense: 3, Economy: 3,
			EconomyMult: 1.0, MilitaryMult: 0.95, MagicMult: 1.25},
		{ID: "dwarf", Name: "Dwarf", War: 4, Sorcery: 1, Scum: 2, Defense: 5, Economy: 4,
			EconomyMult: 1.05, MilitaryMult: 1.1, MagicMult: 0.8},
		{ID: "orc", Name: "Orc", War: 5, Sorcery: 2, Scum: 3, Defense: 2, Economy: 2,
			EconomyMult: 0.9, MilitaryMult: 1.2, MagicMult: 0.85},
		{ID: "goblin", Name: "Goblin", War: 3, Sorcery: 2, Scum: 5, Defense: 2, Economy: 2,
			EconomyMult: 0.85, MilitaryMult: 1.05, MagicMult: 0.9},
		{ID: "troll", Name: "Troll", War: 5, Sorcery: 1, Scum: 1, Defense: 4, Economy: 1,
			EconomyMult: 0.8, MilitaryMult: 1.15, MagicMult: 0.75},
		{ID: "gnome", Name: "Gnome", War: 1, Sorcery: 4, Scum: 3, Defense: 2, Economy: 5,
			EconomyMult: 1.2, MilitaryMult: 0.85, MagicMult: 1.05},
		{ID: "darkelf", Name: "Dark Elf", War: 3, Sorcery: 4, Scum: 4, Defense: 2, Economy: 2,
			EconomyMult: 0.9, MilitaryMult: 1.05, MagicMult: 1.2},
		{ID: "halfling", Name: "Halfling", War: 2, Sorcery: 2, Scum: 4, Defense: 3, Economy: 4,
			EconomyMult: 1.1, MilitaryMult: 0.9, MagicMult: 0.95},
		{ID: "undead", Name: "Undead", War: 4, Sorcery: 4, Scum: 2, Defense: 3, Economy: 1,
			EconomyMult: 0.8, MilitaryMult: 1.1, MagicMult: 1.1},
	}

	return NewCustomRaceTable(profiles)
}

// NewCustomRaceTable builds a table from explicit profiles, for tuning
// experiments and tests. The fallback profile is the human entry when
// present, otherwise the first profile.
func NewCustomRaceTable(profiles []RaceProfile) *RaceTable {
	table := &RaceTable{profiles: make(map[string]RaceProfile, len(profiles))}
	for _, p := range profiles {
		table.profiles[p.ID] = p
		table.ids = append(table.ids, p.ID)
	}
	if _, ok := table.profiles[DefaultRaceID]; ok {
		table.defaultID = DefaultRaceID
	} else if len(table.ids) > 0 {
		table.defaultID = table.ids[0]
	}
	return table
}

// Lookup returns the profile for id, or false when the id is unknown.
// Callers that need the fallback contract should use Default and flag the
// substitution themselves so it stays observable.
func (t *RaceTable) Lookup(id string) (RaceProfile, bool) {
	p, ok := t.profiles[id]
	return p, ok
}

// Default returns the fallback profile used for unknown race identifiers.
func (t *RaceTable) Default() RaceProfile {
	return t.profiles[t.defaultID]
}

// IDs returns race identifiers in roster order.
func (t *RaceTable) IDs() []string {
	ids := make([]string, len(t.ids))
	copy(ids, t.ids)
	return ids
}
