package metrics

// RaceTally accumulates per-race outcomes. Merging tallies is a plain
// field-wise sum, so the reduction is associative and commutative and the
// final report cannot depend on game completion order.
type RaceTally struct {
	Wins   int
	Losses int
	Draws  int

	// Gains are credited on wins only.
	LandGained int
	GoldGained int
}

// GameRecord is one row of the suite's game log.
type GameRecord struct {
	ID           int
	RaceA        string
	StrategyA    string
	RaceB        string
	StrategyB    string
	Winner       string
	Turns        int
	WinCondition string
}

// Tally is a worker-local accumulator of game outcomes. It is not safe for
// concurrent use; each worker owns one and the suite merges them afterward.
type Tally struct {
	Races   map[string]*RaceTally
	Records []GameRecord
}

func NewTally() *Tally {
	return &Tally{Races: make(map[string]*RaceTally)}
}

func (t *Tally) race(id string) *RaceTally {
	rt, ok := t.Races[id]
	if !ok {
		rt = &RaceTally{}
		t.Races[id] = rt
	}
	return rt
}

// RecordWin credits a decisive game to the winner's race and debits the
// loser's.
func (t *Tally) RecordWin(rec GameRecord, winnerRace, loserRace string, landGained, goldGained int) {
	t.Records = append(t.Records, rec)
	w := t.race(winnerRace)
	w.Wins++
	w.LandGained += landGained
	w.GoldGained += goldGained
	t.race(loserRace).Losses++
}

// RecordDraw credits both races with a draw.
func (t *Tally) RecordDraw(rec GameRecord, raceA, raceB string) {
	t.Records = append(t.Records, rec)
	t.race(raceA).Draws++
	t.race(raceB).Draws++
}

// Merge folds other tallies into t.
func (t *Tally) Merge(others ...*Tally) {
	for _, o := range others {
		if o == nil {
			continue
		}
		for id, rt := range o.Races {
			dst := t.race(id)
			dst.Wins += rt.Wins
			dst.Losses += rt.Losses
			dst.Draws += rt.Draws
			dst.LandGained += rt.LandGained
			dst.GoldGained += rt.GoldGained
		}
		t.Records = append(t.Records, o.Records...)
	}
}

// GamesPlayed counts recorded games.
func (t *Tally) GamesPlayed() int {
	return len(t.Records)
}
