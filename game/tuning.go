package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Band is a uniform range, in percent of defender land, that a combat tier
// can capture.
type Band struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// TierTuning holds the per-tier casualty fractions and land band.
type TierTuning struct {
	AttackerLoss float64 `yaml:"attacker_loss"`
	DefenderLoss float64 `yaml:"defender_loss"`
	LandBand     Band    `yaml:"land_band"`
}

// Tuning collects every balance constant in one overridable place. The land
// bands in particular appear in balance expectations, so they are config, not
// literals scattered through the resolver.
type Tuning struct {
	GoldPerAcre int `yaml:"gold_per_acre"`

	WithEase  TierTuning `yaml:"with_ease"`
	GoodFight TierTuning `yaml:"good_fight"`
	Failed    TierTuning `yaml:"failed"`

	// Per-turn growth
	IncomePerStructure int     `yaml:"income_per_structure"`
	IncomeJitter       float64 `yaml:"income_jitter"`
	PopGrowthPerAcre   float64 `yaml:"pop_growth_per_acre"`
	HousingPerAcre     int     `yaml:"housing_per_acre"`
	BoomChance         float64 `yaml:"boom_chance"`
	BoomBonus          float64 `yaml:"boom_bonus"`
	TrainingChance     float64 `yaml:"training_chance"`
	TrainingBonus      float64 `yaml:"training_bonus"`

	// Action exchange rates
	BuildSpendFraction  float64 `yaml:"build_spend_fraction"`
	BuildCostPerAcre    int     `yaml:"build_cost_per_acre"`
	DefenseCostPerPoint int     `yaml:"defense_cost_per_point"`
	StructureCost       int     `yaml:"structure_cost"`
	ChannelCost         int     `yaml:"channel_cost"`
	ChannelPower        int     `yaml:"channel_power"`

	// Decision thresholds
	TargetBuildRate float64 `yaml:"target_build_rate"`

	// Win conditions
	EliminationFloor   int     `yaml:"elimination_floor"`
	LandAdvantageRatio float64 `yaml:"land_advantage_ratio"`
	MaxTurns           int     `yaml:"max_turns"`
	CombatVariance     float64 `yaml:"combat_variance"`

	// Recommendation ceilings: average gain per victory above these flags a
	// race as gaining too much per win.
	LandGainCeiling float64 `yaml:"land_gain_ceiling"`
	GoldGainCeiling float64 `yaml:"gold_gain_ceiling"`
}

// DefaultTuning returns the canonical balance constants.
func DefaultTuning() *Tuning {
	return &Tuning{
		GoldPerAcre: 1000,

		WithEase:  TierTuning{AttackerLoss: 0.05, DefenderLoss: 0.20, LandBand: Band{Min: 7.0, Max: 7.35}},
		GoodFight: TierTuning{AttackerLoss: 0.15, DefenderLoss: 0.15, LandBand: Band{Min: 6.79, Max: 7.0}},
		Failed:    TierTuning{AttackerLoss: 0.25, DefenderLoss: 0.05, LandBand: Band{}},

		IncomePerStructure: 12,
		IncomeJitter:       0.10,
		PopGrowthPerAcre:   0.2,
		HousingPerAcre:     25,
		BoomChance:         0.05,
		BoomBonus:          0.25,
		TrainingChance:     0.05,
		TrainingBonus:      0.02,

		BuildSpendFraction:  0.3,
		BuildCostPerAcre:    500,
		DefenseCostPerPoint: 5,
		StructureCost:       200,
		ChannelCost:         2000,
		ChannelPower:        150,

		TargetBuildRate: 0.6,

		EliminationFloor:   100,
		LandAdvantageRatio: 3.0,
		MaxTurns:           200,
		CombatVariance:     0.08,

		LandGainCeiling: 600,
		GoldGainCeiling: 600000,
	}
}

// LoadTuning reads a YAML tuning file over the defaults. An empty path
// returns the defaults unchanged.
func LoadTuning(path string) (*Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(raw, t); err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	return t, nil
}

func (t *Tuning) Validate() error {
	for _, b := range []struct {
		name string
		band Band
	}{
		{"with_ease", t.WithEase.LandBand},
		{"good_fight", t.GoodFight.LandBand},
	} {
		if b.band.Min > b.band.Max {
			return fmt.Errorf("%s land band is inverted: %.2f > %.2f", b.name, b.band.Min, b.band.Max)
		}
	}
	if t.Failed.LandBand.Min != 0 || t.Failed.LandBand.Max != 0 {
		return fmt.Errorf("failed tier must gain no land")
	}
	if t.GoldPerAcre <= 0 {
		return fmt.Errorf("gold_per_acre must be positive")
	}
	if t.MaxTurns <= 0 {
		return fmt.Errorf("max_turns must be positive")
	}
	if t.EliminationFloor <= 0 {
		return fmt.Errorf("elimination_floor must be positive")
	}
	if t.LandAdvantageRatio <= 1 {
		return fmt.Errorf("land_advantage_ratio must exceed 1")
	}
	return nil
}
