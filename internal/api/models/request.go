package models

import (
	"fmt"
	"strconv"

	"sgm-simulator/internal/config"
)

// SimulateRequest is the body of POST /api/v1/simulate.
type SimulateRequest struct {
	Config  ScenarioSpec    `json:"config"`
	Options SimulateOptions `json:"options"`
}

type SimulateOptions struct {
	IncludeTrajectory bool `json:"include_trajectory"`

	// BillingCycleLength, when > 0, attaches per-cycle invoices to the
	// response.
	BillingCycleLength int `json:"billing_cycle_length"`
}

// ScenarioSpec mirrors the YAML config shape for JSON requests. Override
// keys arrive as JSON object keys, hence strings.
type ScenarioSpec struct {
	Name      string                  `json:"name"`
	Periods   int                     `json:"periods"`
	Policy    PolicySpec              `json:"policy"`
	Usage     UsageSpec               `json:"usage"`
	Wallet    WalletSpec              `json:"wallet"`
	Reserved  ReservedSpec            `json:"reserved"`
	Overrides map[string]OverrideSpec `json:"overrides"`
}

type PolicySpec struct {
	Growth          string  `json:"growth"`
	GrowthRate      float64 `json:"growth_rate"`
	GrowthIncrement float64 `json:"growth_increment"`
	BootstrapLimit  float64 `json:"bootstrap_limit"`
	MinLimit        float64 `json:"min_limit"`
	MaxLimit        float64 `json:"max_limit"`
}

type UsageSpec struct {
	Preset   string        `json:"preset,omitempty"`
	Series   []float64     `json:"series,omitempty"`
	Generate *GenerateSpec `json:"generate,omitempty"`
}

type GenerateSpec struct {
	Periods              int     `json:"periods"`
	BaselineStart        float64 `json:"baseline_start"`
	OrganicGrowth        float64 `json:"organic_growth"`
	FluctuationMagnitude float64 `json:"fluctuation_magnitude"`
	FluctuationOffset    float64 `json:"fluctuation_offset"`
	Noise                float64 `json:"noise"`
	SpikeMagnitude       float64 `json:"spike_magnitude"`
	Seed                 int64   `json:"seed"`
}

type WalletSpec struct {
	Model      string  `json:"model,omitempty"`
	Multiplier float64 `json:"multiplier,omitempty"`
}

type ReservedSpec struct {
	Constant float64   `json:"constant,omitempty"`
	Schedule []float64 `json:"schedule,omitempty"`
}

type OverrideSpec struct {
	Amount float64 `json:"amount"`
	Reason string  `json:"reason,omitempty"`
}

// CompareRequest runs the base config plus each variation's overlay and
// reports a summary per variation.
type CompareRequest struct {
	BaseConfig ScenarioSpec `json:"base_config"`
	Variations []Variation  `json:"variations"`
}

type Variation struct {
	Name   string       `json:"name"`
	Config ScenarioSpec `json:"config"`
}

// ToConfig converts the JSON spec into the config package's shape so the
// same resolution and merge rules apply to API requests and YAML files.
func (s ScenarioSpec) ToConfig() (config.Config, error) {
	overrides := make(map[int]config.OverrideConfig, len(s.Overrides))
	for key, o := range s.Overrides {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return config.Config{}, fmt.Errorf("override key %q is not a period index", key)
		}
		overrides[idx] = config.OverrideConfig{Amount: o.Amount, Reason: o.Reason}
	}

	c := config.Config{
		Name:    s.Name,
		Periods: s.Periods,
		Policy: config.PolicyConfig{
			Growth:          s.Policy.Growth,
			GrowthRate:      s.Policy.GrowthRate,
			GrowthIncrement: s.Policy.GrowthIncrement,
			BootstrapLimit:  s.Policy.BootstrapLimit,
			MinLimit:        s.Policy.MinLimit,
			MaxLimit:        s.Policy.MaxLimit,
		},
		Usage: config.UsageConfig{
			Preset: s.Usage.Preset,
			Series: s.Usage.Series,
		},
		Wallet: config.WalletConfig{
			Model:      s.Wallet.Model,
			Multiplier: s.Wallet.Multiplier,
		},
		Reserved: config.ReservedConfig{
			Constant: s.Reserved.Constant,
			Schedule: s.Reserved.Schedule,
		},
		Overrides: overrides,
	}
	if s.Usage.Generate != nil {
		g := s.Usage.Generate
		c.Usage.Generate = &config.GenerateConfig{
			Periods:              g.Periods,
			BaselineStart:        g.BaselineStart,
			OrganicGrowth:        g.OrganicGrowth,
			FluctuationMagnitude: g.FluctuationMagnitude,
			FluctuationOffset:    g.FluctuationOffset,
			Noise:                g.Noise,
			SpikeMagnitude:       g.SpikeMagnitude,
			Seed:                 g.Seed,
		}
	}
	return c, nil
}
