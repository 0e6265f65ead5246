package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sgm-simulator/internal/data"
	"sgm-simulator/internal/model"
	"sgm-simulator/internal/scenario"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk scenario shape (YAML).
type Config struct {
	// Optional: load a base scenario from a separate YAML (e.g.
	// examples/scenarios/*.yaml). Fields set here override the base.
	ScenarioFile string `yaml:"scenario_file"`

	Name     string         `yaml:"name"`
	Periods  int            `yaml:"periods"`
	Policy   PolicyConfig   `yaml:"policy"`
	Usage    UsageConfig    `yaml:"usage"`
	Wallet   WalletConfig   `yaml:"wallet"`
	Reserved ReservedConfig `yaml:"reserved"`

	Overrides map[int]OverrideConfig `yaml:"overrides"`
}

type PolicyConfig struct {
	Growth          string  `yaml:"growth"`
	GrowthRate      float64 `yaml:"growth_rate"`
	GrowthIncrement float64 `yaml:"growth_increment"`
	BootstrapLimit  float64 `yaml:"bootstrap_limit"`
	MinLimit        float64 `yaml:"min_limit"`
	MaxLimit        float64 `yaml:"max_limit"`
}

// UsageConfig picks exactly one usage source: an inline series, a named
// preset, a JSON dataset file, or generator parameters.
type UsageConfig struct {
	Preset   string          `yaml:"preset"`
	Series   []float64       `yaml:"series"`
	Dataset  string          `yaml:"dataset"`
	Generate *GenerateConfig `yaml:"generate"`
}

type GenerateConfig struct {
	Periods              int     `yaml:"periods"`
	BaselineStart        float64 `yaml:"baseline_start"`
	OrganicGrowth        float64 `yaml:"organic_growth"`
	FluctuationMagnitude float64 `yaml:"fluctuation_magnitude"`
	FluctuationOffset    float64 `yaml:"fluctuation_offset"`
	Noise                float64 `yaml:"noise"`
	SpikeMagnitude       float64 `yaml:"spike_magnitude"`
	Seed                 int64   `yaml:"seed"`
}

type WalletConfig struct {
	Model      string  `yaml:"model"`
	Multiplier float64 `yaml:"multiplier"`
}

type ReservedConfig struct {
	Constant float64   `yaml:"constant"`
	Schedule []float64 `yaml:"schedule"`
}

type OverrideConfig struct {
	Amount float64 `yaml:"amount"`
	Reason string  `yaml:"reason"`
}

// Load reads, merges and validates a scenario config. The returned
// scenario has passed full model validation.
func Load(path string) (*model.Scenario, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	return c.ToScenario()
}

// LoadUnchecked loads and merges config without converting or validating.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.ScenarioFile != "" {
		basePath := c.ScenarioFile
		if !filepath.IsAbs(basePath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path (relative
			// to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), basePath)
			if _, err := os.Stat(cand); err == nil {
				basePath = cand
			}
		}
		base, err := LoadUnchecked(basePath)
		if err != nil {
			return nil, err
		}
		c = Merge(*base, c)
	}
	return &c, nil
}

// ToScenario resolves the usage source and converts to a validated
// model.Scenario.
func (c *Config) ToScenario() (*model.Scenario, error) {
	if c == nil {
		return nil, errors.New("config is nil")
	}

	usage, err := c.resolveUsage()
	if err != nil {
		return nil, err
	}

	periods := c.Periods
	if periods == 0 {
		periods = len(usage)
	}

	overrides := make(model.OverrideSet, len(c.Overrides))
	for idx, o := range c.Overrides {
		overrides[idx] = model.Override{Amount: o.Amount, Reason: o.Reason}
	}

	return model.NewScenario(model.Scenario{
		Name:    c.Name,
		Periods: periods,
		Usage:   usage,
		Policy: model.Policy{
			Growth:          model.GrowthMode(c.Policy.Growth),
			GrowthRate:      c.Policy.GrowthRate,
			GrowthIncrement: c.Policy.GrowthIncrement,
			BootstrapLimit:  c.Policy.BootstrapLimit,
			MinLimit:        c.Policy.MinLimit,
			MaxLimit:        c.Policy.MaxLimit,
		},
		Wallet: model.WalletPolicy{
			Model:      model.WalletModel(c.Wallet.Model),
			Multiplier: c.Wallet.Multiplier,
		},
		Reserved: model.ReservedVolumes{
			Constant: c.Reserved.Constant,
			Schedule: c.Reserved.Schedule,
		},
		Overrides: overrides,
	})
}

func (c *Config) resolveUsage() ([]float64, error) {
	sources := 0
	if len(c.Usage.Series) > 0 {
		sources++
	}
	if c.Usage.Preset != "" {
		sources++
	}
	if c.Usage.Dataset != "" {
		sources++
	}
	if c.Usage.Generate != nil {
		sources++
	}
	if sources == 0 {
		return nil, errors.New("usage requires one of series, preset, dataset or generate")
	}
	if sources > 1 {
		return nil, errors.New("usage sources series, preset, dataset and generate are mutually exclusive")
	}

	switch {
	case len(c.Usage.Series) > 0:
		return c.Usage.Series, nil
	case c.Usage.Preset != "":
		return scenario.Preset(c.Usage.Preset)
	case c.Usage.Dataset != "":
		ds, err := data.LoadUsageDataset(c.Usage.Dataset)
		if err != nil {
			return nil, fmt.Errorf("usage.dataset: %w", err)
		}
		return ds.Usage, nil
	default:
		g := c.Usage.Generate
		periods := g.Periods
		if periods == 0 {
			periods = c.Periods
		}
		series, err := scenario.Generate(scenario.GenerateParams{
			Periods:              periods,
			BaselineStart:        g.BaselineStart,
			OrganicGrowth:        g.OrganicGrowth,
			FluctuationMagnitude: g.FluctuationMagnitude,
			FluctuationOffset:    g.FluctuationOffset,
			Noise:                g.Noise,
			SpikeMagnitude:       g.SpikeMagnitude,
			Seed:                 g.Seed,
		})
		if err != nil {
			return nil, fmt.Errorf("usage.generate: %w", err)
		}
		return series, nil
	}
}

// Merge overlays non-zero fields from override onto base. This is used
// when loading a base scenario file and then applying per-run overrides.
func Merge(base, override Config) Config {
	out := base
	out.ScenarioFile = ""
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.Periods != 0 {
		out.Periods = override.Periods
	}
	if override.Policy.Growth != "" {
		out.Policy.Growth = override.Policy.Growth
	}
	if override.Policy.GrowthRate != 0 {
		out.Policy.GrowthRate = override.Policy.GrowthRate
	}
	if override.Policy.GrowthIncrement != 0 {
		out.Policy.GrowthIncrement = override.Policy.GrowthIncrement
	}
	if override.Policy.BootstrapLimit != 0 {
		out.Policy.BootstrapLimit = override.Policy.BootstrapLimit
	}
	if override.Policy.MinLimit != 0 {
		out.Policy.MinLimit = override.Policy.MinLimit
	}
	if override.Policy.MaxLimit != 0 {
		out.Policy.MaxLimit = override.Policy.MaxLimit
	}
	if override.Usage.Preset != "" || len(override.Usage.Series) > 0 ||
		override.Usage.Dataset != "" || override.Usage.Generate != nil {
		out.Usage = override.Usage
	}
	if override.Wallet.Model != "" {
		out.Wallet = override.Wallet
	}
	if override.Reserved.Constant != 0 || len(override.Reserved.Schedule) > 0 {
		out.Reserved = override.Reserved
	}
	if len(override.Overrides) > 0 {
		out.Overrides = override.Overrides
	}
	return out
}
