package model

import "fmt"

// Scenario is the immutable input for one simulation run: the growth
// policy plus the per-period drivers. Construct with NewScenario, which
// rejects malformed input with a ConfigError enumerating every violated
// invariant, not just the first.
type Scenario struct {
	Name    string
	Policy  Policy
	Periods int

	// Usage is the ordered per-period consumption series, one value per
	// simulated period.
	Usage []float64

	Reserved  ReservedVolumes
	Overrides OverrideSet
	Wallet    WalletPolicy
}

// NewScenario validates and returns a scenario. The returned scenario is
// shared read-only across every step of a run; it is never mutated.
func NewScenario(s Scenario) (*Scenario, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every scenario-level invariant and reports all
// violations at once.
func (s *Scenario) Validate() error {
	var v []string

	if s.Periods <= 0 {
		v = append(v, "periods must be > 0")
	}
	if len(s.Usage) != s.Periods {
		v = append(v, fmt.Sprintf("usage has %d entries, want %d (one per period)", len(s.Usage), s.Periods))
	}
	for i, u := range s.Usage {
		if u < 0 {
			v = append(v, fmt.Sprintf("usage[%d] must be >= 0", i))
			break
		}
	}

	v = append(v, s.Policy.violations()...)
	v = append(v, s.Wallet.violations()...)
	if s.Periods > 0 {
		v = append(v, s.Reserved.violations(s.Periods)...)
		v = append(v, s.Overrides.violations(s.Periods)...)
	}

	if len(v) > 0 {
		return &ConfigError{Violations: v}
	}
	return nil
}
