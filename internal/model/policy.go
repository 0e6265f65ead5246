package model

// GrowthMode selects how the allowance candidate is derived from the
// previous period's limit. The set is closed on purpose: policies are
// picked by configuration tag, never by runtime type inspection.
type GrowthMode string

const (
	GrowthMultiplicative GrowthMode = "multiplicative"
	GrowthAdditive       GrowthMode = "additive"
)

// MaxGrowthRate bounds the per-period fractional growth rate.
const MaxGrowthRate = 1.0

// Policy defines the SGM growth rule for one scenario.
// Units are abstract spend dollars per period.
type Policy struct {
	Growth GrowthMode

	// GrowthRate is the fractional increase per period for the
	// multiplicative mode, bounded [0, MaxGrowthRate].
	GrowthRate float64

	// GrowthIncrement is the flat per-period increase for the additive mode.
	GrowthIncrement float64

	// BootstrapLimit is the allowance in effect at period 0, before any
	// growth has been applied.
	BootstrapLimit float64

	MinLimit float64
	MaxLimit float64
}

// Candidate computes the next growth candidate from the previous limit.
// Period 0 never reaches here; the engine seeds the bootstrap limit instead.
func (p Policy) Candidate(currentLimit float64) float64 {
	switch p.Growth {
	case GrowthAdditive:
		return currentLimit + p.GrowthIncrement
	default:
		return currentLimit * (1 + p.GrowthRate)
	}
}

// Clamp applies the absolute limit band.
func (p Policy) Clamp(limit float64) float64 {
	if limit < p.MinLimit {
		return p.MinLimit
	}
	if limit > p.MaxLimit {
		return p.MaxLimit
	}
	return limit
}

func (p Policy) violations() []string {
	var v []string
	switch p.Growth {
	case GrowthMultiplicative, GrowthAdditive, "":
	default:
		v = append(v, "policy.growth must be \"multiplicative\" or \"additive\"")
	}
	if p.GrowthRate < 0 || p.GrowthRate > MaxGrowthRate {
		v = append(v, "policy.growth_rate must be in [0, 1]")
	}
	if p.GrowthIncrement < 0 {
		v = append(v, "policy.growth_increment must be >= 0")
	}
	if p.MinLimit < 0 {
		v = append(v, "policy.min_limit must be >= 0")
	}
	if p.MinLimit > p.MaxLimit {
		v = append(v, "policy.min_limit must be <= policy.max_limit")
	}
	if p.BootstrapLimit < p.MinLimit || p.BootstrapLimit > p.MaxLimit {
		v = append(v, "policy.bootstrap_limit must be within [min_limit, max_limit]")
	}
	return v
}
