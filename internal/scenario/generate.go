package scenario

import (
	"fmt"
	"math"
	"math/rand"
)

// GenerateParams shapes a synthetic usage series: a baseline with weekly
// sinusoidal fluctuation, linear organic growth, seeded gaussian noise and
// a fixed table of usage spikes. The same params always produce the same
// series, which keeps generated scenarios replayable.
type GenerateParams struct {
	Periods int

	BaselineStart float64

	// OrganicGrowth is the linear growth applied as (1 + g*i/30).
	OrganicGrowth float64

	// FluctuationMagnitude scales the weekly sinusoid, FluctuationOffset
	// phase-shifts it in periods.
	FluctuationMagnitude float64
	FluctuationOffset    float64

	// Noise is the stddev fraction of multiplicative gaussian noise.
	Noise float64

	// SpikeMagnitude scales the built-in spike table; 0 disables spikes.
	SpikeMagnitude float64

	Seed int64
}

// minGeneratePeriods is the shortest series the spike table fits in.
const minGeneratePeriods = 52

// spikeTable maps offsets from the spike window start to multipliers.
var spikeTable = []struct {
	offset int
	factor float64
}{
	{10, 1.45}, {11, 1.55},
	{25, 2.5}, {26, 2.5}, {27, 2.5},
	{37, 2.0},
	{40, 1.8}, {41, 1.8}, {42, 1.8}, {43, 1.8}, {44, 1.8},
	{55, 2.5},
}

// Generate produces a deterministic synthetic usage series.
func Generate(p GenerateParams) ([]float64, error) {
	if p.Periods < minGeneratePeriods {
		return nil, fmt.Errorf("periods must be at least %d to fit all spikes, got %d", minGeneratePeriods, p.Periods)
	}

	rng := rand.New(rand.NewSource(p.Seed))
	spikeStart := int(math.Round(float64(p.Periods-60) / 2))

	series := make([]float64, p.Periods)
	for i := range series {
		phase := float64(i-spikeStart) + p.FluctuationOffset
		fluct := 1 + p.FluctuationMagnitude/2*math.Sin(phase*2*math.Pi/7)
		growth := 1 + p.OrganicGrowth*float64(i)/30
		noise := 1 + p.Noise*rng.NormFloat64()
		series[i] = math.Max(0, p.BaselineStart*fluct*growth*noise)
	}

	if p.SpikeMagnitude > 0 {
		for _, s := range spikeTable {
			idx := spikeStart + s.offset
			if idx >= 0 && idx < p.Periods {
				series[idx] *= s.factor * p.SpikeMagnitude
			}
		}
	}

	return series, nil
}
