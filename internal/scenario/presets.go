package scenario

import (
	"fmt"
	"math"
	"sort"
)

// presetPeriods is the length of every built-in usage series.
const presetPeriods = 30

// Presets returns the built-in usage series keyed by name. Each call
// builds a fresh copy; callers may mutate the slices freely.
func Presets() map[string][]float64 {
	steady := make([]float64, presetPeriods)
	ramp := make([]float64, presetPeriods)
	weekend := make([]float64, presetPeriods)
	random := make([]float64, presetPeriods)
	for i := 0; i < presetPeriods; i++ {
		steady[i] = 50 + float64(i)*2
		ramp[i] = 10 * math.Pow(1.1, float64(i))
		if i%7 < 5 {
			weekend[i] = 30
		} else {
			weekend[i] = 80
		}
		random[i] = 30 + float64((i*17+i*i*3)%40)
	}

	spike := repeat(30, 10)
	spike = append(spike, repeat(150, 3)...)
	spike = append(spike, repeat(30, 17)...)

	mistake := repeat(20, 9)
	mistake = append(mistake, 500)
	mistake = append(mistake, repeat(20, 20)...)

	viral := repeat(50, 14)
	viral = append(viral, 200, 250, 300, 350, 400)
	viral = append(viral, repeat(100, 11)...)

	return map[string][]float64{
		"steady_growth":     steady,
		"traffic_spike":     spike,
		"gradual_ramp":      ramp,
		"weekend_spikes":    weekend,
		"developer_mistake": mistake,
		"viral_moment":      viral,
		"random_variation":  random,
	}
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	m := Presets()
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns one named usage series.
func Preset(name string) ([]float64, error) {
	series, ok := Presets()[name]
	if !ok {
		return nil, fmt.Errorf("unknown usage preset %q", name)
	}
	return series, nil
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
