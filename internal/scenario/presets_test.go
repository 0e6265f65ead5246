package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets_AllThirtyPeriods(t *testing.T) {
	for name, series := range Presets() {
		assert.Len(t, series, presetPeriods, name)
		for i, v := range series {
			assert.GreaterOrEqual(t, v, 0.0, "%s[%d]", name, i)
		}
	}
}

func TestPresets_KnownShapes(t *testing.T) {
	p := Presets()

	assert.Equal(t, 50.0, p["steady_growth"][0])
	assert.Equal(t, 52.0, p["steady_growth"][1])

	spike := p["traffic_spike"]
	assert.Equal(t, 30.0, spike[9])
	assert.Equal(t, 150.0, spike[10])
	assert.Equal(t, 150.0, spike[12])
	assert.Equal(t, 30.0, spike[13])

	mistake := p["developer_mistake"]
	assert.Equal(t, 500.0, mistake[9])
	assert.Equal(t, 20.0, mistake[10])

	viral := p["viral_moment"]
	assert.Equal(t, 50.0, viral[13])
	assert.Equal(t, 200.0, viral[14])
	assert.Equal(t, 400.0, viral[18])
	assert.Equal(t, 100.0, viral[19])
}

func TestPresets_FreshCopies(t *testing.T) {
	first, err := Preset("steady_growth")
	require.NoError(t, err)
	first[0] = -1

	second, err := Preset("steady_growth")
	require.NoError(t, err)
	assert.Equal(t, 50.0, second[0], "mutating a returned series must not leak")
}

func TestPresetNames_Sorted(t *testing.T) {
	names := PresetNames()
	assert.Equal(t, []string{
		"developer_mistake",
		"gradual_ramp",
		"random_variation",
		"steady_growth",
		"traffic_spike",
		"viral_moment",
		"weekend_spikes",
	}, names)
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("black_friday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "black_friday")
}
