package sgm_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"sgm-simulator/internal/api/models"
	"sgm-simulator/internal/model"
	"sgm-simulator/internal/sgm"
)

// Trajectory regression pin. The scenario uses a 0.5 growth rate and
// integer usage so every intermediate value is exact in float64; any
// change to stage ordering or rounding shows up as a golden diff.
func TestRunner_GoldenTrajectory(t *testing.T) {
	sc, err := model.NewScenario(model.Scenario{
		Name: "golden",
		Policy: model.Policy{
			Growth:         model.GrowthMultiplicative,
			GrowthRate:     0.5,
			BootstrapLimit: 100,
			MinLimit:       0,
			MaxLimit:       1000,
		},
		Periods: 5,
		Usage:   []float64{0, 50, 200, 0, 500},
	})
	require.NoError(t, err)

	res, err := sgm.NewRunner().Run(sc)
	require.NoError(t, err)

	data, err := json.MarshalIndent(models.RowsFromTrajectory(res.Trajectory), "", "  ")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "trajectory_steady", append(data, '\n'))
}
