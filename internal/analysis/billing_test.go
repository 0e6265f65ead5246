package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sgm-simulator/internal/sgm"
)

func trajectoryWith(usage, floors []float64) []sgm.PeriodResult {
	out := make([]sgm.PeriodResult, len(usage))
	for i := range usage {
		out[i] = sgm.PeriodResult{
			PeriodIndex:   i,
			Usage:         usage[i],
			ReservedFloor: floors[i],
		}
	}
	return out
}

func TestBuildInvoices_SplitsPrepaidAndMetered(t *testing.T) {
	tr := trajectoryWith(
		[]float64{30, 80, 50, 10},
		[]float64{50, 50, 50, 50},
	)

	invoices := BuildInvoices(tr, 2)
	require.Len(t, invoices, 2)

	first := invoices[0]
	assert.Equal(t, 1, first.Cycle)
	assert.Equal(t, 0, first.StartPeriod)
	assert.Equal(t, 1, first.EndPeriod)
	assert.InDelta(t, 100, first.PrepaidReserved, 1e-9)
	// only period 1's 30 units above the floor are metered; period 0's
	// under-floor usage is covered by the prepaid reservation.
	assert.InDelta(t, 30, first.MeteredUsage, 1e-9)
	assert.InDelta(t, 130, first.Total, 1e-9)

	second := invoices[1]
	assert.Equal(t, 2, second.Cycle)
	assert.InDelta(t, 100, second.PrepaidReserved, 1e-9)
	assert.Zero(t, second.MeteredUsage)
}

func TestBuildInvoices_DropsTrailingPartialCycle(t *testing.T) {
	tr := trajectoryWith(
		[]float64{10, 10, 10, 10, 10},
		[]float64{0, 0, 0, 0, 0},
	)

	invoices := BuildInvoices(tr, 2)
	require.Len(t, invoices, 2, "fifth period has no complete cycle")
	assert.Equal(t, 3, invoices[1].EndPeriod)
}

func TestBuildInvoices_NoFloorBillsUsageOnly(t *testing.T) {
	tr := trajectoryWith(
		[]float64{25, 75},
		[]float64{0, 0},
	)

	invoices := BuildInvoices(tr, 2)
	require.Len(t, invoices, 1)
	assert.Zero(t, invoices[0].PrepaidReserved)
	assert.InDelta(t, 100, invoices[0].MeteredUsage, 1e-9)
}

func TestBuildInvoices_InvalidCycleLength(t *testing.T) {
	tr := trajectoryWith([]float64{10}, []float64{0})
	assert.Nil(t, BuildInvoices(tr, 0))
	assert.Nil(t, BuildInvoices(tr, -3))
}
