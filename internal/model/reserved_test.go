package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReservedVolumes_ConstantFloor(t *testing.T) {
	r := ReservedVolumes{Constant: 50}
	assert.Equal(t, 50.0, r.FloorFor(0))
	assert.Equal(t, 50.0, r.FloorFor(999))
}

func TestReservedVolumes_SchedulePrecedence(t *testing.T) {
	r := ReservedVolumes{Constant: 50, Schedule: []float64{10, 20, 30}}
	assert.Equal(t, 10.0, r.FloorFor(0))
	assert.Equal(t, 30.0, r.FloorFor(2))
}

func TestReservedVolumes_ScheduleLengthValidated(t *testing.T) {
	r := ReservedVolumes{Schedule: []float64{10, 20}}
	v := r.violations(5)
	assert.Len(t, v, 1)
	assert.Contains(t, v[0], "2 entries, want 5")

	assert.Empty(t, ReservedVolumes{Schedule: []float64{1, 2, 3, 4, 5}}.violations(5))
	assert.Empty(t, ReservedVolumes{Constant: 10}.violations(5))
}

func TestOverrideSet_SparseResolution(t *testing.T) {
	s := OverrideSet{3: {Amount: -25, Reason: "incident credit"}}
	assert.Equal(t, -25.0, s.AmountFor(3))
	assert.Equal(t, 0.0, s.AmountFor(0), "unlisted periods resolve to zero")
	assert.Equal(t, 0.0, s.AmountFor(-1))
}

func TestOverrideSet_OutOfRangeValidated(t *testing.T) {
	s := OverrideSet{-1: {Amount: 5}, 10: {Amount: 5}, 2: {Amount: 5}}
	v := s.violations(5)
	assert.Len(t, v, 2)
}
