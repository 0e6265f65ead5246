package model

import (
	"fmt"
	"sort"
)

// Override is one admin-applied adjustment for a specific period. The
// amount is signed; a negative override tightens the limit for that period.
type Override struct {
	Amount float64
	Reason string
}

// OverrideSet is a sparse period-indexed set of manual adjustments.
// Unlisted periods resolve to zero, never an error.
type OverrideSet map[int]Override

// AmountFor returns the signed adjustment for a period, 0 if none.
func (s OverrideSet) AmountFor(period int) float64 {
	return s[period].Amount
}

func (s OverrideSet) violations(periods int) []string {
	keys := make([]int, 0, len(s))
	for idx := range s {
		keys = append(keys, idx)
	}
	sort.Ints(keys)

	var v []string
	for _, idx := range keys {
		if idx < 0 || idx >= periods {
			v = append(v, fmt.Sprintf("overrides[%d] is outside the simulated range [0, %d)", idx, periods))
		}
	}
	return v
}
