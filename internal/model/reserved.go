package model

import "fmt"

// ReservedVolumes resolves the guaranteed minimum allowance floor for a
// period, from either a single constant or a per-period schedule. The
// floor is a hard guarantee: it is enforced after growth and wallet
// mechanics and is never reduced by wallet debt.
type ReservedVolumes struct {
	Constant float64
	Schedule []float64
}

// FloorFor returns the floor value for the given period. A schedule, when
// present, takes precedence over the constant. Schedule length is
// validated at scenario construction; out-of-range lookups fall back to
// the constant.
func (r ReservedVolumes) FloorFor(period int) float64 {
	if len(r.Schedule) > 0 {
		if period >= 0 && period < len(r.Schedule) {
			return r.Schedule[period]
		}
	}
	return r.Constant
}

func (r ReservedVolumes) violations(periods int) []string {
	var v []string
	if r.Constant < 0 {
		v = append(v, "reserved.constant must be >= 0")
	}
	if len(r.Schedule) > 0 && len(r.Schedule) != periods {
		v = append(v, fmt.Sprintf("reserved.schedule has %d entries, want %d (one per period)",
			len(r.Schedule), periods))
	}
	for i, f := range r.Schedule {
		if f < 0 {
			v = append(v, fmt.Sprintf("reserved.schedule[%d] must be >= 0", i))
			break
		}
	}
	return v
}
