package analysis

import "sgm-simulator/internal/sgm"

// Invoice covers one completed billing cycle: the prepaid reserved floor
// for the cycle plus the metered usage above the floor.
type Invoice struct {
	Cycle       int
	StartPeriod int
	EndPeriod   int

	PrepaidReserved float64
	MeteredUsage    float64
	Total           float64
}

// BuildInvoices slices a trajectory into fixed-length billing cycles.
// Only completed cycles produce invoices; a trailing partial cycle is
// left unbilled.
func BuildInvoices(trajectory []sgm.PeriodResult, cycleLength int) []Invoice {
	if cycleLength <= 0 {
		return nil
	}

	var invoices []Invoice
	for start := 0; start+cycleLength <= len(trajectory); start += cycleLength {
		inv := Invoice{
			Cycle:       len(invoices) + 1,
			StartPeriod: start,
			EndPeriod:   start + cycleLength - 1,
		}
		for _, r := range trajectory[start : start+cycleLength] {
			inv.PrepaidReserved += r.ReservedFloor
			metered := r.Usage - r.ReservedFloor
			if metered > 0 {
				inv.MeteredUsage += metered
			}
		}
		inv.Total = inv.PrepaidReserved + inv.MeteredUsage
		invoices = append(invoices, inv)
	}
	return invoices
}
