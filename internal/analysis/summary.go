package analysis

import (
	"sgm-simulator/internal/model"
	"sgm-simulator/internal/sgm"
)

// Summary aggregates one trajectory into the headline numbers the
// dashboard and CLI report.
type Summary struct {
	Name    string
	Periods int

	TotalUsage     float64
	TotalBanked    float64
	TotalDrawn     float64
	TotalForfeited float64

	FinalLimit  float64
	FinalWallet float64

	// PeakWalletDebt is the deepest negative balance reached, reported as
	// a positive number. 0 when the wallet never went negative.
	PeakWalletDebt float64

	BankingPeriods  int
	DrawingPeriods  int
	FloorPeriods    int
	CapPeriods      int
	OverridePeriods int
}

// Summarize walks the trajectory once and accumulates totals.
func Summarize(sc *model.Scenario, res *sgm.Result) Summary {
	s := Summary{
		Name:        sc.Name,
		Periods:     len(res.Trajectory),
		FinalLimit:  res.FinalLimit,
		FinalWallet: res.FinalWallet,
	}

	for _, r := range res.Trajectory {
		s.TotalUsage += r.Usage
		s.TotalForfeited += r.WalletForfeited

		delta := r.GrowthCandidate - r.Usage
		if delta > 0 {
			s.TotalBanked += delta
			s.BankingPeriods++
		} else if delta < 0 {
			s.TotalDrawn += -delta
			s.DrawingPeriods++
		}

		if r.WalletAfter < 0 && -r.WalletAfter > s.PeakWalletDebt {
			s.PeakWalletDebt = -r.WalletAfter
		}
		if r.ReservedFloorApplied {
			s.FloorPeriods++
		}
		if r.LimitAfter == sc.Policy.MaxLimit {
			s.CapPeriods++
		}
		if r.ManualOverrideApplied != 0 {
			s.OverridePeriods++
		}
	}
	return s
}
