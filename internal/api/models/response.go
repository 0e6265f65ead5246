package models

import (
	"sgm-simulator/internal/analysis"
	"sgm-simulator/internal/sgm"
)

// SimulateResponse is the result of one simulation run.
type SimulateResponse struct {
	ID         string      `json:"id,omitempty"`
	Status     string      `json:"status"`
	Summary    Summary     `json:"summary"`
	Trajectory []PeriodRow `json:"trajectory,omitempty"`
	Invoices   []Invoice   `json:"invoices,omitempty"`
}

// Summary mirrors analysis.Summary with a stable JSON schema.
type Summary struct {
	Name    string `json:"name,omitempty"`
	Periods int    `json:"periods"`

	TotalUsage     float64 `json:"total_usage"`
	TotalBanked    float64 `json:"total_banked"`
	TotalDrawn     float64 `json:"total_drawn"`
	TotalForfeited float64 `json:"total_forfeited"`

	FinalLimit     float64 `json:"final_limit"`
	FinalWallet    float64 `json:"final_wallet"`
	PeakWalletDebt float64 `json:"peak_wallet_debt"`

	BankingPeriods  int `json:"banking_periods"`
	DrawingPeriods  int `json:"drawing_periods"`
	FloorPeriods    int `json:"floor_periods"`
	CapPeriods      int `json:"cap_periods"`
	OverridePeriods int `json:"override_periods"`
}

// PeriodRow is one trajectory row. Field names are the stable schema any
// consumer serializes; keep them aligned with the CSV header.
type PeriodRow struct {
	PeriodIndex           int     `json:"period_index"`
	LimitBefore           float64 `json:"limit_before"`
	Usage                 float64 `json:"usage"`
	GrowthCandidate       float64 `json:"growth_candidate"`
	LimitAfter            float64 `json:"limit_after"`
	WalletBefore          float64 `json:"wallet_before"`
	WalletAfter           float64 `json:"wallet_after"`
	WalletForfeited       float64 `json:"wallet_forfeited"`
	ReservedFloor         float64 `json:"reserved_floor"`
	ReservedFloorApplied  bool    `json:"reserved_floor_applied"`
	ManualOverrideApplied float64 `json:"manual_override_applied"`
	Action                string  `json:"action"`
}

type Invoice struct {
	Cycle           int     `json:"cycle"`
	StartPeriod     int     `json:"start_period"`
	EndPeriod       int     `json:"end_period"`
	PrepaidReserved float64 `json:"prepaid_reserved"`
	MeteredUsage    float64 `json:"metered_usage"`
	Total           float64 `json:"total"`
}

type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

type ComparisonResult struct {
	Name    string  `json:"name"`
	Summary Summary `json:"summary"`
}

type ScenariosResponse struct {
	Presets []PresetInfo `json:"presets"`
}

type PresetInfo struct {
	Name    string `json:"name"`
	Periods int    `json:"periods"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func SummaryFromAnalysis(s analysis.Summary) Summary {
	return Summary{
		Name:            s.Name,
		Periods:         s.Periods,
		TotalUsage:      s.TotalUsage,
		TotalBanked:     s.TotalBanked,
		TotalDrawn:      s.TotalDrawn,
		TotalForfeited:  s.TotalForfeited,
		FinalLimit:      s.FinalLimit,
		FinalWallet:     s.FinalWallet,
		PeakWalletDebt:  s.PeakWalletDebt,
		BankingPeriods:  s.BankingPeriods,
		DrawingPeriods:  s.DrawingPeriods,
		FloorPeriods:    s.FloorPeriods,
		CapPeriods:      s.CapPeriods,
		OverridePeriods: s.OverridePeriods,
	}
}

func RowsFromTrajectory(trajectory []sgm.PeriodResult) []PeriodRow {
	rows := make([]PeriodRow, len(trajectory))
	for i, r := range trajectory {
		rows[i] = PeriodRow{
			PeriodIndex:           r.PeriodIndex,
			LimitBefore:           r.LimitBefore,
			Usage:                 r.Usage,
			GrowthCandidate:       r.GrowthCandidate,
			LimitAfter:            r.LimitAfter,
			WalletBefore:          r.WalletBefore,
			WalletAfter:           r.WalletAfter,
			WalletForfeited:       r.WalletForfeited,
			ReservedFloor:         r.ReservedFloor,
			ReservedFloorApplied:  r.ReservedFloorApplied,
			ManualOverrideApplied: r.ManualOverrideApplied,
			Action:                string(r.Action),
		}
	}
	return rows
}

func InvoicesFromAnalysis(invoices []analysis.Invoice) []Invoice {
	out := make([]Invoice, len(invoices))
	for i, inv := range invoices {
		out[i] = Invoice{
			Cycle:           inv.Cycle,
			StartPeriod:     inv.StartPeriod,
			EndPeriod:       inv.EndPeriod,
			PrepaidReserved: inv.PrepaidReserved,
			MeteredUsage:    inv.MeteredUsage,
			Total:           inv.Total,
		}
	}
	return out
}
