package sgm

import "sgm-simulator/internal/model"

// PeriodResult is one row of the output trajectory.
// This is the primary artifact for "what happened" in a simulation, and
// the stable schema any exporter serializes.
type PeriodResult struct {
	PeriodIndex int

	// LimitBefore is the active allowance entering the period.
	LimitBefore float64

	Usage float64

	// GrowthCandidate is the post-growth, pre-floor candidate limit. The
	// wallet delta for the period is always GrowthCandidate - Usage.
	GrowthCandidate float64

	// LimitAfter is the allowance after floor, override and the absolute
	// band have all been applied. Growth in the next period compounds on
	// this value.
	LimitAfter float64

	WalletBefore float64
	WalletAfter  float64

	// WalletForfeited is the surplus discarded by a capped wallet policy,
	// 0 under the default unlimited policy.
	WalletForfeited float64

	ReservedFloor float64

	// ReservedFloorApplied is true only when the floor overrode the
	// computed candidate. Hitting MaxLimit is clamped silently and does
	// not set any flag.
	ReservedFloorApplied bool

	// ManualOverrideApplied is the raw requested adjustment, not the
	// post-clamp effective amount. Diff LimitAfter - LimitBefore to see
	// the actual effect.
	ManualOverrideApplied float64

	Action model.Action
}

// Result bundles a full run's trajectory with its ending state.
type Result struct {
	Trajectory []PeriodResult

	FinalLimit  float64
	FinalWallet float64

	// WalletAudit is the ledger's per-period movement log, kept for
	// introspection by tests and tooling.
	WalletAudit []model.WalletEntry
}
