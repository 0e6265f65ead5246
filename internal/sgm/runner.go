package sgm

import (
	"fmt"
	"math"

	"sgm-simulator/internal/model"
)

// conservationTol absorbs float64 rounding when cross-checking the wallet
// delta against candidate - usage over long runs.
const conservationTol = 1e-6

// Runner drives the engine across all configured periods and assembles
// the trajectory. A run is strictly sequential: state at period N depends
// on period N-1. Identical scenarios always yield identical trajectories.
type Runner struct{}

func NewRunner() *Runner { return &Runner{} }

// Run validates the scenario, then executes it period by period.
//
// A ConfigError aborts before any simulation begins. An InvariantError
// aborts at the failing period; the Result returned alongside it holds the
// partial trajectory up to and including that period, for diagnosis.
func (r *Runner) Run(sc *model.Scenario) (*Result, error) {
	if sc == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	engine := New(sc.Policy, sc.Wallet)
	state := model.NewEngineState(sc.Policy)
	trajectory := make([]PeriodResult, 0, sc.Periods)

	for i := 0; i < sc.Periods; i++ {
		res := engine.Step(state, sc.Usage[i], sc.Reserved.FloorFor(i), sc.Overrides.AmountFor(i))
		trajectory = append(trajectory, res)

		if err := checkStep(sc.Policy, res); err != nil {
			return &Result{
				Trajectory:  trajectory,
				FinalLimit:  state.CurrentLimit,
				FinalWallet: state.Wallet.Balance(),
				WalletAudit: state.Wallet.Entries(),
			}, err
		}
	}

	return &Result{
		Trajectory:  trajectory,
		FinalLimit:  state.CurrentLimit,
		FinalWallet: state.Wallet.Balance(),
		WalletAudit: state.Wallet.Entries(),
	}, nil
}

// checkStep verifies the post-step invariants from the data model: the
// clamped limit stays inside the absolute band, and every wallet movement
// is accounted for by the period's usage delta and cap forfeiture.
func checkStep(p model.Policy, res PeriodResult) error {
	if res.LimitAfter < p.MinLimit || res.LimitAfter > p.MaxLimit {
		return &InvariantError{
			Period: res.PeriodIndex,
			Detail: fmt.Sprintf("limit_after %.6f outside [%.6f, %.6f]", res.LimitAfter, p.MinLimit, p.MaxLimit),
		}
	}

	got := res.WalletAfter - res.WalletBefore + res.WalletForfeited
	want := res.GrowthCandidate - res.Usage
	if math.Abs(got-want) > conservationTol {
		return &InvariantError{
			Period: res.PeriodIndex,
			Detail: fmt.Sprintf("wallet delta %.9f does not match usage delta %.9f", got, want),
		}
	}
	return nil
}
