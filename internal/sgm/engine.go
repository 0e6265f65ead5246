package sgm

import "sgm-simulator/internal/model"

// Engine computes one period's transition. It is deterministic and holds
// no state of its own: everything it touches is passed in and returned.
type Engine struct {
	policy model.Policy
	wallet model.WalletPolicy
}

func New(policy model.Policy, wallet model.WalletPolicy) *Engine {
	return &Engine{policy: policy, wallet: wallet}
}

// Step advances the state by one period and emits the period's result.
//
// Stage order matters and each stage feeds the next:
//  1. period 0 seeds the bootstrap limit instead of growing
//  2. growth produces the candidate limit
//  3. the wallet absorbs candidate - usage (pre-floor candidate; the
//     balance may go negative and is never floored at zero)
//  4. the reserved floor clamps the candidate upward, flagged when it wins
//  5. the manual override lands last, then the absolute band clamps
//
// Step raises no errors for in-range inputs; malformed scenarios are
// rejected at construction, not per step.
func (e *Engine) Step(state *model.EngineState, usage, reservedFloor, override float64) PeriodResult {
	limitBefore := state.CurrentLimit
	walletBefore := state.Wallet.Balance()

	candidate := e.policy.BootstrapLimit
	if state.PeriodIndex > 0 {
		candidate = e.policy.Candidate(state.CurrentLimit)
	}

	delta := candidate - usage
	state.Wallet.Apply(state.PeriodIndex, delta, model.WalletReasonUsageDelta)

	var forfeited float64
	if capacity, capped := e.wallet.Capacity(candidate); capped && state.Wallet.Balance() > capacity {
		forfeited = state.Wallet.Balance() - capacity
		state.Wallet.Apply(state.PeriodIndex, -forfeited, model.WalletReasonCapForfeit)
	}

	limit := candidate
	floorApplied := false
	if reservedFloor > limit {
		limit = reservedFloor
		floorApplied = true
	}

	limit = e.policy.Clamp(limit + override)

	res := PeriodResult{
		PeriodIndex:           state.PeriodIndex,
		LimitBefore:           limitBefore,
		Usage:                 usage,
		GrowthCandidate:       candidate,
		LimitAfter:            limit,
		WalletBefore:          walletBefore,
		WalletAfter:           state.Wallet.Balance(),
		WalletForfeited:       forfeited,
		ReservedFloor:         reservedFloor,
		ReservedFloorApplied:  floorApplied,
		ManualOverrideApplied: override,
		Action:                model.ActionFromWalletDelta(delta),
	}

	state.CurrentLimit = limit
	state.PeriodIndex++
	return res
}
