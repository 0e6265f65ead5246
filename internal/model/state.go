package model

// EngineState is the mutable per-run simulation state, reconstructed
// fresh for every run and never shared across runs. It is exclusively
// owned and advanced by the engine's step.
type EngineState struct {
	CurrentLimit float64
	Wallet       *WalletLedger
	PeriodIndex  int
}

// NewEngineState seeds a run's state from the policy. The current limit
// starts at the bootstrap value; period 0 re-seeds it rather than growing.
func NewEngineState(p Policy) *EngineState {
	return &EngineState{
		CurrentLimit: p.BootstrapLimit,
		Wallet:       NewWalletLedger(),
	}
}
