package model

import "fmt"

// WalletEntry is one audited movement of banked credit. Every unit that
// enters or leaves the wallet is traceable to exactly one period.
type WalletEntry struct {
	Period int
	Delta  float64
	Reason string
}

// Audit reasons used by the engine.
const (
	WalletReasonUsageDelta = "usage-delta"
	WalletReasonCapForfeit = "cap-forfeit"
)

// WalletLedger tracks the signed banked balance carried between periods.
// Positive = surplus available to smooth future shortfalls, negative =
// deficit owed. The balance has no hard bound of its own; capping, if any,
// comes from the scenario's WalletPolicy.
type WalletLedger struct {
	balance float64
	entries []WalletEntry
}

func NewWalletLedger() *WalletLedger {
	return &WalletLedger{}
}

func (w *WalletLedger) Balance() float64 { return w.balance }

// Apply records a signed movement against the balance.
func (w *WalletLedger) Apply(period int, delta float64, reason string) {
	w.balance += delta
	w.entries = append(w.entries, WalletEntry{Period: period, Delta: delta, Reason: reason})
}

// Entries returns the audit log in application order.
func (w *WalletLedger) Entries() []WalletEntry { return w.entries }

// WalletModel names a capacity rule for the banked balance.
type WalletModel string

const (
	// WalletUnlimited banks every surplus with no cap. This is the default
	// and the only model the core invariants assume.
	WalletUnlimited WalletModel = "unlimited"

	// WalletLimit2x caps the balance at 2x the period's growth candidate.
	WalletLimit2x WalletModel = "limit_2x"

	// WalletThreePeriod caps the balance at 3x the period's growth candidate.
	WalletThreePeriod WalletModel = "three_period"

	// WalletCustom caps the balance at Multiplier x the growth candidate.
	WalletCustom WalletModel = "custom"
)

// WalletPolicy is the optional banking cap. The engine never caps on its
// own; an unlimited policy leaves the balance untouched.
type WalletPolicy struct {
	Model      WalletModel
	Multiplier float64
}

// Capacity returns the maximum balance for the given growth candidate and
// whether a cap applies at all.
func (p WalletPolicy) Capacity(candidate float64) (float64, bool) {
	switch p.Model {
	case WalletLimit2x:
		return candidate * 2, true
	case WalletThreePeriod:
		return candidate * 3, true
	case WalletCustom:
		return candidate * p.Multiplier, true
	default:
		return 0, false
	}
}

func (p WalletPolicy) violations() []string {
	var v []string
	switch p.Model {
	case WalletUnlimited, WalletLimit2x, WalletThreePeriod, "":
	case WalletCustom:
		if p.Multiplier <= 0 {
			v = append(v, "wallet.multiplier must be > 0 for the custom model")
		}
	default:
		v = append(v, fmt.Sprintf("wallet.model %q is not recognized", p.Model))
	}
	return v
}
