package model

// Action is a human-friendly classification of a period's wallet movement.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionBanking Action = "BANKING"
	ActionNeutral Action = "NEUTRAL"
	ActionDrawing Action = "DRAWING"
)

func ActionFromWalletDelta(delta float64) Action {
	switch {
	case delta > 0:
		return ActionBanking
	case delta < 0:
		return ActionDrawing
	default:
		return ActionNeutral
	}
}
