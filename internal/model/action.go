package model

// Action is a human-friendly investment regime for a chosen rate.
// Keep these values stable; they are intended for CSV output.
type Action string

const (
	ActionInvest    Action = "INVEST"
	ActionInaction  Action = "INACTION"
	ActionDisinvest Action = "DISINVEST"
)

func ActionFromRate(rate float64) Action {
	switch {
	case rate > 0:
		return ActionInvest
	case rate < 0:
		return ActionDisinvest
	default:
		return ActionInaction
	}
}

// Adjusting reports whether the rate triggers the fixed adjustment costs.
func (a Action) Adjusting() bool {
	return a != ActionInaction
}
