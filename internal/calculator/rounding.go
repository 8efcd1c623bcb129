package calculator

import "math"

// RoundingMode selects how a participant's final share is rounded. Rounding
// happens at cent precision and only on the final per-participant total,
// never on intermediate subtotal/tax/tip figures.
type RoundingMode int

const (
	RoundNone RoundingMode = iota
	RoundUp
	RoundDown
	RoundNearest
)

// ParseRoundingMode maps a settings string onto a mode. Unknown values fall
// back to RoundNone so a bad setting never changes anyone's total.
func ParseRoundingMode(s string) RoundingMode {
	switch s {
	case "up":
		return RoundUp
	case "down":
		return RoundDown
	case "nearest":
		return RoundNearest
	default:
		return RoundNone
	}
}

func (m RoundingMode) String() string {
	switch m {
	case RoundUp:
		return "up"
	case RoundDown:
		return "down"
	case RoundNearest:
		return "nearest"
	default:
		return "none"
	}
}

// Apply rounds an amount to cents according to the mode.
func (m RoundingMode) Apply(amount float64) float64 {
	cents := amount * 100
	switch m {
	case RoundUp:
		return math.Ceil(cents) / 100
	case RoundDown:
		return math.Floor(cents) / 100
	case RoundNearest:
		return math.Round(cents) / 100
	default:
		return amount
	}
}
