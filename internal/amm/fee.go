package amm

import "github.com/ritikbhatt20/Vortex/internal/dexmath"

// ValidateFee reports whether numerator/denominator is an allowed fee rate.
func ValidateFee(numerator, denominator uint64) bool {
	bps, ok := feeBPS(numerator, denominator)
	if !ok {
		return false
	}
	return bps >= MinFeeBPS && bps <= MaxFeeBPS
}

// BPS returns the tier rate in basis points, or 0 for a malformed tier.
func (f FeeTier) BPS() uint64 {
	bps, _ := feeBPS(f.Numerator, f.Denominator)
	return bps
}

// Valid reports whether the tier is within [MinFeeBPS, MaxFeeBPS].
func (f FeeTier) Valid() bool {
	return ValidateFee(f.Numerator, f.Denominator)
}

func feeBPS(numerator, denominator uint64) (uint64, bool) {
	if denominator == 0 {
		return 0, false
	}
	bps, err := dexmath.WideMulDiv(numerator, BPSDenominator, denominator)
	if err != nil {
		return 0, false
	}
	return bps, true
}
