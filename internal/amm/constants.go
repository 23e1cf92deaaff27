// Package amm is the pricing and accounting core of a constant-product market
// maker. It computes swap outputs, fees and LP-share issuance/redemption and
// owns the Pool record. It performs no I/O and holds no shared state: callers
// serialize access to a Pool and execute transfers themselves.
package amm

const (
	// BPSDenominator is 100% expressed in basis points.
	BPSDenominator uint64 = 10_000

	// PriceFractionalBits is the fixed-point precision of pool prices (Q64).
	PriceFractionalBits = 64

	// MinimumLiquidity is locked forever on the first deposit.
	MinimumLiquidity uint64 = 1_000

	// MinFeeBPS and MaxFeeBPS bound the pool fee rate (0.01%..10%).
	MinFeeBPS uint64 = 1
	MaxFeeBPS uint64 = 1_000

	// MinSwapAmount is the dust floor for swap inputs.
	MinSwapAmount uint64 = 100

	// MinInitialLiquidity is the smallest per-asset amount of a first deposit.
	MinInitialLiquidity uint64 = 1_000

	// ProtocolVersion is stamped on every new pool.
	ProtocolVersion uint8 = 1
)

// FeeTier is a fee rate expressed as a fraction.
type FeeTier struct {
	Numerator   uint64 `json:"numerator" yaml:"numerator"`
	Denominator uint64 `json:"denominator" yaml:"denominator"`
}

// Predefined fee tiers.
var (
	// StandardFee is 0.3%.
	StandardFee = FeeTier{Numerator: 3, Denominator: 1_000}
	// LowFee is 0.05%, meant for stable pairs.
	LowFee = FeeTier{Numerator: 5, Denominator: 10_000}
	// HighFee is 1%, meant for exotic pairs.
	HighFee = FeeTier{Numerator: 1, Denominator: 100}
)
