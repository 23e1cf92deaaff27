// Package dexmath implements the integer arithmetic shared by the swap and
// liquidity engines. Every product of two reserve-scale values is formed in a
// 256-bit intermediate so it can never wrap.
package dexmath

import (
	"math"
	"math/bits"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/apperrors"
)

// IntegerSqrt returns floor(sqrt(y)) using the Babylonian method.
func IntegerSqrt(y uint64) uint64 {
	switch {
	case y == 0:
		return 0
	case y < 4:
		return 1
	}

	// y/2+1 instead of (y+1)/2 so that y == MaxUint64 does not wrap.
	x := y
	z := y/2 + 1
	for z < x {
		x = z
		z = (y/z + z) / 2
	}
	return x
}

// WideMulDiv computes floor(a*b/denom) without overflowing on the a*b product.
// It fails with ErrDivisionByZero when denom is zero and with ErrMathOverflow
// when the quotient does not fit into 64 bits.
func WideMulDiv(a, b, denom uint64) (uint64, error) {
	if denom == 0 {
		return 0, apperrors.ErrDivisionByZero
	}

	var x, y, d, z uint256.Int
	x.SetUint64(a)
	y.SetUint64(b)
	d.SetUint64(denom)

	if _, overflow := z.MulDivOverflow(&x, &y, &d); overflow {
		return 0, errors.Wrapf(apperrors.ErrMathOverflow, "%d * %d / %d", a, b, denom)
	}
	if !z.IsUint64() {
		return 0, errors.Wrapf(apperrors.ErrMathOverflow, "%d * %d / %d exceeds 64 bits", a, b, denom)
	}
	return z.Uint64(), nil
}

// WideMul returns the exact product a*b.
func WideMul(a, b uint64) *uint256.Int {
	x := uint256.NewInt(a)
	return x.Mul(x, uint256.NewInt(b))
}

// CheckedMul returns a*b, failing when the product does not fit into 64 bits.
func CheckedMul(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, errors.Wrapf(apperrors.ErrMathOverflow, "%d * %d", a, b)
	}
	return lo, nil
}

// CheckedAdd returns a+b, failing on wrap-around.
func CheckedAdd(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, errors.Wrapf(apperrors.ErrMathOverflow, "%d + %d", a, b)
	}
	return sum, nil
}

// CheckedSub returns a-b, failing when b > a.
func CheckedSub(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, errors.Wrapf(apperrors.ErrMathOverflow, "%d - %d", a, b)
	}
	return diff, nil
}

// SaturatingAdd returns a+b clamped to MaxUint64. It is meant for telemetry
// counters only; never use it for reserves, shares or fees.
func SaturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}
