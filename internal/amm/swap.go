package amm

import (
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/dexmath"
)

// Direction selects which reserve a swap pays into.
type Direction uint8

const (
	// AToB sells asset A for asset B.
	AToB Direction = iota
	// BToA sells asset B for asset A.
	BToA
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == BToA {
		return "b_to_a"
	}
	return "a_to_b"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "a_to_b":
		*d = AToB
	case "b_to_a":
		*d = BToA
	default:
		return errors.Wrapf(apperrors.ErrInvalidArgument, "unknown direction %q", text)
	}
	return nil
}

// ComputeSwap returns the output amount and the fee retained by the pool for
// amountIn sold against (reserveIn, reserveOut).
//
//	fee       = amountIn * feeNum / feeDen
//	amountOut = (amountIn - fee) * reserveOut / (reserveIn + amountIn - fee)
//
// The fee stays in the input reserve, so k grows on every trade. ComputeSwap
// does not touch any state; callers must still run VerifyInvariant on the
// resulting reserves before committing them.
func ComputeSwap(amountIn, reserveIn, reserveOut, feeNum, feeDen uint64) (uint64, uint64, error) {
	if amountIn < MinSwapAmount {
		return 0, 0, errors.Wrapf(apperrors.ErrAmountTooSmall, "amount in %d below minimum %d", amountIn, MinSwapAmount)
	}
	if reserveIn == 0 || reserveOut == 0 {
		return 0, 0, apperrors.ErrPoolNotInitialized
	}

	feeAmount, err := dexmath.WideMulDiv(amountIn, feeNum, feeDen)
	if err != nil {
		return 0, 0, errors.Wrap(err, "fee amount")
	}
	amountInNet, err := dexmath.CheckedSub(amountIn, feeAmount)
	if err != nil {
		return 0, 0, errors.Wrap(err, "amount in after fee")
	}
	denominator, err := dexmath.CheckedAdd(reserveIn, amountInNet)
	if err != nil {
		return 0, 0, errors.Wrap(err, "reserve in after swap")
	}
	amountOut, err := dexmath.WideMulDiv(amountInNet, reserveOut, denominator)
	if err != nil {
		return 0, 0, errors.Wrap(err, "amount out")
	}

	if amountOut == 0 {
		return 0, 0, errors.Wrap(apperrors.ErrAmountTooSmall, "amount out rounds to zero")
	}
	if amountOut >= reserveOut {
		return 0, 0, apperrors.ErrInsufficientLiquidity
	}

	return amountOut, feeAmount, nil
}

// VerifyInvariant fails with ErrInvariantViolation if newA*newB < oldA*oldB.
func VerifyInvariant(oldA, oldB, newA, newB uint64) error {
	kOld := dexmath.WideMul(oldA, oldB)
	kNew := dexmath.WideMul(newA, newB)
	if kNew.Lt(kOld) {
		return errors.Wrapf(apperrors.ErrInvariantViolation, "k decreased from %s to %s", kOld.Dec(), kNew.Dec())
	}
	return nil
}

// SwapQuote is a fully validated swap against a specific pool state.
type SwapQuote struct {
	Direction Direction `json:"direction"`
	AmountIn  uint64    `json:"amount_in"`
	AmountOut uint64    `json:"amount_out"`
	FeeAmount uint64    `json:"fee_amount"`

	ReserveA    uint64 `json:"reserve_a"`
	ReserveB    uint64 `json:"reserve_b"`
	NewReserveA uint64 `json:"new_reserve_a"`
	NewReserveB uint64 `json:"new_reserve_b"`
}

// Statistics returns the per-asset volume and fee deltas of the swap.
func (q SwapQuote) Statistics() (volumeA, volumeB, feeA, feeB uint64) {
	if q.Direction == AToB {
		return q.AmountIn, q.AmountOut, q.FeeAmount, 0
	}
	return q.AmountOut, q.AmountIn, 0, q.FeeAmount
}

// QuoteSwap prices a swap of amountIn against p and checks the invariant on
// the resulting reserves. p is not modified.
func QuoteSwap(p *Pool, amountIn uint64, dir Direction) (SwapQuote, error) {
	if p.Paused {
		return SwapQuote{}, apperrors.ErrPoolPaused
	}
	if !p.IsInitialized() {
		return SwapQuote{}, apperrors.ErrPoolNotInitialized
	}

	reserveIn, reserveOut := p.ReserveA, p.ReserveB
	if dir == BToA {
		reserveIn, reserveOut = p.ReserveB, p.ReserveA
	}

	amountOut, feeAmount, err := ComputeSwap(amountIn, reserveIn, reserveOut, p.FeeNumerator, p.FeeDenominator)
	if err != nil {
		return SwapQuote{}, err
	}

	newIn, err := dexmath.CheckedAdd(reserveIn, amountIn)
	if err != nil {
		return SwapQuote{}, errors.Wrap(err, "new input reserve")
	}
	newOut, err := dexmath.CheckedSub(reserveOut, amountOut)
	if err != nil {
		return SwapQuote{}, errors.Wrap(err, "new output reserve")
	}

	q := SwapQuote{
		Direction: dir,
		AmountIn:  amountIn,
		AmountOut: amountOut,
		FeeAmount: feeAmount,
		ReserveA:  p.ReserveA,
		ReserveB:  p.ReserveB,
	}
	if dir == AToB {
		q.NewReserveA, q.NewReserveB = newIn, newOut
	} else {
		q.NewReserveA, q.NewReserveB = newOut, newIn
	}

	if err := VerifyInvariant(q.ReserveA, q.ReserveB, q.NewReserveA, q.NewReserveB); err != nil {
		return SwapQuote{}, err
	}
	return q, nil
}
