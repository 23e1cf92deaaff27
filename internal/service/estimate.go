package service

import (
	"context"
	"math/big"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/service/dto"
	"github.com/ritikbhatt20/Vortex/internal/service/validate"
)

// Estimate quotes a swap against a live Uniswap V2 pair.
//
// It reads the pair tokens and reserves through the chain client and prices the
// trade with the same constant-product engine local pools use, at the
// standard 0.3% fee.
func (s *PoolService) Estimate(ctx context.Context, req dto.EstimateRequest) (uint64, error) {
	if s.chain == nil {
		return 0, errors.Wrap(apperrors.ErrInvalidArgument, "on-chain estimates are disabled")
	}
	if err := validate.EstimateRequestValidate(req); err != nil {
		return 0, err
	}

	token0, token1, err := s.chain.GetPairTokens(ctx, req.Pool)
	if err != nil {
		return 0, pairReadError(err, "s.chain.GetPairTokens")
	}

	var flip bool
	switch {
	case req.Src == token0 && req.Dst == token1:
	case req.Src == token1 && req.Dst == token0:
		flip = true
	default:
		return 0, errors.Wrap(apperrors.ErrInvalidArgument, "src and dst must be the pair tokens")
	}

	reserves, err := s.chain.GetPairReserves(ctx, req.Pool)
	if err != nil {
		return 0, pairReadError(err, "s.chain.GetPairReserves")
	}
	r0, r1 := reserves.Reserve0, reserves.Reserve1
	if flip {
		r0, r1 = r1, r0
	}

	reserveIn, err := toUint64(r0, "reserve in")
	if err != nil {
		return 0, err
	}
	reserveOut, err := toUint64(r1, "reserve out")
	if err != nil {
		return 0, err
	}

	fee := amm.StandardFee
	out, _, err := amm.ComputeSwap(req.SrcAmount, reserveIn, reserveOut, fee.Numerator, fee.Denominator)
	if err != nil {
		return 0, err
	}
	return out, nil
}

// pairReadError classifies a chain client failure as ErrPairRead and keeps the
// cause matchable with errors.Is.
func pairReadError(err error, op string) error {
	return multierr.Append(apperrors.ErrPairRead, errors.Wrap(err, op))
}

func toUint64(v *big.Int, what string) (uint64, error) {
	if v == nil || v.Sign() < 0 {
		return 0, errors.Wrapf(apperrors.ErrPairRead, "%s is missing", what)
	}
	if !v.IsUint64() {
		return 0, errors.Wrapf(apperrors.ErrMathOverflow, "%s %s does not fit in 64 bits", what, v)
	}
	return v.Uint64(), nil
}
