package validate

import (
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/service/dto"
)

// EstimateRequestValidate validates an on-chain estimate request.
func EstimateRequestValidate(req dto.EstimateRequest) error {
	if req.Pool == zeroAddress || req.Src == zeroAddress || req.Dst == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "address cannot be empty")
	}
	if req.Src == req.Dst {
		return errors.Wrap(apperrors.ErrInvalidArgument, "src and dst must differ")
	}
	if req.SrcAmount < amm.MinSwapAmount {
		return errors.Wrapf(apperrors.ErrAmountTooSmall, "src amount %d below minimum %d", req.SrcAmount, amm.MinSwapAmount)
	}
	return nil
}
