package validate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/service/dto"
)

var zeroAddress = common.Address{}

// actor rejects accounts that may not trade or provide liquidity in pool: the
// empty address, the lock account and the pool's own vault.
func actor(field string, addr common.Address, pool amm.PoolID) error {
	switch addr {
	case zeroAddress:
		return errors.Wrapf(apperrors.ErrInvalidArgument, "%s address cannot be empty", field)
	case amm.LockAddress:
		return errors.Wrapf(apperrors.ErrInvalidArgument, "%s cannot be the lock account", field)
	case amm.VaultAddress(pool):
		return errors.Wrapf(apperrors.ErrInvalidArgument, "%s cannot be the pool vault", field)
	}
	return nil
}

// CreatePoolRequestValidate validates a pool registration.
func CreatePoolRequestValidate(req dto.CreatePoolRequest) error {
	if req.AssetA == zeroAddress || req.AssetB == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "asset address cannot be empty")
	}
	if req.AssetA == req.AssetB {
		return apperrors.ErrIdenticalAssets
	}
	if req.Fee.Numerator != 0 || req.Fee.Denominator != 0 {
		if !req.Fee.Valid() {
			return errors.Wrapf(apperrors.ErrInvalidFeeParameters, "fee %d/%d", req.Fee.Numerator, req.Fee.Denominator)
		}
	}
	return nil
}

// AddLiquidityRequestValidate validates a deposit.
func AddLiquidityRequestValidate(req dto.AddLiquidityRequest) error {
	if err := actor("provider", req.Provider, req.Pool); err != nil {
		return err
	}
	if req.AmountA == 0 || req.AmountB == 0 {
		return errors.Wrap(apperrors.ErrAmountTooSmall, "deposit amounts must be positive")
	}
	return nil
}

// RemoveLiquidityRequestValidate validates a withdrawal.
func RemoveLiquidityRequestValidate(req dto.RemoveLiquidityRequest) error {
	if err := actor("provider", req.Provider, req.Pool); err != nil {
		return err
	}
	if req.Liquidity == 0 {
		return apperrors.ErrInsufficientLiquidityBurned
	}
	return nil
}

// SwapRequestValidate validates a swap.
func SwapRequestValidate(req dto.SwapRequest) error {
	if err := actor("trader", req.Trader, req.Pool); err != nil {
		return err
	}
	if req.AssetIn == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "asset address cannot be empty")
	}
	if req.AmountIn == 0 {
		return errors.Wrap(apperrors.ErrAmountTooSmall, "amount in must be positive")
	}
	return nil
}

// QuoteRequestValidate validates a swap quote.
func QuoteRequestValidate(req dto.QuoteRequest) error {
	if req.AssetIn == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "asset address cannot be empty")
	}
	if req.AmountIn == 0 {
		return errors.Wrap(apperrors.ErrAmountTooSmall, "amount in must be positive")
	}
	return nil
}

// FundRequestValidate validates a faucet credit.
func FundRequestValidate(req dto.FundRequest) error {
	if req.Asset == zeroAddress || req.Holder == zeroAddress {
		return errors.Wrap(apperrors.ErrInvalidArgument, "address cannot be empty")
	}
	if req.Amount == 0 {
		return errors.Wrap(apperrors.ErrInvalidArgument, "amount must be positive")
	}
	return nil
}
