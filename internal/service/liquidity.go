package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/ledger"
	"github.com/ritikbhatt20/Vortex/internal/service/dto"
	"github.com/ritikbhatt20/Vortex/internal/service/validate"
)

// AddLiquidity deposits both assets and mints LP shares to the provider. The
// first deposit also mints amm.MinimumLiquidity to amm.LockAddress.
func (s *PoolService) AddLiquidity(ctx context.Context, req dto.AddLiquidityRequest) (*dto.AddLiquidityResult, error) {
	if err := validate.AddLiquidityRequestValidate(req); err != nil {
		return nil, err
	}
	if err := s.checkActor("provider", req.Provider); err != nil {
		return nil, err
	}
	e, err := s.store.get(req.Pool)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.pool
	if p.TotalLPSupply, err = s.shares.TotalSupply(ctx, p.ID); err != nil {
		return nil, errors.Wrap(err, "s.shares.TotalSupply")
	}

	q, err := amm.QuoteDeposit(&p, req.AmountA, req.AmountB)
	if err != nil {
		return nil, err
	}
	if q.Minted < req.MinLiquidity {
		return nil, errors.Wrapf(apperrors.ErrSlippageExceeded,
			"minted %d below minimum %d", q.Minted, req.MinLiquidity)
	}

	vault := amm.VaultAddress(p.ID)
	transfers := []ledger.Transfer{
		{Asset: p.AssetA, From: req.Provider, To: vault, Amount: q.AmountA},
		{Asset: p.AssetB, From: req.Provider, To: vault, Amount: q.AmountB},
	}
	if err := s.settle(ctx, p, q.NewReserveA, q.NewReserveB, transfers...); err != nil {
		return nil, err
	}

	if err := s.mintShares(ctx, p.ID, req.Provider, q); err != nil {
		if rbErr := s.custody.Settle(context.WithoutCancel(ctx), reverse(transfers)...); rbErr != nil {
			err = multierr.Append(err, errors.Wrap(rbErr, "refund deposit"))
		}
		return nil, err
	}

	ts, marker := s.clock.Now()
	if err := p.ApplyDeposit(q, marker); err != nil {
		return nil, err
	}
	e.pool = p

	s.log.Info("liquidity added",
		zap.String("pool", p.ID.Hex()),
		zap.String("provider", req.Provider.Hex()),
		zap.Uint64("amount_a", q.AmountA),
		zap.Uint64("amount_b", q.AmountB),
		zap.Uint64("minted", q.Minted),
		zap.Uint64("locked", q.Locked),
	)
	s.emit(ctx, amm.NewLiquidityAddedEvent(p.ID, req.Provider, q, ts, marker))

	return &dto.AddLiquidityResult{Pool: p, Deposit: q}, nil
}

func (s *PoolService) mintShares(ctx context.Context, pool amm.PoolID, provider common.Address, q amm.DepositQuote) error {
	if q.Locked > 0 {
		if err := s.shares.Mint(ctx, pool, amm.LockAddress, q.Locked); err != nil {
			return errors.Wrap(err, "mint locked liquidity")
		}
	}
	if err := s.shares.Mint(ctx, pool, provider, q.Minted); err != nil {
		err = errors.Wrap(err, "mint provider liquidity")
		if q.Locked > 0 {
			if rbErr := s.shares.Burn(ctx, pool, amm.LockAddress, q.Locked); rbErr != nil {
				err = multierr.Append(err, errors.Wrap(rbErr, "burn locked liquidity"))
			}
		}
		return err
	}
	return nil
}

// RemoveLiquidity burns the provider's LP shares and pays out the
// proportional share of both reserves.
func (s *PoolService) RemoveLiquidity(ctx context.Context, req dto.RemoveLiquidityRequest) (*dto.RemoveLiquidityResult, error) {
	if err := validate.RemoveLiquidityRequestValidate(req); err != nil {
		return nil, err
	}
	if err := s.checkActor("provider", req.Provider); err != nil {
		return nil, err
	}
	e, err := s.store.get(req.Pool)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.pool
	if p.TotalLPSupply, err = s.shares.TotalSupply(ctx, p.ID); err != nil {
		return nil, errors.Wrap(err, "s.shares.TotalSupply")
	}

	balance, err := s.shares.BalanceOf(ctx, p.ID, req.Provider)
	if err != nil {
		return nil, errors.Wrap(err, "s.shares.BalanceOf")
	}
	if balance < req.Liquidity {
		return nil, errors.Wrapf(apperrors.ErrInsufficientBalance,
			"holds %d shares, burning %d", balance, req.Liquidity)
	}

	q, err := amm.QuoteWithdraw(&p, req.Liquidity)
	if err != nil {
		return nil, err
	}
	if q.AmountA < req.MinAmountA || q.AmountB < req.MinAmountB {
		return nil, errors.Wrapf(apperrors.ErrSlippageExceeded,
			"payout %d/%d below minimum %d/%d", q.AmountA, q.AmountB, req.MinAmountA, req.MinAmountB)
	}

	if err := s.shares.Burn(ctx, p.ID, req.Provider, req.Liquidity); err != nil {
		return nil, errors.Wrap(err, "s.shares.Burn")
	}

	vault := amm.VaultAddress(p.ID)
	transfers := []ledger.Transfer{
		{Asset: p.AssetA, From: vault, To: req.Provider, Amount: q.AmountA},
		{Asset: p.AssetB, From: vault, To: req.Provider, Amount: q.AmountB},
	}
	if err := s.settle(ctx, p, q.NewReserveA, q.NewReserveB, transfers...); err != nil {
		if rbErr := s.shares.Mint(context.WithoutCancel(ctx), p.ID, req.Provider, req.Liquidity); rbErr != nil {
			err = multierr.Append(err, errors.Wrap(rbErr, "restore burned liquidity"))
		}
		return nil, err
	}

	ts, marker := s.clock.Now()
	if err := p.ApplyWithdraw(q, marker); err != nil {
		return nil, err
	}
	e.pool = p

	s.log.Info("liquidity removed",
		zap.String("pool", p.ID.Hex()),
		zap.String("provider", req.Provider.Hex()),
		zap.Uint64("liquidity", q.Liquidity),
		zap.Uint64("amount_a", q.AmountA),
		zap.Uint64("amount_b", q.AmountB),
	)
	s.emit(ctx, amm.NewLiquidityRemovedEvent(p.ID, req.Provider, q, ts, marker))

	return &dto.RemoveLiquidityResult{Pool: p, Withdrawal: q}, nil
}
