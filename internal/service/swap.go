package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/ledger"
	"github.com/ritikbhatt20/Vortex/internal/service/dto"
	"github.com/ritikbhatt20/Vortex/internal/service/validate"
)

// direction resolves the side of p that assetIn is sold from.
func direction(p *amm.Pool, assetIn common.Address) (amm.Direction, error) {
	switch assetIn {
	case p.AssetA:
		return amm.AToB, nil
	case p.AssetB:
		return amm.BToA, nil
	default:
		return 0, errors.Wrapf(apperrors.ErrInvalidArgument,
			"asset %s is not traded by pool %s", assetIn.Hex(), p.ID.Hex())
	}
}

// QuoteSwap prices a swap against the current pool state without executing it.
func (s *PoolService) QuoteSwap(_ context.Context, req dto.QuoteRequest) (*amm.SwapQuote, error) {
	if err := validate.QuoteRequestValidate(req); err != nil {
		return nil, err
	}
	e, err := s.store.get(req.Pool)
	if err != nil {
		return nil, err
	}

	p := e.snapshot()
	dir, err := direction(&p, req.AssetIn)
	if err != nil {
		return nil, err
	}
	q, err := amm.QuoteSwap(&p, req.AmountIn, dir)
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Swap sells AmountIn of AssetIn to the pool and pays the trader the other asset.
func (s *PoolService) Swap(ctx context.Context, req dto.SwapRequest) (*dto.SwapResult, error) {
	if err := validate.SwapRequestValidate(req); err != nil {
		return nil, err
	}
	if err := s.checkActor("trader", req.Trader); err != nil {
		return nil, err
	}
	e, err := s.store.get(req.Pool)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.pool
	dir, err := direction(&p, req.AssetIn)
	if err != nil {
		return nil, err
	}
	q, err := amm.QuoteSwap(&p, req.AmountIn, dir)
	if err != nil {
		return nil, err
	}
	if q.AmountOut < req.MinAmountOut {
		return nil, errors.Wrapf(apperrors.ErrSlippageExceeded,
			"amount out %d below minimum %d", q.AmountOut, req.MinAmountOut)
	}

	assetOut := p.AssetB
	if dir == amm.BToA {
		assetOut = p.AssetA
	}
	vault := amm.VaultAddress(p.ID)
	err = s.settle(ctx, p, q.NewReserveA, q.NewReserveB,
		ledger.Transfer{Asset: req.AssetIn, From: req.Trader, To: vault, Amount: q.AmountIn},
		ledger.Transfer{Asset: assetOut, From: vault, To: req.Trader, Amount: q.AmountOut},
	)
	if err != nil {
		return nil, err
	}

	ts, marker := s.clock.Now()
	if err := p.ApplySwap(q, ts, marker); err != nil {
		return nil, err
	}
	e.pool = p

	s.log.Info("swap executed",
		zap.String("pool", p.ID.Hex()),
		zap.String("trader", req.Trader.Hex()),
		zap.Stringer("direction", dir),
		zap.Uint64("amount_in", q.AmountIn),
		zap.Uint64("amount_out", q.AmountOut),
		zap.Uint64("fee", q.FeeAmount),
	)
	s.emit(ctx, amm.NewSwapExecutedEvent(&p, req.Trader, q, ts, marker))

	return &dto.SwapResult{Pool: p, Swap: q}, nil
}
