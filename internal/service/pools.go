package service

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/service/dto"
	"github.com/ritikbhatt20/Vortex/internal/service/validate"
)

// CreatePool registers an empty pool for the asset pair.
func (s *PoolService) CreatePool(ctx context.Context, req dto.CreatePoolRequest) (*amm.Pool, error) {
	if err := validate.CreatePoolRequestValidate(req); err != nil {
		return nil, err
	}

	fee := req.Fee
	if fee == (amm.FeeTier{}) {
		fee = s.defaultFee
	}

	ts, marker := s.clock.Now()
	p, err := amm.NewPool(req.AssetA, req.AssetB, fee, ts, marker)
	if err != nil {
		return nil, errors.Wrap(err, "amm.NewPool")
	}
	if _, err := s.store.get(p.ID); err == nil {
		return nil, errors.Wrapf(apperrors.ErrPoolAlreadyExists, "pool %s", p.ID.Hex())
	}
	vault := amm.VaultAddress(p.ID)
	if s.custody.Balance(p.AssetA, vault) != 0 || s.custody.Balance(p.AssetB, vault) != 0 {
		return nil, errors.Wrapf(apperrors.ErrInvalidArgument, "vault %s already holds pool assets", vault.Hex())
	}
	if err := s.store.insert(*p); err != nil {
		return nil, err
	}

	s.log.Info("pool created",
		zap.String("pool", p.ID.Hex()),
		zap.String("asset_a", p.AssetA.Hex()),
		zap.String("asset_b", p.AssetB.Hex()),
		zap.Uint64("fee_bps", p.FeeInBasisPoints()),
	)
	s.emit(ctx, amm.NewPoolCreatedEvent(p, req.Creator))
	return p, nil
}

// Pool returns a snapshot of one pool.
func (s *PoolService) Pool(_ context.Context, id amm.PoolID) (*amm.Pool, error) {
	e, err := s.store.get(id)
	if err != nil {
		return nil, err
	}
	p := e.snapshot()
	return &p, nil
}

// Pools returns snapshots of every registered pool.
func (s *PoolService) Pools(_ context.Context) ([]amm.Pool, error) {
	return s.store.list(), nil
}

// SetPaused halts or resumes deposits and swaps on a pool. Withdrawals stay open.
func (s *PoolService) SetPaused(_ context.Context, id amm.PoolID, paused bool) (*amm.Pool, error) {
	e, err := s.store.get(id)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.pool.Paused != paused {
		_, marker := s.clock.Now()
		e.pool.Paused = paused
		e.pool.LastUpdateMarker = marker
		s.log.Info("pool pause toggled", zap.String("pool", id.Hex()), zap.Bool("paused", paused))
	}
	p := e.pool
	return &p, nil
}

// Fund credits test balances. It fails unless a Funder is configured.
func (s *PoolService) Fund(_ context.Context, req dto.FundRequest) error {
	if s.funder == nil {
		return errors.Wrap(apperrors.ErrInvalidArgument, "faucet is disabled")
	}
	if err := validate.FundRequestValidate(req); err != nil {
		return err
	}
	if err := s.checkActor("holder", req.Holder); err != nil {
		return err
	}
	if err := s.funder.Credit(req.Asset, req.Holder, req.Amount); err != nil {
		return errors.Wrap(err, "s.funder.Credit")
	}
	return nil
}
