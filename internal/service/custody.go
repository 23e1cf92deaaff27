package service

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/ledger"
)

// checkActor rejects addr if it is the vault of any registered pool.
func (s *PoolService) checkActor(field string, addr common.Address) error {
	if id, ok := s.store.vaultOf(addr); ok {
		return errors.Wrapf(apperrors.ErrInvalidArgument, "%s %s is the vault of pool %s", field, addr.Hex(), id.Hex())
	}
	return nil
}

// reconcile fails unless the vault of p holds exactly newA/newB.
func (s *PoolService) reconcile(p amm.Pool, newA, newB uint64) error {
	vault := amm.VaultAddress(p.ID)
	balanceA := s.custody.Balance(p.AssetA, vault)
	balanceB := s.custody.Balance(p.AssetB, vault)

	p.UpdateReserves(newA, newB)
	if !p.ValidateReserves(balanceA, balanceB) {
		return errors.Wrapf(apperrors.ErrInvariantViolation,
			"vault holds %d/%d, reserves would be %d/%d", balanceA, balanceB, newA, newB)
	}
	return nil
}

// settle executes transfers and reconciles the vault against the reserves the
// caller is about to commit. A failed reconciliation reverts the transfers.
func (s *PoolService) settle(ctx context.Context, p amm.Pool, newA, newB uint64, transfers ...ledger.Transfer) error {
	if err := s.custody.Settle(ctx, transfers...); err != nil {
		return errors.Wrap(err, "s.custody.Settle")
	}
	if err := s.reconcile(p, newA, newB); err != nil {
		if rbErr := s.custody.Settle(context.WithoutCancel(ctx), reverse(transfers)...); rbErr != nil {
			err = multierr.Append(err, errors.Wrap(rbErr, "revert settlement"))
		}
		return err
	}
	return nil
}

func reverse(transfers []ledger.Transfer) []ledger.Transfer {
	out := make([]ledger.Transfer, len(transfers))
	for i, t := range transfers {
		out[len(transfers)-1-i] = t.Reverse()
	}
	return out
}
