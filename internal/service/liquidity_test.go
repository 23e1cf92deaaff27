package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/ledger"
	"github.com/ritikbhatt20/Vortex/internal/service/dto"
	"github.com/ritikbhatt20/Vortex/internal/service/mock"
)

func TestAddLiquidity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("first deposit locks minimum liquidity", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)

		aliceShares, err := f.ledger.BalanceOf(ctx, id, alice)
		require.NoError(t, err)
		require.Equal(t, uint64(19_000), aliceShares)

		locked, err := f.ledger.BalanceOf(ctx, id, amm.LockAddress)
		require.NoError(t, err)
		require.Equal(t, amm.MinimumLiquidity, locked)

		require.Equal(t, uint64(990_000), f.ledger.Balance(dai, alice))
		require.Equal(t, uint64(960_000), f.ledger.Balance(usdc, alice))

		p, err := f.svc.Pool(ctx, id)
		require.NoError(t, err)
		require.Equal(t, uint64(10_000), p.ReserveA)
		require.Equal(t, uint64(40_000), p.ReserveB)
		require.Equal(t, uint64(20_000), p.TotalLPSupply)
		f.requireVaultMatchesReserves(t, id)
	})

	t.Run("proportional deposit", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)
		require.NoError(t, f.svc.Fund(ctx, dto.FundRequest{Asset: dai, Holder: bob, Amount: 5_000}))
		require.NoError(t, f.svc.Fund(ctx, dto.FundRequest{Asset: usdc, Holder: bob, Amount: 5_000}))

		f.events.EXPECT().
			Emit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev amm.Event) error {
				require.Equal(t, amm.EventLiquidityAdded, ev.Kind)
				require.Equal(t, bob, ev.Actor)
				require.Equal(t, uint64(1_000), ev.Liquidity)
				return nil
			})

		// Off-ratio: only the limiting side counts.
		res, err := f.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{
			Pool:         id,
			Provider:     bob,
			AmountA:      500,
			AmountB:      4_000,
			MinLiquidity: 1_000,
		})
		require.NoError(t, err)
		require.False(t, res.Deposit.Initial)
		require.Equal(t, uint64(1_000), res.Deposit.Minted)
		require.Equal(t, uint64(21_000), res.Pool.TotalLPSupply)
		f.requireVaultMatchesReserves(t, id)
	})

	t.Run("slippage leaves state untouched", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)

		_, err := f.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{
			Pool:         id,
			Provider:     alice,
			AmountA:      1_000,
			AmountB:      4_000,
			MinLiquidity: 2_001,
		})
		require.ErrorIs(t, err, apperrors.ErrSlippageExceeded)
		require.Equal(t, uint64(990_000), f.ledger.Balance(dai, alice))
		f.requireVaultMatchesReserves(t, id)
	})

	t.Run("insufficient balance", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)

		_, err := f.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{Pool: id, Provider: bob, AmountA: 1_000, AmountB: 4_000})
		require.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
		f.requireVaultMatchesReserves(t, id)
	})

	t.Run("first deposit too small", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		f.events.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)
		p, err := f.svc.CreatePool(ctx, dto.CreatePoolRequest{AssetA: dai, AssetB: usdc})
		require.NoError(t, err)
		require.NoError(t, f.svc.Fund(ctx, dto.FundRequest{Asset: dai, Holder: alice, Amount: 1_000}))
		require.NoError(t, f.svc.Fund(ctx, dto.FundRequest{Asset: usdc, Holder: alice, Amount: 1_000}))

		// sqrt(1000*1000) == MinimumLiquidity leaves nothing for the provider.
		_, err = f.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{Pool: p.ID, Provider: alice, AmountA: 1_000, AmountB: 1_000})
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidityMinted)

		_, err = f.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{Pool: p.ID, Provider: alice, AmountA: 999, AmountB: 1_000})
		require.ErrorIs(t, err, apperrors.ErrInitialLiquidityTooSmall)
		require.Equal(t, uint64(1_000), f.ledger.Balance(dai, alice))
	})

	t.Run("unknown pool", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		_, err := f.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{Pool: amm.PoolID{1}, Provider: alice, AmountA: 1, AmountB: 1})
		require.ErrorIs(t, err, apperrors.ErrPoolNotFound)
	})
}

func TestAddLiquidity_RefundsWhenMintFails(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	ctrl := gomock.NewController(t)
	shares := mock.NewMockShareLedger(ctrl)
	events := mock.NewMockEventSink(ctrl)
	custody := ledger.NewMemory()

	svc := NewPoolService(custody, shares, &SystemClock{}, events, zaptest.NewLogger(t), WithFunder(custody))

	events.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)
	p, err := svc.CreatePool(ctx, dto.CreatePoolRequest{AssetA: dai, AssetB: usdc})
	require.NoError(t, err)
	require.NoError(t, custody.Credit(dai, alice, 10_000))
	require.NoError(t, custody.Credit(usdc, alice, 40_000))

	mintErr := errors.New("share ledger unavailable")
	gomock.InOrder(
		shares.EXPECT().TotalSupply(gomock.Any(), p.ID).Return(uint64(0), nil),
		shares.EXPECT().Mint(gomock.Any(), p.ID, amm.LockAddress, amm.MinimumLiquidity).Return(nil),
		shares.EXPECT().Mint(gomock.Any(), p.ID, alice, uint64(19_000)).Return(mintErr),
		shares.EXPECT().Burn(gomock.Any(), p.ID, amm.LockAddress, amm.MinimumLiquidity).Return(nil),
	)

	_, err = svc.AddLiquidity(ctx, dto.AddLiquidityRequest{Pool: p.ID, Provider: alice, AmountA: 10_000, AmountB: 40_000})
	require.ErrorIs(t, err, mintErr)

	require.Equal(t, uint64(10_000), custody.Balance(dai, alice))
	require.Equal(t, uint64(40_000), custody.Balance(usdc, alice))
	require.Zero(t, custody.Balance(dai, amm.VaultAddress(p.ID)))

	after, err := svc.Pool(ctx, p.ID)
	require.NoError(t, err)
	require.False(t, after.IsInitialized())
}

func TestRemoveLiquidity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("proportional payout", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)

		f.events.EXPECT().
			Emit(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ev amm.Event) error {
				require.Equal(t, amm.EventLiquidityRemoved, ev.Kind)
				require.Equal(t, uint64(2_000), ev.Liquidity)
				return nil
			})

		res, err := f.svc.RemoveLiquidity(ctx, dto.RemoveLiquidityRequest{
			Pool:       id,
			Provider:   alice,
			Liquidity:  2_000,
			MinAmountA: 1_000,
			MinAmountB: 4_000,
		})
		require.NoError(t, err)
		require.Equal(t, uint64(1_000), res.Withdrawal.AmountA)
		require.Equal(t, uint64(4_000), res.Withdrawal.AmountB)
		require.Equal(t, uint64(18_000), res.Pool.TotalLPSupply)
		require.Equal(t, uint64(991_000), f.ledger.Balance(dai, alice))
		require.Equal(t, uint64(964_000), f.ledger.Balance(usdc, alice))
		f.requireVaultMatchesReserves(t, id)
	})

	t.Run("full exit leaves locked liquidity", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)
		f.events.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.RemoveLiquidity(ctx, dto.RemoveLiquidityRequest{Pool: id, Provider: alice, Liquidity: 19_000})
		require.NoError(t, err)
		require.Equal(t, uint64(1_000), res.Pool.TotalLPSupply)
		require.Equal(t, uint64(500), res.Pool.ReserveA)
		require.Equal(t, uint64(2_000), res.Pool.ReserveB)
		require.True(t, res.Pool.IsInitialized())
		f.requireVaultMatchesReserves(t, id)
	})

	t.Run("more than held", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)

		_, err := f.svc.RemoveLiquidity(ctx, dto.RemoveLiquidityRequest{Pool: id, Provider: alice, Liquidity: 19_001})
		require.ErrorIs(t, err, apperrors.ErrInsufficientBalance)

		_, err = f.svc.RemoveLiquidity(ctx, dto.RemoveLiquidityRequest{Pool: id, Provider: bob, Liquidity: 1})
		require.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	})

	t.Run("slippage", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)

		_, err := f.svc.RemoveLiquidity(ctx, dto.RemoveLiquidityRequest{
			Pool:       id,
			Provider:   alice,
			Liquidity:  2_000,
			MinAmountB: 4_001,
		})
		require.ErrorIs(t, err, apperrors.ErrSlippageExceeded)

		shares, err := f.ledger.BalanceOf(ctx, id, alice)
		require.NoError(t, err)
		require.Equal(t, uint64(19_000), shares)
		f.requireVaultMatchesReserves(t, id)
	})

	t.Run("zero shares", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)

		_, err := f.svc.RemoveLiquidity(ctx, dto.RemoveLiquidityRequest{Pool: id, Provider: alice})
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidityBurned)
	})
}

func TestLiquidity_RestrictedAccounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("locked liquidity cannot be withdrawn", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)

		_, err := f.svc.RemoveLiquidity(ctx, dto.RemoveLiquidityRequest{Pool: id, Provider: amm.LockAddress, Liquidity: amm.MinimumLiquidity})
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)

		locked, err := f.ledger.BalanceOf(ctx, id, amm.LockAddress)
		require.NoError(t, err)
		require.Equal(t, amm.MinimumLiquidity, locked)
		f.requireVaultMatchesReserves(t, id)
	})

	t.Run("lock account cannot deposit", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)

		_, err := f.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{Pool: id, Provider: amm.LockAddress, AmountA: 500, AmountB: 2_000})
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("pool vault cannot provide", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)
		vault := amm.VaultAddress(id)

		_, err := f.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{Pool: id, Provider: vault, AmountA: 500, AmountB: 2_000})
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)

		_, err = f.svc.RemoveLiquidity(ctx, dto.RemoveLiquidityRequest{Pool: id, Provider: vault, Liquidity: 1})
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		f.requireVaultMatchesReserves(t, id)
	})

	t.Run("vault of another pool cannot provide", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)

		f.events.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)
		other, err := f.svc.CreatePool(ctx, dto.CreatePoolRequest{AssetA: dai, AssetB: weth})
		require.NoError(t, err)

		_, err = f.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{Pool: id, Provider: amm.VaultAddress(other.ID), AmountA: 500, AmountB: 2_000})
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("vault drift blocks withdrawal and restores shares", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t)
		id := f.seededPool(t)
		require.NoError(t, f.ledger.Credit(usdc, amm.VaultAddress(id), 7))

		_, err := f.svc.RemoveLiquidity(ctx, dto.RemoveLiquidityRequest{Pool: id, Provider: alice, Liquidity: 2_000})
		require.ErrorIs(t, err, apperrors.ErrInvariantViolation)

		shares, err := f.ledger.BalanceOf(ctx, id, alice)
		require.NoError(t, err)
		require.Equal(t, uint64(19_000), shares)
		require.Equal(t, uint64(990_000), f.ledger.Balance(dai, alice))
		require.Equal(t, uint64(40_007), f.ledger.Balance(usdc, amm.VaultAddress(id)))

		p, err := f.svc.Pool(ctx, id)
		require.NoError(t, err)
		require.Equal(t, uint64(40_000), p.ReserveB)
	})
}
