package amm

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ritikbhatt20/Vortex/internal/apperrors"
)

func TestComputeInitialLiquidity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		amountA uint64
		amountB uint64
		want    uint64
		wantErr error
	}{
		{name: "geometric mean", amountA: 10_000, amountB: 40_000, want: 20_000},
		{name: "minimum amounts", amountA: 1_000, amountB: 1_000, want: 1_000},
		{name: "non square product", amountA: 1_000, amountB: 1_500, want: 1_224},
		{name: "amount a below minimum", amountA: 999, amountB: 1_000_000, wantErr: apperrors.ErrInitialLiquidityTooSmall},
		{name: "amount b below minimum", amountA: 1_000_000, amountB: 999, wantErr: apperrors.ErrInitialLiquidityTooSmall},
		{name: "product exceeds 64 bits", amountA: 1 << 40, amountB: 1 << 40, wantErr: apperrors.ErrMathOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ComputeInitialLiquidity(tt.amountA, tt.amountB)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSplitInitialLiquidity(t *testing.T) {
	t.Parallel()

	provider, locked, err := SplitInitialLiquidity(20_000)
	require.NoError(t, err)
	require.Equal(t, uint64(19_000), provider)
	require.Equal(t, MinimumLiquidity, locked)

	_, _, err = SplitInitialLiquidity(MinimumLiquidity)
	require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidityMinted)

	_, _, err = SplitInitialLiquidity(MinimumLiquidity - 1)
	require.ErrorIs(t, err, apperrors.ErrInitialLiquidityTooSmall)
}

func TestComputeLiquidityToMint(t *testing.T) {
	t.Parallel()

	t.Run("takes the limiting side", func(t *testing.T) {
		t.Parallel()

		// candidates are 2_000 (a) and 4_000 (b): not the average, not the max
		got, err := ComputeLiquidityToMint(1_000, 8_000, 10_000, 40_000, 20_000)
		require.NoError(t, err)
		require.Equal(t, uint64(2_000), got)

		got, err = ComputeLiquidityToMint(3_000, 4_000, 10_000, 40_000, 20_000)
		require.NoError(t, err)
		require.Equal(t, uint64(2_000), got)
	})

	t.Run("balanced deposit", func(t *testing.T) {
		t.Parallel()

		got, err := ComputeLiquidityToMint(5_000, 20_000, 10_000, 40_000, 20_000)
		require.NoError(t, err)
		require.Equal(t, uint64(10_000), got)
	})

	t.Run("not initialized", func(t *testing.T) {
		t.Parallel()

		_, err := ComputeLiquidityToMint(1_000, 1_000, 0, 40_000, 20_000)
		require.ErrorIs(t, err, apperrors.ErrPoolNotInitialized)
		_, err = ComputeLiquidityToMint(1_000, 1_000, 10_000, 0, 20_000)
		require.ErrorIs(t, err, apperrors.ErrPoolNotInitialized)
		_, err = ComputeLiquidityToMint(1_000, 1_000, 10_000, 40_000, 0)
		require.ErrorIs(t, err, apperrors.ErrPoolNotInitialized)
	})

	t.Run("rounds to zero", func(t *testing.T) {
		t.Parallel()

		_, err := ComputeLiquidityToMint(1, 1_000_000, 1_000_000, 1_000_000, 1_000)
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidityMinted)
	})
}

func TestComputeAmountsForLiquidity(t *testing.T) {
	t.Parallel()

	t.Run("proportional", func(t *testing.T) {
		t.Parallel()

		a, b, err := ComputeAmountsForLiquidity(2_000, 10_000, 40_000, 20_000)
		require.NoError(t, err)
		require.Equal(t, uint64(1_000), a)
		require.Equal(t, uint64(4_000), b)
	})

	t.Run("whole supply", func(t *testing.T) {
		t.Parallel()

		a, b, err := ComputeAmountsForLiquidity(20_000, 10_000, 40_000, 20_000)
		require.NoError(t, err)
		require.Equal(t, uint64(10_000), a)
		require.Equal(t, uint64(40_000), b)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		_, _, err := ComputeAmountsForLiquidity(0, 10_000, 40_000, 20_000)
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidityBurned)

		_, _, err = ComputeAmountsForLiquidity(20_001, 10_000, 40_000, 20_000)
		require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidityBurned)

		_, _, err = ComputeAmountsForLiquidity(1, 10_000, 40_000, 0)
		require.ErrorIs(t, err, apperrors.ErrPoolNotInitialized)

		_, _, err = ComputeAmountsForLiquidity(1, 10, 1_000_000, 1_000_000)
		require.ErrorIs(t, err, apperrors.ErrInsufficientOutputAmount)
	})
}

func TestDepositWithdrawRoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 2_000; i++ {
		reserveA := rng.Uint64N(1<<32) + MinInitialLiquidity
		reserveB := rng.Uint64N(1<<32) + MinInitialLiquidity
		supply := rng.Uint64N(1<<32) + MinimumLiquidity
		amountA := rng.Uint64N(1<<30) + 1
		amountB := rng.Uint64N(1<<30) + 1

		minted, err := ComputeLiquidityToMint(amountA, amountB, reserveA, reserveB, supply)
		if err != nil {
			require.ErrorIs(t, err, apperrors.ErrInsufficientLiquidityMinted)
			continue
		}

		outA, outB, err := ComputeAmountsForLiquidity(minted, reserveA+amountA, reserveB+amountB, supply+minted)
		if err != nil {
			require.ErrorIs(t, err, apperrors.ErrInsufficientOutputAmount)
			continue
		}
		require.LessOrEqual(t, outA, amountA)
		require.LessOrEqual(t, outB, amountB)
	}
}

func TestQuoteDeposit(t *testing.T) {
	t.Parallel()

	t.Run("first deposit locks minimum liquidity", func(t *testing.T) {
		t.Parallel()

		p := newTestPool(t)
		q, err := QuoteDeposit(p, 10_000, 40_000)
		require.NoError(t, err)
		require.True(t, q.Initial)
		require.Equal(t, uint64(20_000), q.Liquidity)
		require.Equal(t, uint64(19_000), q.Minted)
		require.Equal(t, MinimumLiquidity, q.Locked)
		require.Equal(t, uint64(10_000), q.NewReserveA)
		require.Equal(t, uint64(40_000), q.NewReserveB)
		require.Equal(t, uint64(20_000), q.NewTotalSupply)

		require.NoError(t, p.ApplyDeposit(q, 7))
		require.True(t, p.IsInitialized())
		require.Equal(t, uint64(20_000), p.TotalLPSupply)
		require.Equal(t, uint64(7), p.LastUpdateMarker)
	})

	t.Run("subsequent deposit", func(t *testing.T) {
		t.Parallel()

		p := newTestPool(t)
		p.UpdateReserves(10_000, 40_000)
		p.TotalLPSupply = 20_000

		q, err := QuoteDeposit(p, 1_000, 8_000)
		require.NoError(t, err)
		require.False(t, q.Initial)
		require.Equal(t, uint64(2_000), q.Minted)
		require.Zero(t, q.Locked)
		require.Equal(t, uint64(22_000), q.NewTotalSupply)
	})

	t.Run("paused", func(t *testing.T) {
		t.Parallel()

		p := newTestPool(t)
		p.Paused = true
		_, err := QuoteDeposit(p, 10_000, 40_000)
		require.ErrorIs(t, err, apperrors.ErrPoolPaused)
	})

	t.Run("zero amount", func(t *testing.T) {
		t.Parallel()

		_, err := QuoteDeposit(newTestPool(t), 0, 40_000)
		require.ErrorIs(t, err, apperrors.ErrAmountTooSmall)
	})

	t.Run("stale quote", func(t *testing.T) {
		t.Parallel()

		p := newTestPool(t)
		q, err := QuoteDeposit(p, 10_000, 40_000)
		require.NoError(t, err)
		p.UpdateReserves(1, 1)
		require.ErrorIs(t, p.ApplyDeposit(q, 1), apperrors.ErrInvalidArgument)
		require.Equal(t, uint64(1), p.ReserveA)
	})
}

func TestQuoteWithdraw(t *testing.T) {
	t.Parallel()

	t.Run("allowed while paused", func(t *testing.T) {
		t.Parallel()

		p := newTestPool(t)
		p.UpdateReserves(10_000, 40_000)
		p.TotalLPSupply = 20_000
		p.Paused = true

		q, err := QuoteWithdraw(p, 2_000)
		require.NoError(t, err)
		require.Equal(t, uint64(1_000), q.AmountA)
		require.Equal(t, uint64(4_000), q.AmountB)
		require.Equal(t, uint64(9_000), q.NewReserveA)
		require.Equal(t, uint64(36_000), q.NewReserveB)
		require.Equal(t, uint64(18_000), q.NewTotalSupply)

		require.NoError(t, p.ApplyWithdraw(q, 9))
		require.Equal(t, uint64(9_000), p.ReserveA)
		require.Equal(t, uint64(18_000), p.TotalLPSupply)
	})

	t.Run("not initialized", func(t *testing.T) {
		t.Parallel()

		_, err := QuoteWithdraw(newTestPool(t), 1)
		require.ErrorIs(t, err, apperrors.ErrPoolNotInitialized)
	})

	t.Run("stale quote", func(t *testing.T) {
		t.Parallel()

		p := newTestPool(t)
		p.UpdateReserves(10_000, 40_000)
		p.TotalLPSupply = 20_000

		q, err := QuoteWithdraw(p, 2_000)
		require.NoError(t, err)
		p.TotalLPSupply = 30_000
		require.ErrorIs(t, p.ApplyWithdraw(q, 1), apperrors.ErrInvalidArgument)
	})
}
