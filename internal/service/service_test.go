package service

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/ledger"
	"github.com/ritikbhatt20/Vortex/internal/service/dto"
	"github.com/ritikbhatt20/Vortex/internal/service/mock"
)

var (
	dai   = common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	usdc  = common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	weth  = common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2")
	alice = common.HexToAddress("0xa11ce")
	bob   = common.HexToAddress("0xb0b")
)

type fixture struct {
	svc    *PoolService
	ledger *ledger.Memory
	events *mock.MockEventSink
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	events := mock.NewMockEventSink(ctrl)
	led := ledger.NewMemory()

	opts = append([]Option{WithFunder(led)}, opts...)
	svc := NewPoolService(led, led, &SystemClock{}, events, zaptest.NewLogger(t), opts...)

	return &fixture{svc: svc, ledger: led, events: events}
}

// seededPool creates a dai/usdc pool with alice's 10_000/40_000 first deposit.
func (f *fixture) seededPool(t *testing.T) amm.PoolID {
	t.Helper()

	ctx := context.Background()
	f.events.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	p, err := f.svc.CreatePool(ctx, dto.CreatePoolRequest{Creator: alice, AssetA: dai, AssetB: usdc})
	require.NoError(t, err)

	require.NoError(t, f.svc.Fund(ctx, dto.FundRequest{Asset: dai, Holder: alice, Amount: 1_000_000}))
	require.NoError(t, f.svc.Fund(ctx, dto.FundRequest{Asset: usdc, Holder: alice, Amount: 1_000_000}))

	_, err = f.svc.AddLiquidity(ctx, dto.AddLiquidityRequest{
		Pool:     p.ID,
		Provider: alice,
		AmountA:  10_000,
		AmountB:  40_000,
	})
	require.NoError(t, err)
	return p.ID
}

// requireVaultMatchesReserves checks that custody holds exactly the pool reserves.
func (f *fixture) requireVaultMatchesReserves(t *testing.T, id amm.PoolID) {
	t.Helper()

	p, err := f.svc.Pool(context.Background(), id)
	require.NoError(t, err)
	vault := amm.VaultAddress(id)
	require.Equal(t, p.ReserveA, f.ledger.Balance(p.AssetA, vault))
	require.Equal(t, p.ReserveB, f.ledger.Balance(p.AssetB, vault))

	supply, err := f.ledger.TotalSupply(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, p.TotalLPSupply, supply)
}
