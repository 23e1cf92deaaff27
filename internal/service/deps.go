package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/ledger"
)

//go:generate mockgen -source=deps.go -destination=mock/deps.go -package=mock

// Custody moves assets between holders. Settle is all-or-nothing.
type Custody interface {
	Settle(ctx context.Context, transfers ...ledger.Transfer) error
	Balance(asset, holder common.Address) uint64
}

// ShareLedger tracks LP shares per pool.
type ShareLedger interface {
	TotalSupply(ctx context.Context, pool amm.PoolID) (uint64, error)
	BalanceOf(ctx context.Context, pool amm.PoolID, holder common.Address) (uint64, error)
	Mint(ctx context.Context, pool amm.PoolID, holder common.Address, amount uint64) error
	Burn(ctx context.Context, pool amm.PoolID, holder common.Address, amount uint64) error
}

// Funder credits balances out of thin air. Only wired when the faucet is on.
type Funder interface {
	Credit(asset, holder common.Address, amount uint64) error
}

// Clock supplies the wall-clock second and a monotonically increasing marker
// for every committed state change.
type Clock interface {
	Now() (int64, uint64)
}

// EventSink receives committed pool events.
type EventSink interface {
	Emit(ctx context.Context, ev amm.Event) error
}

// SystemClock reads time.Now and counts markers from one.
type SystemClock struct {
	seq atomic.Uint64
}

// Now implements Clock.
func (c *SystemClock) Now() (int64, uint64) {
	return time.Now().Unix(), c.seq.Add(1)
}
