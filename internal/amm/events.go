package amm

import "github.com/ethereum/go-ethereum/common"

// EventKind names a pool event.
type EventKind string

// Pool event kinds.
const (
	EventPoolCreated      EventKind = "pool_created"
	EventLiquidityAdded   EventKind = "liquidity_added"
	EventLiquidityRemoved EventKind = "liquidity_removed"
	EventSwapExecuted     EventKind = "swap_executed"
)

// Event is a flat record of a pool state change, carrying the reserves before
// and after it. Fields that do not apply to a kind are left zero.
type Event struct {
	Kind   EventKind      `json:"kind"`
	Pool   PoolID         `json:"pool"`
	Actor  common.Address `json:"actor"`
	Marker uint64         `json:"marker"`
	Time   int64          `json:"time"`

	AssetIn  common.Address `json:"asset_in"`
	AssetOut common.Address `json:"asset_out"`

	AmountA   uint64 `json:"amount_a,omitempty"`
	AmountB   uint64 `json:"amount_b,omitempty"`
	AmountIn  uint64 `json:"amount_in,omitempty"`
	AmountOut uint64 `json:"amount_out,omitempty"`
	FeeAmount uint64 `json:"fee_amount,omitempty"`
	Liquidity uint64 `json:"liquidity,omitempty"`

	FeeNumerator   uint64 `json:"fee_numerator,omitempty"`
	FeeDenominator uint64 `json:"fee_denominator,omitempty"`

	ReserveABefore uint64 `json:"reserve_a_before"`
	ReserveBBefore uint64 `json:"reserve_b_before"`
	ReserveAAfter  uint64 `json:"reserve_a_after"`
	ReserveBAfter  uint64 `json:"reserve_b_after"`
}

// NewPoolCreatedEvent describes the creation of p.
func NewPoolCreatedEvent(p *Pool, creator common.Address) Event {
	return Event{
		Kind:           EventPoolCreated,
		Pool:           p.ID,
		Actor:          creator,
		Marker:         p.LastUpdateMarker,
		Time:           p.CreatedAt,
		FeeNumerator:   p.FeeNumerator,
		FeeDenominator: p.FeeDenominator,
	}
}

// NewLiquidityAddedEvent describes a committed deposit.
func NewLiquidityAddedEvent(id PoolID, provider common.Address, q DepositQuote, timestamp int64, marker uint64) Event {
	return Event{
		Kind:           EventLiquidityAdded,
		Pool:           id,
		Actor:          provider,
		Marker:         marker,
		Time:           timestamp,
		AmountA:        q.AmountA,
		AmountB:        q.AmountB,
		Liquidity:      q.Minted,
		ReserveABefore: q.ReserveA,
		ReserveBBefore: q.ReserveB,
		ReserveAAfter:  q.NewReserveA,
		ReserveBAfter:  q.NewReserveB,
	}
}

// NewLiquidityRemovedEvent describes a committed withdrawal.
func NewLiquidityRemovedEvent(id PoolID, provider common.Address, q WithdrawQuote, timestamp int64, marker uint64) Event {
	return Event{
		Kind:           EventLiquidityRemoved,
		Pool:           id,
		Actor:          provider,
		Marker:         marker,
		Time:           timestamp,
		AmountA:        q.AmountA,
		AmountB:        q.AmountB,
		Liquidity:      q.Liquidity,
		ReserveABefore: q.ReserveA,
		ReserveBBefore: q.ReserveB,
		ReserveAAfter:  q.NewReserveA,
		ReserveBAfter:  q.NewReserveB,
	}
}

// NewSwapExecutedEvent describes a committed swap on p.
func NewSwapExecutedEvent(p *Pool, trader common.Address, q SwapQuote, timestamp int64, marker uint64) Event {
	assetIn, assetOut := p.AssetA, p.AssetB
	if q.Direction == BToA {
		assetIn, assetOut = p.AssetB, p.AssetA
	}
	return Event{
		Kind:           EventSwapExecuted,
		Pool:           p.ID,
		Actor:          trader,
		Marker:         marker,
		Time:           timestamp,
		AssetIn:        assetIn,
		AssetOut:       assetOut,
		AmountIn:       q.AmountIn,
		AmountOut:      q.AmountOut,
		FeeAmount:      q.FeeAmount,
		ReserveABefore: q.ReserveA,
		ReserveBBefore: q.ReserveB,
		ReserveAAfter:  q.NewReserveA,
		ReserveBAfter:  q.NewReserveB,
	}
}
