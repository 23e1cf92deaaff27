package dto

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/ritikbhatt20/Vortex/internal/amm"
)

// CreatePoolRequest registers a new pool for an asset pair. A zero Fee selects
// the service default.
type CreatePoolRequest struct {
	Creator common.Address
	AssetA  common.Address
	AssetB  common.Address
	Fee     amm.FeeTier
}

// AddLiquidityRequest deposits both assets into a pool.
type AddLiquidityRequest struct {
	Pool         amm.PoolID
	Provider     common.Address
	AmountA      uint64
	AmountB      uint64
	MinLiquidity uint64
}

// AddLiquidityResult is the committed deposit and the pool after it.
type AddLiquidityResult struct {
	Pool    amm.Pool         `json:"pool"`
	Deposit amm.DepositQuote `json:"deposit"`
}

// RemoveLiquidityRequest burns LP shares for the underlying assets.
type RemoveLiquidityRequest struct {
	Pool       amm.PoolID
	Provider   common.Address
	Liquidity  uint64
	MinAmountA uint64
	MinAmountB uint64
}

// RemoveLiquidityResult is the committed withdrawal and the pool after it.
type RemoveLiquidityResult struct {
	Pool       amm.Pool          `json:"pool"`
	Withdrawal amm.WithdrawQuote `json:"withdrawal"`
}

// SwapRequest sells AmountIn of AssetIn for the other asset of the pool.
type SwapRequest struct {
	Pool         amm.PoolID
	Trader       common.Address
	AssetIn      common.Address
	AmountIn     uint64
	MinAmountOut uint64
}

// SwapResult is the committed swap and the pool after it.
type SwapResult struct {
	Pool amm.Pool      `json:"pool"`
	Swap amm.SwapQuote `json:"swap"`
}

// QuoteRequest prices a swap without executing it.
type QuoteRequest struct {
	Pool     amm.PoolID
	AssetIn  common.Address
	AmountIn uint64
}

// FundRequest credits test balances to a holder.
type FundRequest struct {
	Asset  common.Address
	Holder common.Address
	Amount uint64
}
