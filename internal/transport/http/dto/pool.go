package dto

import (
	"github.com/ritikbhatt20/Vortex/internal/amm"
)

// CreatePoolBody is the POST /pools payload. Zero fee fields select the default tier.
type CreatePoolBody struct {
	Creator        string `json:"creator"`
	AssetA         string `json:"asset_a"`
	AssetB         string `json:"asset_b"`
	FeeNumerator   uint64 `json:"fee_numerator"`
	FeeDenominator uint64 `json:"fee_denominator"`
}

// PauseBody is the POST /pools/{id}/pause payload.
type PauseBody struct {
	Paused *bool `json:"paused"`
}

// AddLiquidityBody is the POST /pools/{id}/liquidity payload.
type AddLiquidityBody struct {
	Provider     string `json:"provider"`
	AmountA      uint64 `json:"amount_a"`
	AmountB      uint64 `json:"amount_b"`
	MinLiquidity uint64 `json:"min_liquidity"`
}

// RemoveLiquidityBody is the POST /pools/{id}/withdraw payload.
type RemoveLiquidityBody struct {
	Provider   string `json:"provider"`
	Liquidity  uint64 `json:"liquidity"`
	MinAmountA uint64 `json:"min_amount_a"`
	MinAmountB uint64 `json:"min_amount_b"`
}

// SwapBody is the POST /pools/{id}/swap payload.
type SwapBody struct {
	Trader       string `json:"trader"`
	AssetIn      string `json:"asset_in"`
	AmountIn     uint64 `json:"amount_in"`
	MinAmountOut uint64 `json:"min_amount_out"`
}

// FundBody is the POST /faucet payload.
type FundBody struct {
	Asset  string `json:"asset"`
	Holder string `json:"holder"`
	Amount uint64 `json:"amount"`
}

// PoolView is a pool with its derived quantities. Prices are Q64.64 and the
// invariant is decimal, both as strings since they exceed 64 bits.
type PoolView struct {
	amm.Pool

	Initialized bool   `json:"initialized"`
	FeeBPS      uint64 `json:"fee_bps"`
	PriceAInB   string `json:"price_a_in_b_q64"`
	PriceBInA   string `json:"price_b_in_a_q64"`
	Invariant   string `json:"invariant"`
}

// NewPoolView derives the view of p.
func NewPoolView(p amm.Pool) PoolView {
	return PoolView{
		Pool:        p,
		Initialized: p.IsInitialized(),
		FeeBPS:      p.FeeInBasisPoints(),
		PriceAInB:   p.PriceOfAInB().Dec(),
		PriceBInA:   p.PriceOfBInA().Dec(),
		Invariant:   p.InvariantValue().Dec(),
	}
}

// ErrorBody is returned with every non-2xx JSON response.
type ErrorBody struct {
	Error string `json:"error"`
}

// DepositResponse is returned by POST /pools/{id}/liquidity.
type DepositResponse struct {
	Pool    PoolView         `json:"pool"`
	Deposit amm.DepositQuote `json:"deposit"`
}

// WithdrawResponse is returned by POST /pools/{id}/withdraw.
type WithdrawResponse struct {
	Pool       PoolView          `json:"pool"`
	Withdrawal amm.WithdrawQuote `json:"withdrawal"`
}

// SwapResponse is returned by POST /pools/{id}/swap.
type SwapResponse struct {
	Pool PoolView      `json:"pool"`
	Swap amm.SwapQuote `json:"swap"`
}
