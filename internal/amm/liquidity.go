package amm

import (
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/dexmath"
)

// ComputeInitialLiquidity returns sqrt(amountA*amountB), the share count of
// the first deposit, including the MinimumLiquidity that must be locked.
func ComputeInitialLiquidity(amountA, amountB uint64) (uint64, error) {
	if amountA < MinInitialLiquidity || amountB < MinInitialLiquidity {
		return 0, errors.Wrapf(apperrors.ErrInitialLiquidityTooSmall,
			"amounts %d/%d below minimum %d", amountA, amountB, MinInitialLiquidity)
	}

	product, err := dexmath.CheckedMul(amountA, amountB)
	if err != nil {
		return 0, errors.Wrap(err, "initial product")
	}

	liquidity := dexmath.IntegerSqrt(product)
	if liquidity < MinimumLiquidity {
		return 0, errors.Wrapf(apperrors.ErrInitialLiquidityTooSmall,
			"liquidity %d below minimum %d", liquidity, MinimumLiquidity)
	}
	return liquidity, nil
}

// SplitInitialLiquidity separates the permanently locked MinimumLiquidity from
// the shares credited to the first provider. A first deposit that would credit
// the provider nothing is rejected.
func SplitInitialLiquidity(liquidity uint64) (provider, locked uint64, err error) {
	if liquidity < MinimumLiquidity {
		return 0, 0, errors.Wrapf(apperrors.ErrInitialLiquidityTooSmall,
			"liquidity %d below minimum %d", liquidity, MinimumLiquidity)
	}
	provider = liquidity - MinimumLiquidity
	if provider == 0 {
		return 0, 0, errors.Wrap(apperrors.ErrInsufficientLiquidityMinted, "nothing left after locking minimum liquidity")
	}
	return provider, MinimumLiquidity, nil
}

// ComputeLiquidityToMint returns the shares issued for a deposit into an
// initialized pool. Only the limiting side counts, so depositing off-ratio
// never mints more than the value actually contributed.
func ComputeLiquidityToMint(amountA, amountB, reserveA, reserveB, totalSupply uint64) (uint64, error) {
	if reserveA == 0 || reserveB == 0 || totalSupply == 0 {
		return 0, apperrors.ErrPoolNotInitialized
	}

	liquidityA, err := dexmath.WideMulDiv(amountA, totalSupply, reserveA)
	if err != nil {
		return 0, errors.Wrap(err, "liquidity for asset a")
	}
	liquidityB, err := dexmath.WideMulDiv(amountB, totalSupply, reserveB)
	if err != nil {
		return 0, errors.Wrap(err, "liquidity for asset b")
	}

	liquidity := min(liquidityA, liquidityB)
	if liquidity == 0 {
		return 0, apperrors.ErrInsufficientLiquidityMinted
	}
	return liquidity, nil
}

// ComputeAmountsForLiquidity returns the reserves paid out for burning
// liquidity shares out of totalSupply.
func ComputeAmountsForLiquidity(liquidity, reserveA, reserveB, totalSupply uint64) (uint64, uint64, error) {
	if liquidity == 0 {
		return 0, 0, apperrors.ErrInsufficientLiquidityBurned
	}
	if totalSupply == 0 {
		return 0, 0, apperrors.ErrPoolNotInitialized
	}
	if liquidity > totalSupply {
		return 0, 0, errors.Wrapf(apperrors.ErrInsufficientLiquidityBurned,
			"liquidity %d exceeds total supply %d", liquidity, totalSupply)
	}

	amountA, err := dexmath.WideMulDiv(reserveA, liquidity, totalSupply)
	if err != nil {
		return 0, 0, errors.Wrap(err, "amount a")
	}
	amountB, err := dexmath.WideMulDiv(reserveB, liquidity, totalSupply)
	if err != nil {
		return 0, 0, errors.Wrap(err, "amount b")
	}

	if amountA == 0 || amountB == 0 {
		return 0, 0, apperrors.ErrInsufficientOutputAmount
	}
	return amountA, amountB, nil
}

// DepositQuote is a fully validated deposit against a specific pool state.
type DepositQuote struct {
	AmountA uint64 `json:"amount_a"`
	AmountB uint64 `json:"amount_b"`

	// Liquidity is the total issued; Minted goes to the provider and Locked
	// (first deposit only) to the lock account.
	Liquidity uint64 `json:"liquidity"`
	Minted    uint64 `json:"minted"`
	Locked    uint64 `json:"locked"`
	Initial   bool   `json:"initial"`

	ReserveA       uint64 `json:"reserve_a"`
	ReserveB       uint64 `json:"reserve_b"`
	TotalSupply    uint64 `json:"total_supply"`
	NewReserveA    uint64 `json:"new_reserve_a"`
	NewReserveB    uint64 `json:"new_reserve_b"`
	NewTotalSupply uint64 `json:"new_total_supply"`
}

// QuoteDeposit prices a deposit of (amountA, amountB) into p. p is not modified.
func QuoteDeposit(p *Pool, amountA, amountB uint64) (DepositQuote, error) {
	if p.Paused {
		return DepositQuote{}, apperrors.ErrPoolPaused
	}
	if amountA == 0 || amountB == 0 {
		return DepositQuote{}, apperrors.ErrAmountTooSmall
	}

	q := DepositQuote{
		AmountA:     amountA,
		AmountB:     amountB,
		ReserveA:    p.ReserveA,
		ReserveB:    p.ReserveB,
		TotalSupply: p.TotalLPSupply,
	}

	var err error
	if !p.IsInitialized() {
		q.Initial = true
		if q.Liquidity, err = ComputeInitialLiquidity(amountA, amountB); err != nil {
			return DepositQuote{}, err
		}
		if q.Minted, q.Locked, err = SplitInitialLiquidity(q.Liquidity); err != nil {
			return DepositQuote{}, err
		}
	} else {
		q.Liquidity, err = ComputeLiquidityToMint(amountA, amountB, p.ReserveA, p.ReserveB, p.TotalLPSupply)
		if err != nil {
			return DepositQuote{}, err
		}
		q.Minted = q.Liquidity
	}

	if q.NewReserveA, err = dexmath.CheckedAdd(p.ReserveA, amountA); err != nil {
		return DepositQuote{}, errors.Wrap(err, "new reserve a")
	}
	if q.NewReserveB, err = dexmath.CheckedAdd(p.ReserveB, amountB); err != nil {
		return DepositQuote{}, errors.Wrap(err, "new reserve b")
	}
	if q.NewTotalSupply, err = dexmath.CheckedAdd(p.TotalLPSupply, q.Liquidity); err != nil {
		return DepositQuote{}, errors.Wrap(err, "new total supply")
	}
	return q, nil
}

// WithdrawQuote is a fully validated redemption against a specific pool state.
type WithdrawQuote struct {
	Liquidity uint64 `json:"liquidity"`
	AmountA   uint64 `json:"amount_a"`
	AmountB   uint64 `json:"amount_b"`

	ReserveA       uint64 `json:"reserve_a"`
	ReserveB       uint64 `json:"reserve_b"`
	TotalSupply    uint64 `json:"total_supply"`
	NewReserveA    uint64 `json:"new_reserve_a"`
	NewReserveB    uint64 `json:"new_reserve_b"`
	NewTotalSupply uint64 `json:"new_total_supply"`
}

// QuoteWithdraw prices burning liquidity shares of p. Withdrawals are allowed
// on paused pools. p is not modified.
func QuoteWithdraw(p *Pool, liquidity uint64) (WithdrawQuote, error) {
	if !p.IsInitialized() {
		return WithdrawQuote{}, apperrors.ErrPoolNotInitialized
	}

	amountA, amountB, err := ComputeAmountsForLiquidity(liquidity, p.ReserveA, p.ReserveB, p.TotalLPSupply)
	if err != nil {
		return WithdrawQuote{}, err
	}

	q := WithdrawQuote{
		Liquidity:   liquidity,
		AmountA:     amountA,
		AmountB:     amountB,
		ReserveA:    p.ReserveA,
		ReserveB:    p.ReserveB,
		TotalSupply: p.TotalLPSupply,
	}
	if q.NewReserveA, err = dexmath.CheckedSub(p.ReserveA, amountA); err != nil {
		return WithdrawQuote{}, errors.Wrap(err, "new reserve a")
	}
	if q.NewReserveB, err = dexmath.CheckedSub(p.ReserveB, amountB); err != nil {
		return WithdrawQuote{}, errors.Wrap(err, "new reserve b")
	}
	if q.NewTotalSupply, err = dexmath.CheckedSub(p.TotalLPSupply, liquidity); err != nil {
		return WithdrawQuote{}, errors.Wrap(err, "new total supply")
	}
	return q, nil
}
