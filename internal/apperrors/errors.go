package apperrors

import "github.com/pkg/errors"

// Arithmetic failures.
var (
	// ErrMathOverflow is returned when a checked computation cannot be represented.
	ErrMathOverflow = errors.New("math overflow")

	// ErrDivisionByZero is returned when a computation would divide by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Pricing and accounting failures of the AMM core.
var (
	// ErrAmountTooSmall is returned when an input is below a dust floor or the
	// computed result rounds down to zero.
	ErrAmountTooSmall = errors.New("amount too small")

	// ErrInsufficientOutputAmount is returned when a redemption would pay out
	// nothing on one of the sides.
	ErrInsufficientOutputAmount = errors.New("insufficient output amount")

	// ErrInsufficientLiquidity is returned when the pool does not have enough
	// reserves to satisfy the requested swap.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInsufficientLiquidityMinted is returned when a deposit would mint zero shares.
	ErrInsufficientLiquidityMinted = errors.New("insufficient liquidity minted")

	// ErrInsufficientLiquidityBurned is returned when the burned share amount is
	// zero or exceeds the total supply.
	ErrInsufficientLiquidityBurned = errors.New("insufficient liquidity burned")

	// ErrSlippageExceeded is returned when a caller-supplied minimum is not met.
	ErrSlippageExceeded = errors.New("slippage tolerance exceeded")

	// ErrInvariantViolation is returned when a swap would decrease k.
	ErrInvariantViolation = errors.New("invariant violated")

	// ErrPoolNotInitialized is returned when an operation needs non-zero reserves.
	ErrPoolNotInitialized = errors.New("pool not initialized")

	// ErrInitialLiquidityTooSmall is returned when a first deposit is below the
	// minimum initial liquidity.
	ErrInitialLiquidityTooSmall = errors.New("initial liquidity too small")

	// ErrInvalidFeeParameters is returned when a fee rate is outside the allowed range.
	ErrInvalidFeeParameters = errors.New("invalid fee parameters")

	// ErrIdenticalAssets is returned when both pool assets are the same.
	ErrIdenticalAssets = errors.New("pool assets must be different")

	// ErrPoolPaused is returned for deposits and swaps against a paused pool.
	ErrPoolPaused = errors.New("pool paused")
)

// Caller-level failures.
var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPoolNotFound is returned when no pool is registered under an id.
	ErrPoolNotFound = errors.New("pool not found")

	// ErrPoolAlreadyExists is returned when a pool for the asset pair exists.
	ErrPoolAlreadyExists = errors.New("pool already exists")

	// ErrInsufficientBalance is returned when an account cannot cover a debit.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrPairRead is returned when fetching pair data (tokens or reserves) fails,
	// typically due to an RPC or ABI decoding error.
	ErrPairRead = errors.New("pair read failed")
)
