package amm

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/dexmath"
)

// PoolID identifies a pool by the hash of its asset pair.
type PoolID = common.Hash

var poolSeed = []byte("pool")

// NewPoolID derives the pool id of an asset pair. The id does not depend on
// the order the assets are given in.
func NewPoolID(assetA, assetB common.Address) (PoolID, error) {
	if assetA == assetB {
		return PoolID{}, apperrors.ErrIdenticalAssets
	}
	lo, hi := assetA, assetB
	if bytes.Compare(lo.Bytes(), hi.Bytes()) > 0 {
		lo, hi = hi, lo
	}
	return crypto.Keccak256Hash(poolSeed, lo.Bytes(), hi.Bytes()), nil
}

// LockAddress holds the minimum liquidity locked by the first deposit of every
// pool. Its shares can never be burned.
var LockAddress = common.HexToAddress("0x000000000000000000000000000000000000dEaD")

// VaultAddress is the custody account holding the reserves of pool id.
func VaultAddress(id PoolID) common.Address {
	return common.BytesToAddress(id.Bytes())
}

// Pool is the canonical state of one constant-product pool.
//
// Reserves, fee parameters and statistics are mutated only through the Apply*
// methods, UpdateReserves and RecordSwapStatistics. TotalLPSupply mirrors the
// LP-share ledger and is kept in sync by the caller.
type Pool struct {
	ID      PoolID         `json:"id"`
	Version uint8          `json:"version"`
	AssetA  common.Address `json:"asset_a"`
	AssetB  common.Address `json:"asset_b"`

	ReserveA uint64 `json:"reserve_a"`
	ReserveB uint64 `json:"reserve_b"`

	FeeNumerator   uint64 `json:"fee_numerator"`
	FeeDenominator uint64 `json:"fee_denominator"`

	TotalLPSupply uint64 `json:"total_lp_supply"`
	Paused        bool   `json:"paused"`

	CumulativeSwapCount uint64 `json:"cumulative_swap_count"`
	CumulativeVolumeA   uint64 `json:"cumulative_volume_a"`
	CumulativeVolumeB   uint64 `json:"cumulative_volume_b"`
	CumulativeFeesA     uint64 `json:"cumulative_fees_a"`
	CumulativeFeesB     uint64 `json:"cumulative_fees_b"`

	CreatedAt        int64  `json:"created_at"`
	LastSwapTime     int64  `json:"last_swap_time"`
	LastUpdateMarker uint64 `json:"last_update_marker"`
}

// NewPool returns an empty pool for the asset pair with a fixed fee rate.
func NewPool(assetA, assetB common.Address, fee FeeTier, createdAt int64, marker uint64) (*Pool, error) {
	id, err := NewPoolID(assetA, assetB)
	if err != nil {
		return nil, err
	}
	if !fee.Valid() {
		return nil, errors.Wrapf(apperrors.ErrInvalidFeeParameters, "%d/%d", fee.Numerator, fee.Denominator)
	}

	return &Pool{
		ID:               id,
		Version:          ProtocolVersion,
		AssetA:           assetA,
		AssetB:           assetB,
		FeeNumerator:     fee.Numerator,
		FeeDenominator:   fee.Denominator,
		CreatedAt:        createdAt,
		LastUpdateMarker: marker,
	}, nil
}

// IsInitialized reports whether the pool holds both reserves.
func (p *Pool) IsInitialized() bool {
	return p.ReserveA > 0 && p.ReserveB > 0
}

// Fee returns the pool fee rate.
func (p *Pool) Fee() FeeTier {
	return FeeTier{Numerator: p.FeeNumerator, Denominator: p.FeeDenominator}
}

// PriceOfAInB returns reserveB/reserveA in Q64 fixed point, or 0 for an empty pool.
func (p *Pool) PriceOfAInB() *uint256.Int {
	return q64Ratio(p.ReserveB, p.ReserveA)
}

// PriceOfBInA returns reserveA/reserveB in Q64 fixed point, or 0 for an empty pool.
func (p *Pool) PriceOfBInA() *uint256.Int {
	return q64Ratio(p.ReserveA, p.ReserveB)
}

func q64Ratio(num, den uint64) *uint256.Int {
	if den == 0 {
		return new(uint256.Int)
	}
	z := uint256.NewInt(num)
	z.Lsh(z, PriceFractionalBits)
	return z.Div(z, uint256.NewInt(den))
}

// InvariantValue returns k = reserveA * reserveB.
func (p *Pool) InvariantValue() *uint256.Int {
	return dexmath.WideMul(p.ReserveA, p.ReserveB)
}

// FeeInBasisPoints returns the fee rate in basis points.
func (p *Pool) FeeInBasisPoints() uint64 {
	return p.Fee().BPS()
}

// ValidateReserves reports whether the recorded reserves match the balances
// held in custody.
func (p *Pool) ValidateReserves(balanceA, balanceB uint64) bool {
	return p.ReserveA == balanceA && p.ReserveB == balanceB
}

// UpdateReserves overwrites both reserves. It performs no validation.
func (p *Pool) UpdateReserves(newA, newB uint64) {
	p.ReserveA = newA
	p.ReserveB = newB
}

// RecordSwapStatistics adds one swap to the lifetime counters. Counters clamp
// at their maximum; markers are stored as given.
func (p *Pool) RecordSwapStatistics(volumeA, volumeB, feeA, feeB uint64, timestamp int64, marker uint64) {
	p.CumulativeSwapCount = dexmath.SaturatingAdd(p.CumulativeSwapCount, 1)
	p.CumulativeVolumeA = dexmath.SaturatingAdd(p.CumulativeVolumeA, volumeA)
	p.CumulativeVolumeB = dexmath.SaturatingAdd(p.CumulativeVolumeB, volumeB)
	p.CumulativeFeesA = dexmath.SaturatingAdd(p.CumulativeFeesA, feeA)
	p.CumulativeFeesB = dexmath.SaturatingAdd(p.CumulativeFeesB, feeB)
	p.LastSwapTime = timestamp
	p.LastUpdateMarker = marker
}

// ApplySwap commits a quote produced by QuoteSwap for the current state.
func (p *Pool) ApplySwap(q SwapQuote, timestamp int64, marker uint64) error {
	if q.ReserveA != p.ReserveA || q.ReserveB != p.ReserveB {
		return errors.Wrap(apperrors.ErrInvalidArgument, "swap quote is stale")
	}

	p.UpdateReserves(q.NewReserveA, q.NewReserveB)
	volumeA, volumeB, feeA, feeB := q.Statistics()
	p.RecordSwapStatistics(volumeA, volumeB, feeA, feeB, timestamp, marker)
	return nil
}

// ApplyDeposit commits a quote produced by QuoteDeposit for the current state.
func (p *Pool) ApplyDeposit(q DepositQuote, marker uint64) error {
	if q.ReserveA != p.ReserveA || q.ReserveB != p.ReserveB || q.TotalSupply != p.TotalLPSupply {
		return errors.Wrap(apperrors.ErrInvalidArgument, "deposit quote is stale")
	}

	p.UpdateReserves(q.NewReserveA, q.NewReserveB)
	p.TotalLPSupply = q.NewTotalSupply
	p.LastUpdateMarker = marker
	return nil
}

// ApplyWithdraw commits a quote produced by QuoteWithdraw for the current state.
func (p *Pool) ApplyWithdraw(q WithdrawQuote, marker uint64) error {
	if q.ReserveA != p.ReserveA || q.ReserveB != p.ReserveB || q.TotalSupply != p.TotalLPSupply {
		return errors.Wrap(apperrors.ErrInvalidArgument, "withdraw quote is stale")
	}

	p.UpdateReserves(q.NewReserveA, q.NewReserveB)
	p.TotalLPSupply = q.NewTotalSupply
	p.LastUpdateMarker = marker
	return nil
}
