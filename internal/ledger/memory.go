// Package ledger is an in-memory asset custody and LP-share ledger.
package ledger

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/dexmath"
)

// Transfer moves Amount of Asset from one holder to another.
type Transfer struct {
	Asset  common.Address
	From   common.Address
	To     common.Address
	Amount uint64
}

// Reverse returns the transfer that undoes t.
func (t Transfer) Reverse() Transfer {
	return Transfer{Asset: t.Asset, From: t.To, To: t.From, Amount: t.Amount}
}

type balanceKey struct {
	asset  common.Address
	holder common.Address
}

type shareBook struct {
	total   uint64
	holders map[common.Address]uint64
}

// Memory keeps asset balances and LP shares in maps guarded by one mutex.
type Memory struct {
	mu       sync.Mutex
	balances map[balanceKey]uint64
	shares   map[amm.PoolID]*shareBook
}

// NewMemory returns an empty ledger.
func NewMemory() *Memory {
	return &Memory{
		balances: make(map[balanceKey]uint64),
		shares:   make(map[amm.PoolID]*shareBook),
	}
}

// Credit adds amount of asset to holder out of thin air.
func (m *Memory) Credit(asset, holder common.Address, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := balanceKey{asset: asset, holder: holder}
	next, err := dexmath.CheckedAdd(m.balances[key], amount)
	if err != nil {
		return errors.Wrap(err, "credit")
	}
	m.balances[key] = next
	return nil
}

// Balance returns the amount of asset held by holder.
func (m *Memory) Balance(asset, holder common.Address) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.balances[balanceKey{asset: asset, holder: holder}]
}

// Settle applies all transfers or none of them.
func (m *Memory) Settle(ctx context.Context, transfers ...Transfer) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "settle")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	staged := make(map[balanceKey]uint64, len(transfers)*2)
	get := func(k balanceKey) uint64 {
		if v, ok := staged[k]; ok {
			return v
		}
		return m.balances[k]
	}

	for i, t := range transfers {
		from := balanceKey{asset: t.Asset, holder: t.From}
		to := balanceKey{asset: t.Asset, holder: t.To}

		debited, err := dexmath.CheckedSub(get(from), t.Amount)
		if err != nil {
			return errors.Wrapf(apperrors.ErrInsufficientBalance,
				"transfer %d: %s holds less than %d of %s", i, t.From.Hex(), t.Amount, t.Asset.Hex())
		}
		staged[from] = debited

		credited, err := dexmath.CheckedAdd(get(to), t.Amount)
		if err != nil {
			return errors.Wrapf(err, "transfer %d", i)
		}
		staged[to] = credited
	}

	for k, v := range staged {
		m.balances[k] = v
	}
	return nil
}

// TotalSupply returns the LP shares outstanding for pool.
func (m *Memory) TotalSupply(_ context.Context, pool amm.PoolID) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if book, ok := m.shares[pool]; ok {
		return book.total, nil
	}
	return 0, nil
}

// BalanceOf returns the LP shares of pool held by holder.
func (m *Memory) BalanceOf(_ context.Context, pool amm.PoolID, holder common.Address) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if book, ok := m.shares[pool]; ok {
		return book.holders[holder], nil
	}
	return 0, nil
}

// Mint issues amount LP shares of pool to holder.
func (m *Memory) Mint(_ context.Context, pool amm.PoolID, holder common.Address, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.shares[pool]
	if !ok {
		book = &shareBook{holders: make(map[common.Address]uint64)}
		m.shares[pool] = book
	}

	total, err := dexmath.CheckedAdd(book.total, amount)
	if err != nil {
		return errors.Wrap(err, "mint total supply")
	}
	balance, err := dexmath.CheckedAdd(book.holders[holder], amount)
	if err != nil {
		return errors.Wrap(err, "mint balance")
	}
	book.total = total
	book.holders[holder] = balance
	return nil
}

// Burn destroys amount LP shares of pool held by holder.
func (m *Memory) Burn(_ context.Context, pool amm.PoolID, holder common.Address, amount uint64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	book, ok := m.shares[pool]
	if !ok || book.holders[holder] < amount {
		return errors.Wrapf(apperrors.ErrInsufficientBalance, "%s cannot burn %d shares", holder.Hex(), amount)
	}
	book.holders[holder] -= amount
	book.total -= amount
	return nil
}
