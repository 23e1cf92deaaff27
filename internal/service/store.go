package service

import (
	"bytes"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/apperrors"
)

// poolEntry serializes every mutation of one pool.
type poolEntry struct {
	mu   sync.Mutex
	pool amm.Pool
}

// snapshot returns a copy of the pool state under the entry lock.
func (e *poolEntry) snapshot() amm.Pool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.pool
}

type poolStore struct {
	mu     sync.RWMutex
	pools  map[amm.PoolID]*poolEntry
	vaults map[common.Address]amm.PoolID
}

func newPoolStore() *poolStore {
	return &poolStore{
		pools:  make(map[amm.PoolID]*poolEntry),
		vaults: make(map[common.Address]amm.PoolID),
	}
}

func (s *poolStore) insert(p amm.Pool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pools[p.ID]; ok {
		return errors.Wrapf(apperrors.ErrPoolAlreadyExists, "pool %s", p.ID.Hex())
	}
	s.pools[p.ID] = &poolEntry{pool: p}
	s.vaults[amm.VaultAddress(p.ID)] = p.ID
	return nil
}

// vaultOf reports the pool whose reserves addr holds, if any.
func (s *poolStore) vaultOf(addr common.Address) (amm.PoolID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.vaults[addr]
	return id, ok
}

func (s *poolStore) get(id amm.PoolID) (*poolEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.pools[id]
	if !ok {
		return nil, errors.Wrapf(apperrors.ErrPoolNotFound, "pool %s", id.Hex())
	}
	return e, nil
}

// list returns snapshots ordered by creation time, then id.
func (s *poolStore) list() []amm.Pool {
	s.mu.RLock()
	entries := make([]*poolEntry, 0, len(s.pools))
	for _, e := range s.pools {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	out := make([]amm.Pool, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.snapshot())
	}
	slices.SortFunc(out, func(a, b amm.Pool) int {
		if a.CreatedAt != b.CreatedAt {
			if a.CreatedAt < b.CreatedAt {
				return -1
			}
			return 1
		}
		return bytes.Compare(a.ID.Bytes(), b.ID.Bytes())
	})
	return out
}
