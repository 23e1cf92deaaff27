package uniswap

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
)

//go:generate mockgen -source=caller.go -destination=caller_mock_test.go -package=uniswap

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}
