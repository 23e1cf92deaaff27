// Package uniswap reads Uniswap V2 pair state over Ethereum JSON-RPC.
package uniswap

import (
	"context"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

const pairABIJSON = `[
	{"inputs":[],"name":"token0","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"token1","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getReserves","outputs":[{"internalType":"uint112","name":"_reserve0","type":"uint112"},{"internalType":"uint112","name":"_reserve1","type":"uint112"},{"internalType":"uint32","name":"_blockTimestampLast","type":"uint32"}],"stateMutability":"view","type":"function"}
]`

const (
	methodToken0      = "token0"
	methodToken1      = "token1"
	methodGetReserves = "getReserves"
)

// Reserves is the decoded result of a pair's getReserves call.
type Reserves struct {
	Reserve0           *big.Int
	Reserve1           *big.Int
	BlockTimestampLast uint32
}

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock

// Client reads Uniswap V2 pair data from the chain.
type Client interface {
	// GetPairTokens returns the addresses of token0 and token1 for a given pair contract.
	GetPairTokens(ctx context.Context, pair common.Address) (common.Address, common.Address, error)
	// GetPairReserves returns the current reserves for a given pair contract.
	GetPairReserves(ctx context.Context, pair common.Address) (Reserves, error)
}

type ethClientImpl struct {
	caller  EthCaller
	pairABI abi.ABI

	callTimeout time.Duration
}

// NewClient creates a Client backed by an Ethereum RPC connection. A zero
// callTimeout leaves each call bounded only by the caller's context.
func NewClient(rpcURL string, callTimeout time.Duration) (Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}

	return newClientWithCaller(caller, callTimeout)
}

func newClientWithCaller(caller EthCaller, callTimeout time.Duration) (*ethClientImpl, error) {
	pairABI, err := abi.JSON(strings.NewReader(pairABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}

	return &ethClientImpl{
		caller:  caller,
		pairABI: pairABI,

		callTimeout: callTimeout,
	}, nil
}

func (c *ethClientImpl) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.callTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.callTimeout)
}

func (c *ethClientImpl) call(ctx context.Context, to common.Address, method string) ([]interface{}, error) {
	data, err := c.pairABI.Pack(method)
	if err != nil {
		return nil, errors.Wrap(err, "c.pairABI.Pack")
	}

	res, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, errors.Wrap(err, "c.caller.CallContract")
	}

	out, err := c.pairABI.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(err, "c.pairABI.Unpack")
	}

	return out, nil
}

// callEach runs every method against the same contract concurrently and
// returns the outputs in method order. All failures are reported together.
func (c *ethClientImpl) callEach(ctx context.Context, to common.Address, methods ...string) ([][]interface{}, error) {
	outs := make([][]interface{}, len(methods))
	errs := make([]error, len(methods))

	var wg sync.WaitGroup
	for i, method := range methods {
		wg.Add(1)
		go func() {
			defer wg.Done()

			callCtx, cancel := c.withTimeout(ctx)
			defer cancel()

			out, err := c.call(callCtx, to, method)
			if err != nil {
				errs[i] = errors.Wrapf(err, "failed to call %s", method)
				return
			}
			outs[i] = out
		}()
	}
	wg.Wait()

	if err := multierr.Combine(errs...); err != nil {
		return nil, err
	}
	return outs, nil
}

// GetPairTokens returns the addresses of token0 and token1 for a given pair contract.
func (c *ethClientImpl) GetPairTokens(ctx context.Context, pair common.Address) (common.Address, common.Address, error) {
	outs, err := c.callEach(ctx, pair, methodToken0, methodToken1)
	if err != nil {
		return common.Address{}, common.Address{}, errors.Wrap(err, "failed to get pair tokens")
	}

	token0, err := firstAddress(outs[0], methodToken0)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	token1, err := firstAddress(outs[1], methodToken1)
	if err != nil {
		return common.Address{}, common.Address{}, err
	}
	return token0, token1, nil
}

// GetPairReserves returns the current reserves for a given pair contract.
func (c *ethClientImpl) GetPairReserves(ctx context.Context, pair common.Address) (Reserves, error) {
	callCtx, cancel := c.withTimeout(ctx)
	defer cancel()

	out, err := c.call(callCtx, pair, methodGetReserves)
	if err != nil {
		return Reserves{}, errors.Wrap(err, "c.call")
	}

	const requiredSize = 3
	if len(out) < requiredSize {
		return Reserves{}, errors.Errorf("insufficient outputs from getReserves call: expected %d, got %d", requiredSize, len(out))
	}

	r0, ok := out[0].(*big.Int)
	if !ok {
		return Reserves{}, errors.New("failed to cast reserve0 to *big.Int")
	}
	r1, ok := out[1].(*big.Int)
	if !ok {
		return Reserves{}, errors.New("failed to cast reserve1 to *big.Int")
	}
	ts, ok := out[2].(uint32)
	if !ok {
		return Reserves{}, errors.New("failed to cast blockTimestampLast to uint32")
	}

	return Reserves{Reserve0: r0, Reserve1: r1, BlockTimestampLast: ts}, nil
}

func firstAddress(out []interface{}, method string) (common.Address, error) {
	if len(out) == 0 {
		return common.Address{}, errors.Errorf("empty output from %s", method)
	}
	addr, ok := out[0].(common.Address)
	if !ok {
		return common.Address{}, errors.Errorf("failed to cast %s result to address", method)
	}
	return addr, nil
}
