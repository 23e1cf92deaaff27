package dto

import "github.com/ethereum/go-ethereum/common"

// EstimateRequest prices SrcAmount of Src sold into the on-chain Uniswap V2
// pair at Pool for Dst.
type EstimateRequest struct {
	Pool      common.Address
	Src       common.Address
	Dst       common.Address
	SrcAmount uint64
}
