package validate

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	svcdto "github.com/ritikbhatt20/Vortex/internal/service/dto"
	"github.com/ritikbhatt20/Vortex/internal/transport/http/dto"
)

const maxBodyBytes = 1 << 16

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PoolID parses the {id} path segment as a 32-byte hex pool id.
func PoolID(r *http.Request) (amm.PoolID, int, error) {
	raw := r.PathValue("id")
	b, err := hexutil.Decode(raw)
	if err != nil || len(b) != common.HashLength {
		return amm.PoolID{}, http.StatusBadRequest, errors.Errorf("bad pool id %q", raw)
	}
	return common.BytesToHash(b), 0, nil
}

func decodeBody(r *http.Request, v any) (int, error) {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return http.StatusBadRequest, errors.Wrap(err, "bad request body")
	}
	return 0, nil
}

// address parses a required hex address field.
func address(field, raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, errors.Errorf("bad %s address format", field)
	}
	return common.HexToAddress(raw), nil
}

// optionalAddress parses a hex address field that may be omitted.
func optionalAddress(field, raw string) (common.Address, error) {
	if strings.TrimSpace(raw) == "" {
		return common.Address{}, nil
	}
	return address(field, raw)
}

// CreatePoolRequestValidate validates POST /pools.
func CreatePoolRequestValidate(r *http.Request) (*svcdto.CreatePoolRequest, int, error) {
	var body dto.CreatePoolBody
	if code, err := decodeBody(r, &body); err != nil {
		return nil, code, err
	}

	creator, err := optionalAddress("creator", body.Creator)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	assetA, err := address("asset_a", body.AssetA)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	assetB, err := address("asset_b", body.AssetB)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &svcdto.CreatePoolRequest{
		Creator: creator,
		AssetA:  assetA,
		AssetB:  assetB,
		Fee:     amm.FeeTier{Numerator: body.FeeNumerator, Denominator: body.FeeDenominator},
	}, 0, nil
}

// PauseRequestValidate validates POST /pools/{id}/pause.
func PauseRequestValidate(r *http.Request) (amm.PoolID, bool, int, error) {
	id, code, err := PoolID(r)
	if err != nil {
		return amm.PoolID{}, false, code, err
	}
	var body dto.PauseBody
	if code, err := decodeBody(r, &body); err != nil {
		return amm.PoolID{}, false, code, err
	}
	if body.Paused == nil {
		return amm.PoolID{}, false, http.StatusBadRequest, errors.New("missing paused")
	}
	return id, *body.Paused, 0, nil
}

// AddLiquidityRequestValidate validates POST /pools/{id}/liquidity.
func AddLiquidityRequestValidate(r *http.Request) (*svcdto.AddLiquidityRequest, int, error) {
	id, code, err := PoolID(r)
	if err != nil {
		return nil, code, err
	}
	var body dto.AddLiquidityBody
	if code, err := decodeBody(r, &body); err != nil {
		return nil, code, err
	}
	provider, err := address("provider", body.Provider)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &svcdto.AddLiquidityRequest{
		Pool:         id,
		Provider:     provider,
		AmountA:      body.AmountA,
		AmountB:      body.AmountB,
		MinLiquidity: body.MinLiquidity,
	}, 0, nil
}

// RemoveLiquidityRequestValidate validates POST /pools/{id}/withdraw.
func RemoveLiquidityRequestValidate(r *http.Request) (*svcdto.RemoveLiquidityRequest, int, error) {
	id, code, err := PoolID(r)
	if err != nil {
		return nil, code, err
	}
	var body dto.RemoveLiquidityBody
	if code, err := decodeBody(r, &body); err != nil {
		return nil, code, err
	}
	provider, err := address("provider", body.Provider)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &svcdto.RemoveLiquidityRequest{
		Pool:       id,
		Provider:   provider,
		Liquidity:  body.Liquidity,
		MinAmountA: body.MinAmountA,
		MinAmountB: body.MinAmountB,
	}, 0, nil
}

// SwapRequestValidate validates POST /pools/{id}/swap.
func SwapRequestValidate(r *http.Request) (*svcdto.SwapRequest, int, error) {
	id, code, err := PoolID(r)
	if err != nil {
		return nil, code, err
	}
	var body dto.SwapBody
	if code, err := decodeBody(r, &body); err != nil {
		return nil, code, err
	}
	trader, err := address("trader", body.Trader)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	assetIn, err := address("asset_in", body.AssetIn)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	return &svcdto.SwapRequest{
		Pool:         id,
		Trader:       trader,
		AssetIn:      assetIn,
		AmountIn:     body.AmountIn,
		MinAmountOut: body.MinAmountOut,
	}, 0, nil
}

// QuoteRequestValidate validates GET /pools/{id}/quote?asset_in=&amount_in=.
func QuoteRequestValidate(r *http.Request) (*svcdto.QuoteRequest, int, error) {
	id, code, err := PoolID(r)
	if err != nil {
		return nil, code, err
	}
	q := r.URL.Query()
	if q.Get("asset_in") == "" || q.Get("amount_in") == "" {
		return nil, http.StatusBadRequest, errors.New("missing params")
	}
	assetIn, err := address("asset_in", q.Get("asset_in"))
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	amountIn, err := strconv.ParseUint(q.Get("amount_in"), 10, 64)
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("bad amount_in")
	}

	return &svcdto.QuoteRequest{Pool: id, AssetIn: assetIn, AmountIn: amountIn}, 0, nil
}

// FundRequestValidate validates POST /faucet.
func FundRequestValidate(r *http.Request) (*svcdto.FundRequest, int, error) {
	var body dto.FundBody
	if code, err := decodeBody(r, &body); err != nil {
		return nil, code, err
	}
	asset, err := address("asset", body.Asset)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	holder, err := address("holder", body.Holder)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &svcdto.FundRequest{Asset: asset, Holder: holder, Amount: body.Amount}, 0, nil
}
