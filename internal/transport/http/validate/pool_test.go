package validate

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/ritikbhatt20/Vortex/internal/amm"
)

const (
	poolID = "0x00000000000000000000000000000000000000000000000000000000000000aa"
	trader = "0x000000000000000000000000000000000000b0b0"
)

func newPoolRequest(method, target, id, body string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.SetPathValue("id", id)
	return r
}

func TestPoolID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "valid", id: poolID},
		{name: "short", id: "0xaa", wantErr: true},
		{name: "no prefix", id: strings.TrimPrefix(poolID, "0x"), wantErr: true},
		{name: "not hex", id: "0x" + strings.Repeat("zz", 32), wantErr: true},
		{name: "empty", id: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			id, status, err := PoolID(newPoolRequest(http.MethodGet, "/pools/x", tt.id, ""))
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, http.StatusBadRequest, status)
				return
			}
			require.NoError(t, err)
			require.Equal(t, common.HexToHash(poolID), id)
		})
	}
}

func TestCreatePoolRequestValidate(t *testing.T) {
	t.Parallel()

	t.Run("valid with fee", func(t *testing.T) {
		t.Parallel()

		body := `{"creator":"` + trader + `","asset_a":"` + src + `","asset_b":"` + dst + `","fee_numerator":5,"fee_denominator":10000}`
		req, status, err := CreatePoolRequestValidate(httptest.NewRequest(http.MethodPost, "/pools", strings.NewReader(body)))
		require.NoError(t, err)
		require.Zero(t, status)
		require.Equal(t, common.HexToAddress(trader), req.Creator)
		require.Equal(t, common.HexToAddress(src), req.AssetA)
		require.Equal(t, amm.LowFee, req.Fee)
	})

	t.Run("creator is optional", func(t *testing.T) {
		t.Parallel()

		body := `{"asset_a":"` + src + `","asset_b":"` + dst + `"}`
		req, _, err := CreatePoolRequestValidate(httptest.NewRequest(http.MethodPost, "/pools", strings.NewReader(body)))
		require.NoError(t, err)
		require.Equal(t, common.Address{}, req.Creator)
		require.Equal(t, amm.FeeTier{}, req.Fee)
	})

	bad := map[string]string{
		"malformed json": `{"asset_a":`,
		"unknown field":  `{"asset_a":"` + src + `","asset_b":"` + dst + `","tick":1}`,
		"bad asset":      `{"asset_a":"0x123","asset_b":"` + dst + `"}`,
		"negative fee":   `{"asset_a":"` + src + `","asset_b":"` + dst + `","fee_numerator":-1}`,
	}
	for name, body := range bad {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			req, status, err := CreatePoolRequestValidate(httptest.NewRequest(http.MethodPost, "/pools", strings.NewReader(body)))
			require.Error(t, err)
			require.Equal(t, http.StatusBadRequest, status)
			require.Nil(t, req)
		})
	}
}

func TestMutationRequestValidate(t *testing.T) {
	t.Parallel()

	t.Run("liquidity", func(t *testing.T) {
		t.Parallel()

		r := newPoolRequest(http.MethodPost, "/pools/x/liquidity", poolID,
			`{"provider":"`+trader+`","amount_a":10000,"amount_b":40000,"min_liquidity":18000}`)
		req, _, err := AddLiquidityRequestValidate(r)
		require.NoError(t, err)
		require.Equal(t, common.HexToHash(poolID), req.Pool)
		require.Equal(t, uint64(40_000), req.AmountB)
		require.Equal(t, uint64(18_000), req.MinLiquidity)
	})

	t.Run("liquidity without provider", func(t *testing.T) {
		t.Parallel()

		r := newPoolRequest(http.MethodPost, "/pools/x/liquidity", poolID, `{"amount_a":1,"amount_b":1}`)
		_, status, err := AddLiquidityRequestValidate(r)
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("withdraw", func(t *testing.T) {
		t.Parallel()

		r := newPoolRequest(http.MethodPost, "/pools/x/withdraw", poolID,
			`{"provider":"`+trader+`","liquidity":2000,"min_amount_a":1,"min_amount_b":2}`)
		req, _, err := RemoveLiquidityRequestValidate(r)
		require.NoError(t, err)
		require.Equal(t, uint64(2_000), req.Liquidity)
		require.Equal(t, uint64(2), req.MinAmountB)
	})

	t.Run("swap", func(t *testing.T) {
		t.Parallel()

		r := newPoolRequest(http.MethodPost, "/pools/x/swap", poolID,
			`{"trader":"`+trader+`","asset_in":"`+src+`","amount_in":18446744073709551615,"min_amount_out":1}`)
		req, _, err := SwapRequestValidate(r)
		require.NoError(t, err)
		require.Equal(t, uint64(18446744073709551615), req.AmountIn)
		require.Equal(t, common.HexToAddress(src), req.AssetIn)
	})

	t.Run("swap with bad pool id", func(t *testing.T) {
		t.Parallel()

		r := newPoolRequest(http.MethodPost, "/pools/x/swap", "0x01", `{}`)
		_, status, err := SwapRequestValidate(r)
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("pause", func(t *testing.T) {
		t.Parallel()

		id, paused, _, err := PauseRequestValidate(newPoolRequest(http.MethodPost, "/pools/x/pause", poolID, `{"paused":true}`))
		require.NoError(t, err)
		require.True(t, paused)
		require.Equal(t, common.HexToHash(poolID), id)

		_, _, status, err := PauseRequestValidate(newPoolRequest(http.MethodPost, "/pools/x/pause", poolID, `{}`))
		require.Error(t, err)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("fund", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/faucet", strings.NewReader(`{"asset":"`+src+`","holder":"`+trader+`","amount":5}`))
		req, _, err := FundRequestValidate(r)
		require.NoError(t, err)
		require.Equal(t, uint64(5), req.Amount)
	})
}

func TestQuoteRequestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{name: "valid", query: "asset_in=" + src + "&amount_in=1000"},
		{name: "missing amount", query: "asset_in=" + src, wantErr: true},
		{name: "bad amount", query: "asset_in=" + src + "&amount_in=-5", wantErr: true},
		{name: "amount overflow", query: "asset_in=" + src + "&amount_in=18446744073709551616", wantErr: true},
		{name: "bad asset", query: "asset_in=0x12&amount_in=1000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newPoolRequest(http.MethodGet, "/pools/x/quote?"+tt.query, poolID, "")
			req, status, err := QuoteRequestValidate(r)
			if tt.wantErr {
				require.Error(t, err)
				require.Equal(t, http.StatusBadRequest, status)
				return
			}
			require.NoError(t, err)
			require.Equal(t, uint64(1000), req.AmountIn)
		})
	}
}
