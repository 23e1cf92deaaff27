package validate

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	svcdto "github.com/ritikbhatt20/Vortex/internal/service/dto"
)

// EstimateRequestValidate validates GET /estimate?pool=&src=&dst=&src_amount=.
func EstimateRequestValidate(r *http.Request) (*svcdto.EstimateRequest, int, error) {
	if r.Method != http.MethodGet {
		return nil, http.StatusMethodNotAllowed, errors.New("method not allowed")
	}

	q := r.URL.Query()
	if q.Get("pool") == "" || q.Get("src") == "" || q.Get("dst") == "" || q.Get("src_amount") == "" {
		return nil, http.StatusBadRequest, errors.New("missing params")
	}

	var (
		req svcdto.EstimateRequest
		err error
	)
	if req.Pool, err = address("pool", q.Get("pool")); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.Src, err = address("src", q.Get("src")); err != nil {
		return nil, http.StatusBadRequest, err
	}
	if req.Dst, err = address("dst", q.Get("dst")); err != nil {
		return nil, http.StatusBadRequest, err
	}

	req.SrcAmount, err = strconv.ParseUint(q.Get("src_amount"), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return nil, http.StatusBadRequest, errors.New("src_amount does not fit in 64 bits")
	}
	if err != nil {
		return nil, http.StatusBadRequest, errors.New("bad src_amount")
	}
	if req.SrcAmount < amm.MinSwapAmount {
		return nil, http.StatusBadRequest, errors.Errorf("src_amount below minimum %d", amm.MinSwapAmount)
	}

	return &req, 0, nil
}
