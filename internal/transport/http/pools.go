package http

import (
	"net/http"

	"github.com/ritikbhatt20/Vortex/internal/transport/http/dto"
	"github.com/ritikbhatt20/Vortex/internal/transport/http/validate"
)

func (s *Server) handleCreatePool(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.CreatePoolRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	p, err := s.svc.CreatePool(ctx, *req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, dto.NewPoolView(*p))
}

func (s *Server) handleListPools(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.requestContext(r)
	defer cancel()

	pools, err := s.svc.Pools(ctx)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	views := make([]dto.PoolView, 0, len(pools))
	for _, p := range pools {
		views = append(views, dto.NewPoolView(p))
	}
	s.writeJSON(w, http.StatusOK, views)
}

func (s *Server) handleGetPool(w http.ResponseWriter, r *http.Request) {
	id, code, err := validate.PoolID(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	p, err := s.svc.Pool(ctx, id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.NewPoolView(*p))
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	id, paused, code, err := validate.PauseRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	p, err := s.svc.SetPaused(ctx, id, paused)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.NewPoolView(*p))
}

func (s *Server) handleAddLiquidity(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.AddLiquidityRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.AddLiquidity(ctx, *req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.DepositResponse{Pool: dto.NewPoolView(res.Pool), Deposit: res.Deposit})
}

func (s *Server) handleRemoveLiquidity(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.RemoveLiquidityRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.RemoveLiquidity(ctx, *req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.WithdrawResponse{Pool: dto.NewPoolView(res.Pool), Withdrawal: res.Withdrawal})
}

func (s *Server) handleSwap(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.SwapRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	res, err := s.svc.Swap(ctx, *req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, dto.SwapResponse{Pool: dto.NewPoolView(res.Pool), Swap: res.Swap})
}

func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.QuoteRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	q, err := s.svc.QuoteSwap(ctx, *req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, q)
}

func (s *Server) handleFund(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.FundRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	if err := s.svc.Fund(ctx, *req); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
