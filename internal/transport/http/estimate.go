package http

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/ritikbhatt20/Vortex/internal/transport/http/validate"
)

func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	req, code, err := validate.EstimateRequestValidate(r)
	if err != nil {
		s.writeError(w, code, err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()

	out, err := s.svc.Estimate(ctx, *req)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(strconv.FormatUint(out, 10))); err != nil {
		s.log.Warn("estimate write error", zap.Error(err))
	}
}
