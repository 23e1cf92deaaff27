package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ritikbhatt20/Vortex/internal/apperrors"
	"github.com/ritikbhatt20/Vortex/internal/transport/http/dto"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrPoolNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrPoolAlreadyExists),
		errors.Is(err, apperrors.ErrPoolPaused):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrSlippageExceeded),
		errors.Is(err, apperrors.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrPairRead):
		return http.StatusBadGateway
	case errors.Is(err, apperrors.ErrInvariantViolation):
		return http.StatusInternalServerError
	case errors.Is(err, apperrors.ErrInvalidArgument),
		errors.Is(err, apperrors.ErrAmountTooSmall),
		errors.Is(err, apperrors.ErrInsufficientOutputAmount),
		errors.Is(err, apperrors.ErrInsufficientLiquidity),
		errors.Is(err, apperrors.ErrInsufficientLiquidityMinted),
		errors.Is(err, apperrors.ErrInsufficientLiquidityBurned),
		errors.Is(err, apperrors.ErrPoolNotInitialized),
		errors.Is(err, apperrors.ErrInitialLiquidityTooSmall),
		errors.Is(err, apperrors.ErrInvalidFeeParameters),
		errors.Is(err, apperrors.ErrIdenticalAssets),
		errors.Is(err, apperrors.ErrMathOverflow),
		errors.Is(err, apperrors.ErrDivisionByZero):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("response write error", zap.Error(err))
	}
}

// writeError reports a validation failure with an explicit status.
func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	s.writeJSON(w, status, dto.ErrorBody{Error: err.Error()})
}

// writeServiceError reports a service failure. Unclassified errors are logged
// and hidden from the client.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		msg = "internal error"
	}
	s.writeJSON(w, status, dto.ErrorBody{Error: msg})
}
