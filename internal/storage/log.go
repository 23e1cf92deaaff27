package storage

import (
	"context"

	"go.uber.org/zap"

	"github.com/ritikbhatt20/Vortex/internal/amm"
)

// LogSink writes events to a zap logger at info level.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink returns a LogSink writing under the "events" logger name.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger.Named("events")}
}

// Emit implements Sink.
func (s *LogSink) Emit(_ context.Context, ev amm.Event) error {
	fields := []zap.Field{
		zap.String("pool", ev.Pool.Hex()),
		zap.String("actor", ev.Actor.Hex()),
		zap.Uint64("marker", ev.Marker),
		zap.Int64("time", ev.Time),
	}

	switch ev.Kind {
	case amm.EventPoolCreated:
		fields = append(fields,
			zap.Uint64("fee_numerator", ev.FeeNumerator),
			zap.Uint64("fee_denominator", ev.FeeDenominator),
		)
	case amm.EventLiquidityAdded, amm.EventLiquidityRemoved:
		fields = append(fields,
			zap.Uint64("amount_a", ev.AmountA),
			zap.Uint64("amount_b", ev.AmountB),
			zap.Uint64("liquidity", ev.Liquidity),
		)
	case amm.EventSwapExecuted:
		fields = append(fields,
			zap.String("asset_in", ev.AssetIn.Hex()),
			zap.String("asset_out", ev.AssetOut.Hex()),
			zap.Uint64("amount_in", ev.AmountIn),
			zap.Uint64("amount_out", ev.AmountOut),
			zap.Uint64("fee", ev.FeeAmount),
		)
	}
	if ev.Kind != amm.EventPoolCreated {
		fields = append(fields,
			zap.Uint64("reserve_a", ev.ReserveAAfter),
			zap.Uint64("reserve_b", ev.ReserveBAfter),
		)
	}

	s.logger.Info(string(ev.Kind), fields...)
	return nil
}
