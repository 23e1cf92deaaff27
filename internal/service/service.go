package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ritikbhatt20/Vortex/internal/amm"
	"github.com/ritikbhatt20/Vortex/internal/infra/uniswap"
	"github.com/ritikbhatt20/Vortex/internal/service/dto"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

// Service represents interface for business logic.
type Service interface {
	CreatePool(ctx context.Context, req dto.CreatePoolRequest) (*amm.Pool, error)
	Pool(ctx context.Context, id amm.PoolID) (*amm.Pool, error)
	Pools(ctx context.Context) ([]amm.Pool, error)
	SetPaused(ctx context.Context, id amm.PoolID, paused bool) (*amm.Pool, error)

	AddLiquidity(ctx context.Context, req dto.AddLiquidityRequest) (*dto.AddLiquidityResult, error)
	RemoveLiquidity(ctx context.Context, req dto.RemoveLiquidityRequest) (*dto.RemoveLiquidityResult, error)
	Swap(ctx context.Context, req dto.SwapRequest) (*dto.SwapResult, error)
	QuoteSwap(ctx context.Context, req dto.QuoteRequest) (*amm.SwapQuote, error)

	Estimate(ctx context.Context, req dto.EstimateRequest) (uint64, error)
	Fund(ctx context.Context, req dto.FundRequest) error
}

// PoolService represents struct for business logic.
type PoolService struct {
	store   *poolStore
	custody Custody
	shares  ShareLedger
	clock   Clock
	events  EventSink
	log     *zap.Logger

	defaultFee amm.FeeTier
	funder     Funder
	chain      uniswap.Client
}

// Option configures optional PoolService collaborators.
type Option func(*PoolService)

// WithDefaultFee sets the fee used when CreatePool is called without one.
func WithDefaultFee(fee amm.FeeTier) Option {
	return func(s *PoolService) { s.defaultFee = fee }
}

// WithFunder enables Fund.
func WithFunder(f Funder) Option {
	return func(s *PoolService) { s.funder = f }
}

// WithChainClient enables Estimate against on-chain Uniswap V2 pairs.
func WithChainClient(cli uniswap.Client) Option {
	return func(s *PoolService) { s.chain = cli }
}

// NewPoolService creates PoolService.
func NewPoolService(
	custody Custody,
	shares ShareLedger,
	clock Clock,
	events EventSink,
	logger *zap.Logger,
	opts ...Option,
) *PoolService {
	s := &PoolService{
		store:      newPoolStore(),
		custody:    custody,
		shares:     shares,
		clock:      clock,
		events:     events,
		log:        logger,
		defaultFee: amm.StandardFee,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PoolService) emit(ctx context.Context, ev amm.Event) {
	if err := s.events.Emit(ctx, ev); err != nil {
		s.log.Warn("event not delivered",
			zap.String("kind", string(ev.Kind)),
			zap.String("pool", ev.Pool.Hex()),
			zap.Uint64("marker", ev.Marker),
			zap.Error(err),
		)
	}
}
