package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ritikbhatt20/Vortex/internal/config"
	"github.com/ritikbhatt20/Vortex/internal/infra/uniswap"
	"github.com/ritikbhatt20/Vortex/internal/ledger"
	"github.com/ritikbhatt20/Vortex/internal/logging"
	"github.com/ritikbhatt20/Vortex/internal/service"
	"github.com/ritikbhatt20/Vortex/internal/storage"
	"github.com/ritikbhatt20/Vortex/internal/storage/postgres"
	transport "github.com/ritikbhatt20/Vortex/internal/transport/http"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE:  runServe,
	}
	cmd.Flags().String("listen", "", "listen address, overrides listen_addr")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().String("rpc", "", "Ethereum RPC URL for /estimate, overrides rpc_url")
	cmd.Flags().Bool("faucet", false, "enable POST /faucet, overrides faucet_enabled")
	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("listen") {
		cfg.ListenAddr, _ = flags.GetString("listen")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("rpc") {
		cfg.RPCURL, _ = flags.GetString("rpc")
	}
	if flags.Changed("faucet") {
		cfg.FaucetEnabled, _ = flags.GetBool("faucet")
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, closeSinks, err := buildSinks(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSinks()

	led := ledger.NewMemory()
	opts := []service.Option{service.WithDefaultFee(cfg.DefaultFee)}
	if cfg.FaucetEnabled {
		opts = append(opts, service.WithFunder(led))
	}
	if cfg.RPCURL != "" {
		client, err := uniswap.NewClient(cfg.RPCURL, cfg.RPCCallTimeout)
		if err != nil {
			return errors.Wrap(err, "uniswap.NewClient")
		}
		opts = append(opts, service.WithChainClient(client))
	}

	svc := service.NewPoolService(led, led, &service.SystemClock{}, sink, logger, opts...)

	srv, err := transport.NewServer(svc, cfg, logger)
	if err != nil {
		return errors.Wrap(err, "transport.NewServer")
	}

	logger.Info("vortex starting",
		zap.String("addr", cfg.ListenAddr),
		zap.Strings("sinks", cfg.Events.Sinks),
		zap.Bool("faucet", cfg.FaucetEnabled),
		zap.Bool("estimate", cfg.RPCURL != ""),
	)
	return srv.ListenAndServe(ctx, cfg.ListenAddr)
}

// buildSinks wires the configured event sinks into one fanout.
func buildSinks(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Sink, func(), error) {
	var (
		sinks   storage.Fanout
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	for _, kind := range cfg.Events.Sinks {
		switch kind {
		case config.SinkLog:
			sinks = append(sinks, storage.NewLogSink(logger))
		case config.SinkJSONL:
			sinks = append(sinks, storage.NewJSONLSink(cfg.Events.Path))
		case config.SinkPostgres:
			store, err := postgres.NewStore(ctx, cfg.Events.PostgresDSN)
			if err != nil {
				closeAll()
				return nil, nil, err
			}
			closers = append(closers, store.Close)
			if err := store.Migrate(ctx); err != nil {
				closeAll()
				return nil, nil, err
			}
			sinks = append(sinks, store)
		default:
			closeAll()
			return nil, nil, errors.Errorf("unknown event sink %q", kind)
		}
	}
	return sinks, closeAll, nil
}
