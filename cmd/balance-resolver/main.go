package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/balanceprobe/internal/config"
	"github.com/goodnatureofminers/balanceprobe/internal/metrics"
	"github.com/goodnatureofminers/balanceprobe/internal/provider"
	"github.com/goodnatureofminers/balanceprobe/internal/repository/clickhouse"
	"github.com/goodnatureofminers/balanceprobe/internal/service"
	"github.com/goodnatureofminers/balanceprobe/internal/sink"
	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type options struct {
	Input          string        `long:"input" env:"BALANCE_RESOLVER_INPUT" description:"newline-delimited address list" default:"addresses.txt"`
	Output         string        `long:"output" env:"BALANCE_RESOLVER_OUTPUT" description:"file receiving funded addresses" default:"found_balances.txt"`
	Progress       string        `long:"progress" env:"BALANCE_RESOLVER_PROGRESS" description:"checkpoint file" default:"last_index.txt"`
	MinBalance     uint64        `long:"min-balance" env:"BALANCE_RESOLVER_MIN_BALANCE" description:"funded threshold in satoshi" default:"1000"`
	Workers        int           `long:"workers" env:"BALANCE_RESOLVER_WORKERS" description:"concurrent requests and requests per second" default:"5"`
	RequestTimeout time.Duration `long:"request-timeout" env:"BALANCE_RESOLVER_REQUEST_TIMEOUT" description:"timeout of a single provider request" default:"10s"`
	Providers      []string      `long:"provider" env:"BALANCE_RESOLVER_PROVIDERS" env-delim:"," description:"provider names in fallback order (repeatable); defaults to every configured provider"`
	ProvidersFile  string        `long:"providers-file" env:"BALANCE_RESOLVER_PROVIDERS_FILE" description:"YAML provider registry; built-in providers when empty"`
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"BALANCE_RESOLVER_CLICKHOUSE_DSN" description:"optional ClickHouse DSN mirroring funded addresses"`
	MetricsAddr    string        `long:"metrics-addr" env:"BALANCE_RESOLVER_METRICS_ADDR" description:"address for metrics server, empty disables it" default:":2112"`
	NoColor        bool          `long:"no-color" env:"BALANCE_RESOLVER_NO_COLOR" description:"disable colored console output"`
}

func main() {
	cfg := options{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	runID := uuid.New()
	logger = logger.With(zap.String("run_id", runID.String()))

	if err := run(ctx, cfg, runID, logger); err != nil {
		logger.Fatal("balance resolver failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg options, runID uuid.UUID, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	registry, err := config.Registry(cfg.ProvidersFile, cfg.Providers)
	if err != nil {
		return fmt.Errorf("init providers: %w", err)
	}

	var mirrors []sink.FundedWriter
	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error("close repository", zap.Error(err))
			}
		}()

		writer := sink.NewBatchWriter(repo, runID, logger.Named("clickhouse"), nil)
		// the batcher outlives ctx so that entries recorded during shutdown are flushed
		writer.Start(context.WithoutCancel(ctx))
		defer writer.Stop()
		mirrors = append(mirrors, writer)
	}

	svc, err := service.NewBalanceResolverService(
		service.Config{
			InputPath:      cfg.Input,
			OutputPath:     cfg.Output,
			ProgressPath:   cfg.Progress,
			MinBalance:     cfg.MinBalance,
			Workers:        cfg.Workers,
			RequestTimeout: cfg.RequestTimeout,
			Seed:           rand.IntN(provider.UserAgentCount()),
			Color:          !cfg.NoColor,
		},
		registry,
		&http.Client{},
		os.Stdout,
		logger,
		mirrors...,
	)
	if err != nil {
		return err
	}

	if _, err := svc.Run(ctx); err != nil {
		return err
	}
	if ctx.Err() != nil {
		logger.Warn("interrupted, run again to resume from the checkpoint", zap.String("progress", cfg.Progress))
	}
	return nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
