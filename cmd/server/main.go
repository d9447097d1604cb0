// Command tq-server starts the token queue gRPC server.
package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	pb "github.com/and161185/token-queue/gen/go/tokenqueue/v1"
	"github.com/and161185/token-queue/internal/config"
	pkgcrypto "github.com/and161185/token-queue/internal/crypto"
	"github.com/and161185/token-queue/internal/feed"
	"github.com/and161185/token-queue/internal/limiter"
	"github.com/and161185/token-queue/internal/metrics"
	"github.com/and161185/token-queue/internal/migrate"
	"github.com/and161185/token-queue/internal/period"
	"github.com/and161185/token-queue/internal/repository/postgres"
	grpcserver "github.com/and161185/token-queue/internal/server/grpc"
	"github.com/and161185/token-queue/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

// main loads configuration, runs migrations, and serves the queue over gRPC.
func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
		zap.String("timezone", cfg.Location.String()),
	)

	opts := []grpc.ServerOption{}
	if cfg.Insecure {
		logger.Warn("serving plaintext, dev only")
		opts = append(opts, grpc.Creds(insecure.NewCredentials()))
	} else {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
		if err != nil {
			logger.Fatal("failed to load TLS cert/key", zap.Error(err))
		}
		opts = append(opts, grpc.Creds(creds))
	}

	// Context with OS signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := migrate.Up(ctx, cfg.DSN, logger); err != nil {
		logger.Fatal("migrate up", zap.Error(err))
	}

	// DB pool
	pool, err := postgres.Connect(ctx, cfg.DSN)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Change feed
	hub := feed.NewHub(logger, m)
	listener := feed.NewListener(feed.PoolSource(pool), hub, logger)
	go func() {
		if err := listener.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("feed listener", zap.Error(err))
		}
	}()

	// Repositories
	db := &postgres.DB{Pool: pool}
	shops := postgres.NewShopRepo(db)
	ledger := postgres.NewTokenLedger(db)
	owners := postgres.NewOwnerRepo(db)
	store := postgres.NewStore(db)

	lim := limiter.NewPG(pool, limiter.Policy{
		Window:   cfg.LoginWindow,
		MaxFails: cfg.LoginMaxFails,
		BlockFor: cfg.LoginBlock,
	})

	// Services
	oracle := period.New(period.SystemClock, cfg.Location)
	authSvc := service.NewAuthService(owners, pkgcrypto.Default, []byte(cfg.JWTKey), cfg.AccessTTL, lim, logger)
	queueSvc := service.NewQueueService(shops, ledger, store, oracle, hub, m, logger)

	// gRPC server with interceptors
	opts = append(opts,
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.MetricsUnary(m),
			grpcserver.LoggingUnary(logger),
			grpcserver.AuthUnary([]byte(cfg.JWTKey)),
		),
		grpc.ChainStreamInterceptor(
			grpcserver.RecoverStream(logger),
			grpcserver.MetricsStream(m),
			grpcserver.LoggingStream(logger),
		),
	)
	s := grpc.NewServer(opts...)

	app := grpcserver.New(authSvc, queueSvc, hub, logger)
	pb.RegisterQueueServer(s, app)

	// Health & reflection (dev)
	hs := health.NewServer()
	hs.SetServingStatus(pb.Queue_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Dev {
		reflection.Register(s)
	}

	// Listen
	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}

	errCh := make(chan error, 2)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.Bool("tls", !cfg.Insecure))
		errCh <- s.Serve(lis)
	}()

	var ms *http.Server
	if cfg.MetricsAddr != "" {
		ms = &http.Server{Addr: cfg.MetricsAddr, Handler: metrics.Handler(reg), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info("metrics listening", zap.String("addr", cfg.MetricsAddr))
			if err := ms.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	// Wait for stop
	select {
	case <-ctx.Done():
		hs.Shutdown()
		if ms != nil {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			_ = ms.Shutdown(sctx)
			cancel()
		}
		// graceful shutdown
		done := make(chan struct{})
		go func() {
			s.GracefulStop()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			s.Stop()
		}
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}
