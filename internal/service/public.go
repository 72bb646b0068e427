package service

import (
	"context"
	"fmt"
	"net"
	"sync"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"locus-bot/internal/config"
	"locus-bot/internal/utils/grpczap"
)

// RunServices serves the gRPC health service until ctx is cancelled. The
// returned server reports NOT_SERVING until the caller marks it ready.
func RunServices(ctx context.Context, logger *zap.SugaredLogger, wg *sync.WaitGroup, cfg *config.Config) *health.Server {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		logger.Fatalw("failed to listen", "error", err)
	}

	opts := []logging.Option{
		logging.WithLogOnEvents(logging.StartCall, logging.FinishCall),
	}

	s := grpc.NewServer(grpc.ChainUnaryInterceptor(
		logging.UnaryServerInterceptor(grpczap.InterceptorLogger(logger.Desugar()), opts...),
	))

	if cfg.Development {
		reflection.Register(s)
	}

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	grpc_health_v1.RegisterHealthServer(s, healthSrv)
	logger.Infow("listening for gRPC requests", "port", cfg.GRPCPort)

	go func() {
		if err := s.Serve(lis); err != nil {
			logger.Fatalw("failed to serve", "error", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		healthSrv.Shutdown()
		s.GracefulStop()
	}()

	return healthSrv
}

// SetReady marks the health service as SERVING.
func SetReady(healthSrv *health.Server) {
	healthSrv.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
}
