package grpc

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Pinger reports whether a dependency is reachable.
type Pinger func(ctx context.Context) error

type HealthServer struct {
	server *grpc.Server
	health *health.Server
	log    *zap.Logger
}

func NewHealthServer(log *zap.Logger) *HealthServer {
	srv := grpc.NewServer()
	h := health.NewServer()
	h.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	grpc_health_v1.RegisterHealthServer(srv, h)
	reflection.Register(srv)

	return &HealthServer{server: srv, health: h, log: log}
}

func (h *HealthServer) Serve(lis net.Listener) error {
	h.log.Info("starting gRPC health server", zap.String("addr", lis.Addr().String()))
	return h.server.Serve(lis)
}

// Watch flips the overall status with the result of ping until ctx ends.
func (h *HealthServer) Watch(ctx context.Context, ping Pinger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	serving := true
	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, interval)
			err := ping(pctx)
			cancel()

			switch {
			case err != nil && serving:
				h.log.Warn("dependency check failed, reporting NOT_SERVING", zap.Error(err))
				h.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
				serving = false
			case err == nil && !serving:
				h.log.Info("dependency check recovered, reporting SERVING")
				h.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
				serving = true
			}
		case <-ctx.Done():
			return
		}
	}
}

func (h *HealthServer) Stop() {
	h.health.Shutdown()
	h.server.GracefulStop()
}
