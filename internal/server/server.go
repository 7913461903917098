package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const shutdownTimeout = 10 * time.Second

// Server runs the HTTP storefront and a gRPC endpoint carrying the standard
// health service.
type Server struct {
	log      *slog.Logger
	httpAddr string
	grpcAddr string

	http   *http.Server
	grpc   *grpc.Server
	health *health.Server
}

func New(log *slog.Logger, host string, httpPort, grpcPort int, handler http.Handler) *Server {
	if log == nil {
		log = slog.Default()
	}

	hs := health.NewServer()
	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)

	return &Server{
		log:      log,
		httpAddr: net.JoinHostPort(host, fmt.Sprint(httpPort)),
		grpcAddr: net.JoinHostPort(host, fmt.Sprint(grpcPort)),
		http: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		grpc:   gs,
		health: hs,
	}
}

// Run listens on the configured addresses and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	httpLis, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen http %s: %w", s.httpAddr, err)
	}
	grpcLis, err := net.Listen("tcp", s.grpcAddr)
	if err != nil {
		_ = httpLis.Close()
		return fmt.Errorf("listen grpc %s: %w", s.grpcAddr, err)
	}
	return s.Serve(ctx, httpLis, grpcLis)
}

// Serve blocks until ctx is done or either server fails, then stops both.
func (s *Server) Serve(ctx context.Context, httpLis, grpcLis net.Listener) error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server starting", slog.String("addr", httpLis.Addr().String()))
		if err := s.http.Serve(httpLis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s.log.Info("grpc starting", slog.String("addr", grpcLis.Addr().String()))
		if err := s.grpc.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		s.log.Info("shutdown requested")
		s.shutdown()
		return nil
	})

	return g.Wait()
}

func (s *Server) shutdown() {
	s.health.Shutdown()

	stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.http.Shutdown(stopCtx); err != nil {
		s.log.Error("http shutdown error", slog.Any("err", err))
	}

	stopped := make(chan struct{})
	go func() {
		s.grpc.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopCtx.Done():
		s.log.Warn("graceful stop timeout, forcing stop")
		s.grpc.Stop()
	case <-stopped:
	}
}
