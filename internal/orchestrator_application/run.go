package orchestrator_application

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	pb "github.com/ERRORIK404/Keypad_Calculator/pkg/proto"
)

const shutdownTimeout = 10 * time.Second

// NewGRPCServer registers s on a gRPC server with authentication.
func NewGRPCServer(s *Server) *grpc.Server {
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(s.UnaryAuthInterceptor))
	pb.RegisterKeypadServer(grpcServer, s)
	return grpcServer
}

// RunServer serves gRPC on grpcAddr and HTTP on httpAddr until ctx is done.
func RunServer(ctx context.Context, s *Server, grpcAddr, httpAddr string) error {
	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	grpcServer := NewGRPCServer(s)
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		s.log.Info("grpc listening", zap.String("addr", lis.Addr().String()))
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("failed to serve grpc: %w", err)
		}
	}()
	go func() {
		s.log.Info("http listening", zap.String("addr", httpAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to serve http: %w", err)
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.log.Warn("http shutdown", zap.Error(err))
	}
	grpcServer.GracefulStop()
	return runErr
}
