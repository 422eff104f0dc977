package server

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

func TestLoggingInterceptor(t *testing.T) {
	logger := zaptest.NewLogger(t)

	interceptor := LoggingInterceptor(logger)

	info := &grpc.UnaryServerInfo{
		FullMethod: "/cleanops.survey.v1.SurveyDashboard/GetMetricsSummary",
	}

	t.Run("successful request", func(t *testing.T) {
		handler := func(ctx context.Context, req any) (any, error) {
			return "ok", nil
		}

		resp, err := interceptor(context.Background(), "request", info, handler)
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
		if resp != "ok" {
			t.Errorf("Expected 'ok', got %v", resp)
		}
	})

	t.Run("failed request keeps the status code", func(t *testing.T) {
		handler := func(ctx context.Context, req any) (any, error) {
			return nil, status.Error(codes.InvalidArgument, "bad filter")
		}

		_, err := interceptor(context.Background(), "request", info, handler)
		if err == nil {
			t.Fatal("Expected an error, got nil")
		}

		st, ok := status.FromError(err)
		if !ok {
			t.Error("Expected gRPC status error")
		}
		if st.Code() != codes.InvalidArgument {
			t.Errorf("Expected InvalidArgument, got %v", st.Code())
		}
	})
}

func TestServerBuilderWithLogging(t *testing.T) {
	logger := zaptest.NewLogger(t)

	server, err := New(
		WithPort(50052),
		WithLogger(logger),
		WithLogging(true),
	)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}
	defer func() {
		if err := server.Shutdown(context.Background()); err != nil {
			t.Logf("Server shutdown error: %v", err)
		}
	}()

	if server.grpcServer == nil {
		t.Error("gRPC server should not be nil")
	}
	if server.logger == nil {
		t.Error("Logger should not be nil")
	}
	if server.healthServer == nil {
		t.Error("Health server should not be nil")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	conn, err := grpc.NewClient(server.lis.Addr().String(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("Failed to dial server: %v", err)
	}
	defer conn.Close()

	server.Start()

	time.Sleep(100 * time.Millisecond)

	healthClient := healthpb.NewHealthClient(conn)
	resp, err := healthClient.Check(ctx, &healthpb.HealthCheckRequest{})
	if err != nil {
		t.Fatalf("Health check failed: %v", err)
	}
	if resp.Status != healthpb.HealthCheckResponse_SERVING {
		t.Errorf("Expected SERVING status, got %v", resp.Status)
	}
}

func TestServerBuilderInvalidPort(t *testing.T) {
	if _, err := New(WithPort(0)); err == nil {
		t.Error("Expected an error for port 0")
	}
	if _, err := New(WithPort(70000)); err == nil {
		t.Error("Expected an error for an out-of-range port")
	}
}
