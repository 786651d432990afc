package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/estate-service/internal/config"
	"github.com/light-bringer/estate-service/internal/services"
	grpcadmin "github.com/light-bringer/estate-service/internal/transport/grpc/admin"
	httptransport "github.com/light-bringer/estate-service/internal/transport/http"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load configuration from the environment
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log.Printf("Starting estate service (%s)...", cfg.Env)
	log.Printf("Spanner Database: %s", cfg.SpannerDB)
	log.Printf("gRPC Port: %s", cfg.GRPCPort)
	log.Printf("HTTP Port: %s", cfg.HTTPPort)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create gRPC admin server with reflection
	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpcadmin.UnaryAuth(serviceOpts.Tokens, serviceOpts.Principals)))
	grpcadmin.RegisterAdminServer(grpcServer, serviceOpts.AdminHandler)
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	go func() {
		log.Printf("gRPC server listening on :%s", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// 4. Create REST server
	e := httptransport.NewServer(httptransport.ServerConfig{
		Development: cfg.IsDevelopment(),
		CORSOrigins: cfg.CORSOrigins,
		BodyLimit:   services.BodyLimit(cfg),
	}, serviceOpts.Authenticator, serviceOpts.HTTPHandlers)

	httpServer := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// 5. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	grpcServer.GracefulStop()

	return nil
}
