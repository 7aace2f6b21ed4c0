package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	grpclib "google.golang.org/grpc"

	grpcadapter "github.com/simaogato/wallet-backend/internal/adapter/grpc"
	walletv1 "github.com/simaogato/wallet-backend/internal/adapter/grpc/wallet/v1"
	"github.com/simaogato/wallet-backend/internal/app"
	"github.com/simaogato/wallet-backend/internal/config"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", "err", err)
	}

	logger, err := app.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to create logger", "err", err)
	}

	// 2. Store, repositories and services
	ctx := context.Background()
	wallet, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize wallet", "backend", cfg.Store.Backend, "err", err)
	}
	defer wallet.Close()

	// Seed so that reads before the first login see the initial balance
	if err := wallet.SessionService.Seed(ctx); err != nil {
		logger.Fatal("Failed to seed wallet", "err", err)
	}
	logger.Info("Wallet ready", "backend", cfg.Store.Backend)

	// 3. gRPC server
	grpcServer := grpclib.NewServer(
		grpclib.ChainUnaryInterceptor(
			grpcadapter.LoggingInterceptor(logger),
			grpcadapter.AuthInterceptor(cfg.GRPC.APIToken),
		),
	)

	walletv1.RegisterWalletServiceServer(grpcServer, grpcadapter.NewServer(
		wallet.SessionService,
		wallet.LedgerService,
		wallet.ContactService,
		wallet.TransferService,
		wallet.DashboardService,
	))

	lis, err := net.Listen("tcp", cfg.GRPC.Port)
	if err != nil {
		logger.Fatal("Failed to listen", "addr", cfg.GRPC.Port, "err", err)
	}

	go func() {
		logger.Info("gRPC server listening", "addr", cfg.GRPC.Port)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Fatal("Failed to serve gRPC server", "err", err)
		}
	}()

	waitForShutdown(logger, grpcServer)
}

// waitForShutdown waits for SIGTERM or SIGINT and gracefully shuts down the server
func waitForShutdown(logger *log.Logger, grpcServer *grpclib.Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	sig := <-sigChan
	logger.Info("Shutting down gracefully", "signal", sig.String())

	grpcServer.GracefulStop()
	logger.Info("gRPC server stopped")
}
