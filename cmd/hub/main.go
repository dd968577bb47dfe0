package main

import (
	"accelerator-hub/auth"
	"accelerator-hub/infrastructure/grpc/server"
	"accelerator-hub/infrastructure/ws"
	"accelerator-hub/internal"
	"accelerator-hub/observability"
	pb "accelerator-hub/proto/hub/v1"
	"accelerator-hub/repositories"
	"accelerator-hub/runtime"
	"accelerator-hub/runtime/workers"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"

	grpc3 "github.com/mama165/sdk-go/grpc"
)

// Exit codes to provide meaningful status to the service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hub terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and owns the server lifecycle, so that deferred
// cleanups still happen before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}

	logger := logs.GetLoggerFromString(config.LogLevel)
	started := time.Now()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Optional user directory (BadgerDB)
	var (
		db    *badger.DB
		users repositories.IUserRepository
	)
	if config.UserDirectoryPath != "" {
		var err error
		db, err = badger.Open(buildBadgerOpts(config, logger, ctx))
		if err != nil {
			return exitRuntime, fmt.Errorf("user directory opening failed: %w", err)
		}
		defer func() {
			logger.Info("Closing user directory...")
			_ = db.Close()
		}()
		users = repositories.NewUserRepository(db)
		logger.Info("User directory enabled", "path", config.UserDirectoryPath)
	}

	// 3. Runtime
	monitoring := observability.NewMonitoringManager(logger)
	registry := runtime.NewRegistry()
	supervisor := workers.NewSupervisor(logger, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, supervisor, registry, monitoring)
	orchestrator.Add(workers.NewStatsReporterWorker(logger, monitoring, registry, config.MetricInterval))

	verifier := auth.NewVerifier(logger, []byte(config.JwtSecret), users)
	wsHandler := ws.NewHandler(logger, verifier, orchestrator, monitoring, config.AllowedOrigins(), ws.Options{
		MaxMessageSize:     config.MaxMessageSize,
		InboundBufferSize:  config.InboundBufferSize,
		OutboundBufferSize: config.ConnectionBufferSize,
		PingInterval:       config.PingInterval,
		PongWait:           config.PongWait,
		WriteTimeout:       config.WriteTimeout,
		RateLimit:          rate.Limit(config.RateLimitPerSecond),
		RateBurst:          config.RateLimitBurst,
	})

	errChan := make(chan error, 3)

	go func() {
		logger.Info("Starting orchestrator...")
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	// 4. HTTP server: WebSocket endpoint and health
	mux := http.NewServeMux()
	mux.Handle("/ws", wsHandler)
	mux.Handle("/api/health", internal.NewHealthHandler(started, registry, orchestrator.Presence(), monitoring))
	if db != nil && logger.Enabled(ctx, slog.LevelDebug) {
		mux.Handle("/debug/inspect", internal.InspectHandler(db, "user:", UserMapper))
		logger.Info("Debug Badger inspector available", "path", "/debug/inspect")
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("Starting HTTP server", "address", httpServer.Addr, "origins", config.AllowedOrigins())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 5. gRPC notifier for the CRUD API
	grpcAddress := fmt.Sprintf("%s:%d", config.Host, config.GrpcPort)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}
	if config.NotifierKeyHash == "" {
		logger.Warn("NOTIFIER_KEY_HASH is empty, every notifier call will be rejected")
	}
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			auth.AuthInterceptor(logger, auth.NewKeyChecker(config.NotifierKeyHash)),
		))
	pb.RegisterNotifierServiceServer(grpcServer, server.NewNotifierServer(logger, orchestrator))

	go func() {
		logger.Info("Starting gRPC server", "address", grpcAddress, "at", time.Now().UTC())
		for serviceName := range grpcServer.GetServiceInfo() {
			logger.Debug("gRPC exposed service", "name", serviceName)
		}
		if err := grpcServer.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	exitCode := exitOK
	var runErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case runErr = <-errChan:
		exitCode = exitRuntime
	}

	// 7. Graceful Shutdown: stop admitting, close live sessions, stop workers
	logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown incomplete", "error", err)
	}
	if err := wsHandler.Shutdown(shutdownCtx); err != nil {
		logger.Warn("WebSocket sessions still open at deadline", "error", err)
	}
	grpcServer.GracefulStop()
	orchestrator.Stop()
	logger.Info("Program stopped cleanly", "uptime", time.Since(started).Round(time.Second))

	return exitCode, runErr
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.UserDirectoryPath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG)
	}
	return options.WithLoggingLevel(badger.WARNING)
}

// UserMapper renders directory entries in the debug inspector.
func UserMapper(key string, val []byte) internal.InspectRow {
	row := internal.DefaultMapper(key, val)
	user, err := repositories.DecodeUser(val)
	if err != nil {
		row.Detail = "Error: decode failed"
		return row
	}
	row.Type = string(user.Role)
	row.Detail = fmt.Sprintf("id=%s disabled=%t created=%s", user.ID, user.Disabled, user.CreatedAt.UTC().Format(time.RFC3339))
	return row
}
