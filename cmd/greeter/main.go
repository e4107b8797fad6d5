package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/greeter/internal/application/greeting"
	"github.com/aescanero/greeter/internal/config"
	"github.com/aescanero/greeter/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/greeter/pkg/api/grpc"
	"github.com/aescanero/greeter/pkg/api/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("starting greeter",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("hostname", os.Getenv(greeting.HostnameEnv)))

	greeter := greeting.NewService(nil)

	httpCfg := &http.Config{
		Port:              cfg.HTTPPort,
		ReadHeaderTimeout: cfg.Timeouts.ReadHeaderTimeout,
		Greeter:           greeter,
		Logger:            logger,
	}
	if cfg.Metrics.Enabled {
		collector := prometheus.NewCollector(promclient.DefaultRegisterer)
		collector.SetBuildInfo(Version)
		httpCfg.Metrics = collector
		httpCfg.Gatherer = promclient.DefaultGatherer
	}

	httpServer := http.NewServer(httpCfg)

	var grpcServer *grpc.Server
	if cfg.GRPC.Enabled {
		grpcServer, err = grpc.NewServer(&grpc.Config{
			Port:   cfg.GRPC.Port,
			Logger: logger,
		})
		if err != nil {
			logger.Fatal("failed to create gRPC server", zap.Error(err))
		}
	}

	// Start servers
	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	if grpcServer != nil {
		go func() {
			if err := grpcServer.Start(); err != nil {
				logger.Fatal("gRPC server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("greeter started",
		zap.String("http_addr", cfg.GetHTTPAddr()),
		zap.Bool("grpc_enabled", cfg.GRPC.Enabled),
		zap.String("grpc_addr", cfg.GetGRPCAddr()),
		zap.Bool("metrics_enabled", cfg.Metrics.Enabled))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	if grpcServer != nil {
		if err := grpcServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("gRPC server shutdown error", zap.Error(err))
		}
	}

	logger.Info("greeter shut down complete")
}

// initLogger initializes the logger based on log level and format
func initLogger(level, format string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	if format == "console" {
		config = zap.NewDevelopmentConfig()
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger, nil
}
