package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mama165/sdk-go/logs"
	"golang.org/x/sync/errgroup"

	"github.com/Canishack/Financial-Data-Extraction-Project/internal/app"
	"github.com/Canishack/Financial-Data-Extraction-Project/internal/config"
)

func main() {
	// Handle SIGINT/SIGTERM for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		logs.GetLoggerFromString("ERROR").Error("startup.config", "error", err)
		os.Exit(1)
	}
	logger := logs.GetLoggerFromString(cfg.LogLevel)

	application, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("startup.failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = application.Close() }()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(application.Server.Start)
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.ShutdownTimeout)
		defer cancel()
		return application.Server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server.stopped", "error", err)
		return
	}
	logger.Info("server.stopped")
}
