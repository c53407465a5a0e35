package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logiflow/cmd"
	httpin "logiflow/internal/adapters/in/http"
	"logiflow/internal/pkg/telemetry"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const (
	serviceName     = "logiflow"
	shutdownTimeout = 10 * time.Second
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, configs.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Error setting up tracing: %v", err)
	}

	app := cmd.NewCompositionRoot(ctx, configs, logger)

	e, err := httpin.NewRouter(ctx, app.CreateServer(), httpin.RouterConfig{
		AllowOrigins: configs.CORSAllowOrigins,
		Logger:       logger,
	})
	if err != nil {
		log.Fatalf("Error building router: %v", err)
	}

	startWebServer(ctx, e, configs.HTTPPort, logger)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = app.Close(shutdownCtx); err != nil {
		logger.Error("failed to close document store", "error", err)
	}
	if err = shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}
}

// startWebServer serves until ctx is cancelled, then drains in-flight requests.
func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) {
	addr := fmt.Sprintf("0.0.0.0:%s", port)

	go func() {
		logger.Info("http server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting http server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", "error", err)
	}
}
