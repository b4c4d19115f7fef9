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

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/telemetry"

	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configs, logger); err != nil {
		logger.Error("service stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configs cmd.Config, logger *slog.Logger) error {
	var shutdowns []func(context.Context) error
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for i := len(shutdowns) - 1; i >= 0; i-- {
			if err := shutdowns[i](shutdownCtx); err != nil {
				logger.Error("telemetry shutdown failed", "error", err)
			}
		}
	}()

	if configs.OTELEndpoint != "" {
		shutdownTracer, err := telemetry.InitTracerProvider(ctx, configs.OTELEndpoint, configs.ServiceName, configs.ServiceVersion)
		if err != nil {
			return err
		}
		shutdowns = append(shutdowns, shutdownTracer)
	}

	metricsHandler, shutdownMeter, err := telemetry.InitMeterProvider(configs.ServiceName, configs.ServiceVersion)
	if err != nil {
		return err
	}
	shutdowns = append(shutdowns, shutdownMeter)

	dispatchMetrics, err := telemetry.NewDispatchMetrics()
	if err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(ctx, configs, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to release adapters", "error", err)
		}
	}()

	app.UseDispatchMetrics(dispatchMetrics)

	jobManager, err := app.NewJobManager()
	if err != nil {
		return err
	}

	server := httpin.NewServer(app.HTTPHandlers(), app.SessionStore(), configs.SessionTTL, logger)
	router := httpin.NewRouter(server, metricsHandler)

	httpServer := &http.Server{
		Addr: fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort),
		Handler: otelhttp.NewHandler(router, configs.ServiceName,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	if err := jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", "port", configs.HTTPPort, "storage", configs.Storage)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
