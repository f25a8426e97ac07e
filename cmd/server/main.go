package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"businessghat/config"
	"businessghat/internal/adapters/content"
	"businessghat/internal/adapters/luma"
	deliveryhttp "businessghat/internal/delivery/http"
	"businessghat/internal/delivery/http/controllers"
	"businessghat/internal/delivery/http/middleware"
	"businessghat/internal/domain"
	"businessghat/internal/repository/postgres"
	"businessghat/internal/services"
)

// @title Multi Channel Business Ghat site API
// @version 1.0
// @description Luma event feed, site metadata and marketing content for the Multi Channel Business Ghat website.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := newFeedSource(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize event feed source", "source", cfg.EventsSource, "err", err)
		os.Exit(1)
	}
	defer closeSource()

	store, err := content.NewStore()
	if err != nil {
		logger.Error("failed to load site content", "err", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(reg)

	eventsController := controllers.NewLumaEventsController(logger, services.NewLumaEventService(source), metrics.FeedFailures)
	siteController := controllers.NewSiteController(store)
	mux := deliveryhttp.NewRouter(eventsController, siteController, os.DirFS(cfg.PublicDir), reg)

	var handler http.Handler = mux
	handler = middleware.MetricsMiddleware(metrics, handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(logger, handler)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "addr", srv.Addr, "env", cfg.Environment, "events_source", cfg.EventsSource, "public_dir", cfg.PublicDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}

// newFeedSource builds the configured FeedSource and a cleanup func for its resources.
func newFeedSource(ctx context.Context, cfg *config.Config) (domain.FeedSource, func(), error) {
	switch cfg.EventsSource {
	case config.EventsSourcePostgres:
		db, err := postgres.Open(ctx, cfg.DBUrl)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewLumaExportRepository(db), func() { _ = db.Close() }, nil
	default:
		return luma.NewFileSource(os.DirFS(cfg.PublicDir)), func() {}, nil
	}
}
