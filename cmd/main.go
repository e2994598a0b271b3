package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	app "github.com/okian/repute/internal/app"
	"github.com/okian/repute/internal/config"
	"github.com/okian/repute/internal/sim"
	"github.com/okian/repute/pkg/logger"
	"github.com/okian/repute/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Logger isn't available yet, write directly to stderr
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	startDate, err := cfg.ParseStartDate()
	if err != nil {
		log.Error(ctx, "invalid start_date", logger.String("start_date", cfg.StartDate), logger.Error(err))
		return
	}

	// Build the reputation service from configuration.
	svc := app.New(ctx,
		app.WithLogger(log),
		app.WithStartDate(startDate),
		app.WithHistoryWindow(cfg.HistoryDays),
		app.WithInactivityThreshold(cfg.InactivityDays),
		app.WithMaxTenureBonus(cfg.MaxTenureBonus),
		app.WithWeightOverrides(cfg.WeightOverrides),
	)

	// Optional Prometheus listener. The demo is useful without it, so an
	// empty address simply skips the server.
	var srv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{}))

		srv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       idleTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
		}
		go func() {
			log.Info(ctx, "starting metrics server", logger.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error(ctx, "metrics server failed", logger.Error(err))
			}
		}()
	}

	// Run the narrated demo simulation.
	runner := sim.New(svc, os.Stdout, sim.WithLogger(log))
	if err := runner.Run(ctx); err != nil {
		log.Error(ctx, "simulation failed", logger.Error(err))
	}

	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error(ctx, "metrics server shutdown failed", logger.Error(err))
		}
	}

	log.Info(ctx, "done")
}
