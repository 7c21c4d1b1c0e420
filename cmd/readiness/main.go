package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeSquared-Agency/Readiness/internal/api"
	"github.com/MikeSquared-Agency/Readiness/internal/cache"
	"github.com/MikeSquared-Agency/Readiness/internal/catalog"
	"github.com/MikeSquared-Agency/Readiness/internal/config"
	"github.com/MikeSquared-Agency/Readiness/internal/hermes"
	"github.com/MikeSquared-Agency/Readiness/internal/scoring"
	"github.com/MikeSquared-Agency/Readiness/internal/store"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	scorePath := flag.String("score", "", "score an answers JSON file, print the report and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	sc, err := newScorer(cfg, logger)
	if err != nil {
		logger.Error("failed to build scorer", "error", err)
		os.Exit(1)
	}

	if *scorePath != "" {
		if err := scoreFile(sc, *scorePath, os.Stdout); err != nil {
			logger.Error("failed to score answers", "path", *scorePath, "error", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database (optional)
	var db store.Store
	if cfg.Database.URL != "" {
		pg, err := store.NewPostgresStore(ctx, cfg.Database.URL)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pg.Close()
		if err := pg.EnsureSchema(ctx); err != nil {
			logger.Error("failed to prepare database", "error", err)
			os.Exit(1)
		}
		db = pg
		logger.Info("connected to database")
	} else {
		logger.Warn("no database configured, assessments will not be stored")
	}

	// Hermes (optional)
	var hermesClient hermes.Client
	if cfg.Hermes.URL != "" {
		hc, err := hermes.NewNATSClient(ctx, cfg.Hermes.URL, logger)
		if err != nil {
			logger.Warn("failed to connect to hermes, running without events", "error", err)
		} else {
			hermesClient = hc
			defer hc.Close()
			logger.Info("connected to hermes")
		}
	}

	// Report cache (optional)
	var reportCache cache.ReportCache
	if cfg.Cache.Addr != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err != nil {
			logger.Warn("failed to connect to redis, running without report cache", "error", err)
		} else {
			reportCache = cache.NewReportCache(rdb, cfg.CacheTTL())
			defer reportCache.Close()
			logger.Info("connected to redis", "ttl", cfg.CacheTTL())
		}
	}

	notifier := hermes.NewNotifier(hermesClient, logger)

	// API server
	router := api.NewRouter(sc, db, reportCache, notifier, cfg.Server.RateLimitPerMinute, logger)
	apiServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Metrics server
	metricsServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.MetricsPort),
		Handler: api.NewMetricsRouter(),
	}

	go func() {
		logger.Info("API server starting", "port", cfg.Server.Port)
		if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("API server error", "error", err)
		}
	}()

	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
			logger.Error("metrics server error", "error", err)
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = apiServer.Shutdown(shutdownCtx)
	_ = metricsServer.Shutdown(shutdownCtx)

	logger.Info("shutdown complete")
}

func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Logging.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func newScorer(cfg *config.Config, logger *slog.Logger) (*scoring.Scorer, error) {
	c := catalog.Default()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return nil, err
		}
		c = loaded
		logger.Info("loaded question catalog", "path", cfg.Catalog.Path, "questions", c.Len())
	}

	weights := scoring.OverallWeights{
		Psychometric: cfg.Scoring.Weights.Psychometric,
		Technical:    cfg.Scoring.Weights.Technical,
		WISCAR:       cfg.Scoring.Weights.WISCAR,
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("scoring weights: %w", err)
	}
	return scoring.NewScorer(c, weights, logger), nil
}

// scoreFile reads answers from path, either a bare array or an object with an
// "answers" field, and writes the indented report to w.
func scoreFile(sc *scoring.Scorer, path string, w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read answers: %w", err)
	}

	var answers []scoring.Answer
	if err := json.Unmarshal(data, &answers); err != nil {
		var wrapped struct {
			Answers []scoring.Answer `json:"answers"`
		}
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			return fmt.Errorf("parse answers: %w", err)
		}
		answers = wrapped.Answers
	}

	report, err := sc.Score(answers)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
