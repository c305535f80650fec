package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rewardfare-service/internal/infrastructure/config"
	"rewardfare-service/internal/infrastructure/persistence"
	"rewardfare-service/internal/interface/pricing"
	"rewardfare-service/internal/interface/repository"
	"rewardfare-service/internal/usecase"
	"rewardfare-service/pkg/logger"
	"rewardfare-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	domainRepo "rewardfare-service/internal/domain/repository"
)

func main() {
	// Load configuration first so the logger honours LOG_LEVEL
	cfg, err := config.LoadConfig()
	if err != nil {
		log := logger.NewLogger("info")
		log.Fatal("Failed to load config", "error", err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Rewardfare Service", "version", cfg.AppVersion, "strategy", cfg.Strategy)

	// Set up context cancelled on SIGINT/SIGTERM
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Info("Received signal", "signal", sig)
		cancel()
	}()

	// Set up PostgreSQL connection
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up the optional MongoDB run-report archive
	var mongoClient *mongo.Client
	var reportRepo domainRepo.RunReportRepository
	if cfg.MongoURI != "" {
		log.Info("Connecting to MongoDB")
		client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Warn("Run reports disabled: MongoDB unavailable", "error", err)
		} else {
			mongoClient = client
			reportRepo = repository.NewMongoRunReportRepository(db)
		}
	}

	// Set up repositories and the pricing client
	referenceRepo := repository.NewGormReferenceRepository(gormDB)
	flightRepo := repository.NewGormRewardFlightRepository(gormDB)
	pricingRepo := pricing.NewCalendarClient(cfg.PricingBaseURL, cfg.Strategy, cfg.HTTPTimeout, log)

	runMetrics := metrics.NewMetrics("rewardfare")
	transformer := usecase.NewTransformer(cfg.Strategy)
	pipeline := usecase.NewPipeline(
		referenceRepo,
		flightRepo,
		reportRepo,
		pricingRepo,
		transformer,
		runMetrics,
		log,
		cfg.RewardProgram,
		cfg.CountryCode,
		cfg.Strategy,
	)

	// Set up HTTP server for metrics while the run is in flight
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.MetricsPort,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		log.Info("Starting metrics server", "port", cfg.MetricsPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Metrics server error", "error", err)
		}
	}()

	// One complete pass per invocation; scheduling is external
	exitCode := 0
	if err := pipeline.Run(ctx); err != nil {
		log.Error("Pipeline run failed", "error", err)
		exitCode = 1
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", "error", err)
	}

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Rewardfare Service stopped", "exitCode", exitCode)
	log.Sync()
	os.Exit(exitCode)
}
