package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	httpapi "warehouse-backend/internal/api/http"
	"warehouse-backend/internal/config"
	"warehouse-backend/internal/jobs"
	"warehouse-backend/internal/logger"
	"warehouse-backend/internal/repository/postgres"
	"warehouse-backend/internal/scheduler"
	"warehouse-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting warehouse backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Engine configuration", "concurrency_control", cfg.Engine.ConcurrencyControl)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	catalogSvc := service.NewCatalogService(
		store.ItemRepository,
		store.CategoryRepository,
		store.KitRepository,
		store.ReservationRepository,
	)
	availabilitySvc := service.NewAvailabilityService(store.ItemRepository, store.ReservationRepository)
	reservationSvc := service.NewReservationService(
		store.ReservationRepository,
		store.ItemRepository,
		store.KitRepository,
		cfg.GuardMode(),
	)
	recommendationSvc := service.NewRecommendationService(store.ReservationRepository, service.ScoringPolicy{
		FrequencyWeight: cfg.Engine.Recommendation.FrequencyWeight,
		DaysWeight:      cfg.Engine.Recommendation.DaysWeight,
		HighThreshold:   cfg.Engine.Recommendation.HighThreshold,
		MediumThreshold: cfg.Engine.Recommendation.MediumThreshold,
	})

	jobRunner := jobs.NewJobRunner(&jobs.Services{Recommendation: recommendationSvc}, cfg)
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	router := httpapi.NewRouter(catalogSvc, availabilitySvc, reservationSvc, recommendationSvc)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
