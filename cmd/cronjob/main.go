package main

import (
	"database/sql"
	"flag"
	"log"

	"warehouse-backend/internal/config"
	"warehouse-backend/internal/jobs"
	"warehouse-backend/internal/logger"
	"warehouse-backend/internal/repository/postgres"
	"warehouse-backend/internal/service"

	_ "github.com/lib/pq"
)

// One-shot runner for the scheduled jobs, for manual execution and for
// environments where the in-process scheduler is disabled.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	jobName := flag.String("job", "refresh-recommendations", "Job to run")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	recommendationSvc := service.NewRecommendationService(store.ReservationRepository, service.ScoringPolicy{
		FrequencyWeight: cfg.Engine.Recommendation.FrequencyWeight,
		DaysWeight:      cfg.Engine.Recommendation.DaysWeight,
		HighThreshold:   cfg.Engine.Recommendation.HighThreshold,
		MediumThreshold: cfg.Engine.Recommendation.MediumThreshold,
	})

	jobRunner := jobs.NewJobRunner(&jobs.Services{Recommendation: recommendationSvc}, cfg)

	switch *jobName {
	case "refresh-recommendations":
		jobRunner.RefreshPurchaseRecommendations()
	default:
		log.Fatalf("Unknown job: %s", *jobName)
	}
}
