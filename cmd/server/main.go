package main

import (
	"log"

	"github.com/jengzang/walktrack-backend-go/internal/api"
	"github.com/jengzang/walktrack-backend-go/internal/config"
	"github.com/jengzang/walktrack-backend-go/internal/database"
	"github.com/jengzang/walktrack-backend-go/internal/motion"
	"github.com/jengzang/walktrack-backend-go/internal/repository"
	"github.com/jengzang/walktrack-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	sessionRepo := repository.NewSessionRepository(db)
	stepsRepo := repository.NewStepsRepository(db)

	tracker := service.NewTrackerService(motion.Config{
		Threshold:       cfg.StepThreshold,
		MinStepInterval: cfg.StepInterval,
	}, sessionRepo, stepsRepo)
	statsService := service.NewStatsService(sessionRepo, stepsRepo, tracker)

	router := api.SetupRouter(cfg, tracker, statsService)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
