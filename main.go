package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartscheduler/config"
	"smartscheduler/database"
	assignmentRepo "smartscheduler/database/repository/assignment"
	contractorRepo "smartscheduler/database/repository/contractor"
	jobRepo "smartscheduler/database/repository/job"
	"smartscheduler/handlers"
	"smartscheduler/middleware"
	"smartscheduler/routes"
	"smartscheduler/services/distance"
	"smartscheduler/services/recommendation"
	"smartscheduler/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	contractors := contractorRepo.NewMongoContractorRepo()
	jobs := jobRepo.NewMongoJobRepo()
	assignments := assignmentRepo.NewMongoAssignmentRepo()

	// services.
	distanceProvider := distance.NewGoogleMatrixProvider(
		config.AppConfig.GoogleAPIKey,
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.DistanceCacheTTLHours)*time.Hour,
	)
	availabilityEngine := &recommendation.DefaultAvailabilityEngine{
		ContractorRepo: contractors,
		JobRepo:        jobs,
		AssignmentRepo: assignments,
		BufferMinutes:  config.AppConfig.BufferTimeMinutes,
	}
	recommendationService := &recommendation.DefaultRecommendationService{
		JobRepo:        jobs,
		ContractorRepo: contractors,
		Availability:   availabilityEngine,
		Distance:       distanceProvider,
		MaxParallel:    config.AppConfig.MaxParallelCandidates,
		Timeout:        time.Duration(config.AppConfig.RecommendationTimeout) * time.Second,
	}

	// handlers and routes.
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityEngine, logger)

	routes.RegisterJobRoutes(router, recommendationHandler)
	routes.RegisterContractorRoutes(router, availabilityHandler)
	routes.RegisterHealthRoute(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
