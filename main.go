package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rideready-api/config"
	"rideready-api/database"
	"rideready-api/jobs"
	"rideready-api/middleware"
	"rideready-api/routes"
	"rideready-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed default ride categories
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	storage, err := services.NewStorageService(cfg, logger)
	if err != nil {
		log.Fatal("Failed to initialize object storage:", err)
	}

	emailService := services.NewEmailService(cfg)
	scraper := services.NewScraperService(db, logger, cfg.BulletinSourceURLs)

	// Background jobs
	scrapeJob := jobs.NewBulletinScrapeJob(scraper, cfg.ScrapeInterval)
	scrapeJob.Start()
	defer scrapeJob.Stop()

	reminderJob := jobs.NewReminderJob(db, emailService, cfg.ReminderInterval)
	reminderJob.Start()
	defer reminderJob.Stop()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 30))

	// Setup routes
	routes.SetupRoutes(router, db, cfg, storage, emailService, scraper)

	// Start server
	log.Printf("Starting RideReady API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/api/v1/health", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
