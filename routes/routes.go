package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"rideready-api/config"
	"rideready-api/controllers"
	"rideready-api/middleware"
	"rideready-api/services"
)

// SetupRoutes wires every endpoint. Everything under /api/v1 except /auth
// and /health requires a bearer token; the admin subtree additionally
// requires the admin flag.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config,
	storage *services.StorageService, emailService *services.EmailService,
	scraper *services.ScraperService) {

	authController := controllers.NewAuthController(db, cfg.JWTSecret, emailService)
	userController := controllers.NewUserController(db)
	categoryController := controllers.NewCategoryController(db)
	rideController := controllers.NewRideController(db)
	documentController := controllers.NewDocumentController(db, storage, emailService)
	bulletinController := controllers.NewBulletinController(db, scraper)
	maintenanceController := controllers.NewMaintenanceController(db)
	inspectionController := controllers.NewInspectionController(db)
	ndtController := controllers.NewNDTController(db)
	riskAssessmentController := controllers.NewRiskAssessmentController(db)
	calendarController := controllers.NewCalendarController(services.NewCalendarService(db))
	notificationController := controllers.NewNotificationController(db)
	supportController := controllers.NewSupportController(db, emailService)

	v1 := router.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		protected.GET("/profile", userController.GetProfile)
		protected.PUT("/profile", userController.UpdateProfile)
		protected.GET("/subscription", userController.GetSubscription)

		protected.GET("/categories", categoryController.GetCategories)

		protected.GET("/rides", rideController.GetRides)
		protected.POST("/rides", rideController.CreateRide)
		protected.GET("/rides/:id", rideController.GetRide)
		protected.PUT("/rides/:id", rideController.UpdateRide)
		protected.DELETE("/rides/:id", rideController.DeleteRide)
		protected.GET("/rides/:id/statistics", rideController.GetRideStatistics)

		protected.GET("/documents", documentController.GetDocuments)
		protected.POST("/documents", documentController.UploadDocument)
		protected.GET("/documents/versions", documentController.GetDocumentVersions)
		protected.GET("/documents/:id/download", documentController.DownloadDocument)
		protected.POST("/documents/:id/send", documentController.SendDocument)
		protected.DELETE("/documents/:id", documentController.DeleteDocument)

		protected.GET("/bulletins", bulletinController.GetBulletins)

		protected.GET("/maintenance", maintenanceController.GetMaintenanceRecords)
		protected.POST("/maintenance", maintenanceController.CreateMaintenanceRecord)
		protected.PUT("/maintenance/:id", maintenanceController.UpdateMaintenanceRecord)
		protected.DELETE("/maintenance/:id", maintenanceController.DeleteMaintenanceRecord)

		protected.GET("/inspections/schedules", inspectionController.GetSchedules)
		protected.POST("/inspections/schedules", inspectionController.CreateSchedule)
		protected.PUT("/inspections/schedules/:id", inspectionController.UpdateSchedule)
		protected.DELETE("/inspections/schedules/:id", inspectionController.DeleteSchedule)

		protected.GET("/inspections/checks", inspectionController.GetChecks)
		protected.POST("/inspections/checks", inspectionController.CreateCheck)
		protected.PUT("/inspections/checks/:id/complete", inspectionController.CompleteCheck)
		protected.DELETE("/inspections/checks/:id", inspectionController.DeleteCheck)

		protected.GET("/ndt", ndtController.GetSchedules)
		protected.POST("/ndt", ndtController.CreateSchedule)
		protected.PUT("/ndt/:id", ndtController.UpdateSchedule)
		protected.DELETE("/ndt/:id", ndtController.DeleteSchedule)

		protected.GET("/risk-assessments", riskAssessmentController.GetAssessments)
		protected.POST("/risk-assessments", riskAssessmentController.CreateAssessment)
		protected.GET("/risk-assessments/:id", riskAssessmentController.GetAssessment)
		protected.PUT("/risk-assessments/:id", riskAssessmentController.UpdateAssessment)
		protected.DELETE("/risk-assessments/:id", riskAssessmentController.DeleteAssessment)

		protected.GET("/calendar", calendarController.GetCalendar)

		protected.GET("/notifications", notificationController.GetNotifications)
		protected.GET("/notifications/stats", notificationController.GetNotificationStats)
		protected.PUT("/notifications/:id/read", notificationController.MarkAsRead)
		protected.PUT("/notifications/read-all", notificationController.MarkAllAsRead)
		protected.DELETE("/notifications/:id", notificationController.DeleteNotification)

		protected.GET("/support", supportController.GetMessages)
		protected.POST("/support", supportController.CreateMessage)

		admin := protected.Group("/admin")
		admin.Use(middleware.AdminMiddleware())
		{
			admin.POST("/categories", categoryController.CreateCategory)
			admin.PUT("/categories/:id", categoryController.UpdateCategory)
			admin.DELETE("/categories/:id", categoryController.DeleteCategory)

			admin.GET("/bulletins", bulletinController.GetAllBulletins)
			admin.POST("/bulletins", bulletinController.CreateBulletin)
			admin.PUT("/bulletins/:id", bulletinController.UpdateBulletin)
			admin.DELETE("/bulletins/:id", bulletinController.DeleteBulletin)
			admin.POST("/bulletins/scrape", bulletinController.TriggerScrape)

			admin.GET("/support", supportController.GetAllMessages)
			admin.POST("/support/:id/respond", supportController.RespondToMessage)
		}
	}
}
