package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/oguzk/teamhub-api/internal/auth"
	"github.com/oguzk/teamhub-api/internal/config"
	"github.com/oguzk/teamhub-api/internal/database"
	"github.com/oguzk/teamhub-api/internal/handlers"
	"github.com/oguzk/teamhub-api/internal/middleware"
	"github.com/oguzk/teamhub-api/internal/repository"
	"github.com/oguzk/teamhub-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTLHours)

	// Repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	taskRepo := repository.NewTaskRepository(database.GetDB())
	authService := services.NewAuthService(userRepo, tokens)
	taskService := services.NewTaskService(taskRepo, userRepo)
	settingsService := services.NewSettingsService(database.GetDB())

	var emailService services.EmailService
	if cfg.SendgridAPIKey != "" {
		emailService = services.NewSendgridEmailService(cfg.SendgridAPIKey, cfg.FromName, cfg.FromEmail, logger)
	} else {
		logger.Info("no sendgrid key configured, using mock email send")
		emailService = services.NewConsoleEmailService(logger)
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)
	userHandler := handlers.NewUserHandler(userRepo)
	announcementHandler := handlers.NewAnnouncementHandler()
	meetingHandler := handlers.NewMeetingHandler()
	reportHandler := handlers.NewReportHandler()
	dashboardHandler := handlers.NewDashboardHandler(taskService)
	uploadHandler := handlers.NewUploadHandler(userRepo, cfg.UploadDir)
	emailHandler := handlers.NewEmailHandler(emailService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Uploaded files are served statically and referenced by relative path
	r.Static("/uploads", cfg.UploadDir)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "TeamHub API is running",
		})
	})

	requireAuth := middleware.RequireAuth(tokens)

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/member-login", authHandler.MemberLogin)
			authGroup.POST("/admin-login", authHandler.AdminLogin)
			authGroup.GET("/me", requireAuth, authHandler.GetCurrentUser)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(requireAuth)
		{
			tasks.GET("", taskHandler.ListTasks)
			tasks.GET("/my-tasks", taskHandler.MyTasks)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.POST("", middleware.RequireAdmin(), taskHandler.CreateTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", middleware.RequireAdmin(), taskHandler.DeleteTask)
		}

		// Announcement routes (protected)
		announcements := api.Group("/announcements")
		announcements.Use(requireAuth)
		{
			announcements.GET("", announcementHandler.ListAnnouncements)
			announcements.GET("/:id", announcementHandler.GetAnnouncement)
			announcements.POST("", middleware.RequireManager(), announcementHandler.CreateAnnouncement)
			announcements.PUT("/:id", middleware.RequireManager(), announcementHandler.UpdateAnnouncement)
			announcements.DELETE("/:id", middleware.RequireManager(), announcementHandler.DeleteAnnouncement)
		}

		// Meeting routes (protected)
		meetings := api.Group("/meetings")
		meetings.Use(requireAuth)
		{
			meetings.GET("", meetingHandler.ListMeetings)
			meetings.GET("/:id", meetingHandler.GetMeeting)
			meetings.POST("", middleware.RequireManager(), meetingHandler.CreateMeeting)
			meetings.PUT("/:id", middleware.RequireManager(), meetingHandler.UpdateMeeting)
			meetings.DELETE("/:id", middleware.RequireManager(), meetingHandler.DeleteMeeting)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("", middleware.RequireManager(), userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.POST("", middleware.RequireAdmin(), userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", middleware.RequireAdmin(), userHandler.DeleteUser)
		}

		// Report routes (protected)
		reports := api.Group("/user-reports")
		reports.Use(requireAuth)
		{
			reports.GET("", reportHandler.ListReports)
			reports.GET("/:id", reportHandler.GetReport)
			reports.POST("", reportHandler.CreateReport)
			reports.PUT("/:id", middleware.RequireManager(), reportHandler.UpdateReport)
			reports.DELETE("/:id", middleware.RequireAdmin(), reportHandler.DeleteReport)
		}

		// Upload routes (protected)
		upload := api.Group("/upload")
		upload.Use(requireAuth)
		{
			upload.POST("/profile-picture/:userId", uploadHandler.UploadProfilePicture)
		}

		// Email routes (protected)
		email := api.Group("/email")
		email.Use(requireAuth, middleware.RequireManager())
		{
			email.POST("/send-notification", emailHandler.SendNotification)
			email.POST("/send-meeting-invitation", emailHandler.SendMeetingInvitation)
		}

		// Dashboard routes (protected)
		dashboard := api.Group("/dashboard")
		dashboard.Use(requireAuth)
		{
			dashboard.GET("/stats", middleware.RequireManager(), dashboardHandler.GetStats)
			dashboard.GET("/member", dashboardHandler.GetMemberDashboard)
			dashboard.GET("/activities", dashboardHandler.GetActivities)
		}

		// Settings routes (protected)
		settings := api.Group("/settings")
		settings.Use(requireAuth)
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", middleware.RequireAdmin(), settingsHandler.UpdateSettings)
		}
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
