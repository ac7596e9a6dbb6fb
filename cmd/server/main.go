package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sakimura/org-directory-api/internal/config"
	"github.com/sakimura/org-directory-api/internal/constants"
	"github.com/sakimura/org-directory-api/internal/database"
	"github.com/sakimura/org-directory-api/internal/handlers"
	"github.com/sakimura/org-directory-api/internal/repository"
	"github.com/sakimura/org-directory-api/internal/services"
	"github.com/sakimura/org-directory-api/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware for per-viewer expansion state
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionName, store))

	// Initialize repositories and services
	db := database.GetDB()
	orgRepo := repository.NewOrganizationRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	directoryService := services.NewDirectoryService(orgRepo, teamRepo, memberRepo)
	storageClient := storage.NewClient(cfg.StorageURL, cfg.StorageKey)
	uploadService := services.NewUploadService(storageClient, cfg.StorageBucket)

	// Initial load of the three snapshots
	directoryService.Refresh()

	// Initialize handlers
	directoryHandler := handlers.NewDirectoryHandler(directoryService)
	orgHandler := handlers.NewOrganizationHandler(directoryService)
	teamHandler := handlers.NewTeamHandler(directoryService)
	memberHandler := handlers.NewMemberHandler(directoryService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Organization Directory API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		directory := api.Group("/directory")
		{
			directory.GET("", directoryHandler.GetDirectory)
			directory.POST("/organizations/:id/toggle", directoryHandler.ToggleOrganization)
			directory.POST("/teams/:id/toggle", directoryHandler.ToggleTeam)
		}

		api.POST("/refresh", directoryHandler.Refresh)

		api.GET("/organizations", directoryHandler.ListOrganizations)
		api.POST("/organizations", orgHandler.CreateOrganization)

		api.GET("/teams", directoryHandler.ListTeams)
		api.POST("/teams", teamHandler.CreateTeam)

		api.GET("/members", directoryHandler.ListMembers)
		api.POST("/members", memberHandler.CreateMember)

		api.POST("/uploads", uploadHandler.Upload)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
