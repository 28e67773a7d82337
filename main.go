package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RohitDakare/ByteForce/config"
	"github.com/RohitDakare/ByteForce/controllers"
	"github.com/RohitDakare/ByteForce/middleware"
	"github.com/RohitDakare/ByteForce/models"
	"github.com/RohitDakare/ByteForce/repository"
	"github.com/RohitDakare/ByteForce/services"
)

func main() {
	// Basic logging
	log.Println("Starting ByteForce skills API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	if err := db.AutoMigrate(&models.User{}, &models.Skill{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	router := setupRouter(cfg, db)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires the repositories, services, controllers and routes.
// Everything is constructed once here and passed by reference; no package
// holds global state.
func setupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)

	authService := services.NewAuthService(
		userRepo,
		services.NewGoogleService(cfg),
		services.NewTokenService(cfg.JWTSecret),
	)
	skillService := services.NewSkillService(skillRepo, userRepo)

	authController := controllers.NewAuthController(authService)
	skillController := controllers.NewSkillController(skillService)

	router := gin.Default()

	// CORS restricted to the single configured origin
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.CORSAllowedOrigin},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type"},
	}))

	api := router.Group("/api")
	{
		// Health check endpoint
		api.GET("/health", healthCheck)

		// Database status endpoint
		api.GET("/database/status", databaseStatus(db))

		// Sign-in is the only unauthenticated API endpoint
		api.POST("/auth/google", authController.GoogleSignIn)
	}

	// Everything below requires a valid session token
	protected := api.Group("", middleware.EnsureValidSession(cfg))
	{
		protected.GET("/auth/me", authController.Me)
		protected.POST("/auth/logout", authController.Logout)

		protected.GET("/skills", skillController.List)
		protected.POST("/skills", skillController.Create)
		protected.PUT("/skills/:id", skillController.Update)
		protected.DELETE("/skills/:id", skillController.Delete)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ByteForce skills API is running",
	})
}

// databaseStatus checks database connectivity
func databaseStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Failed to get database instance",
			})
			return
		}

		if err := sqlDB.Ping(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Database connected",
		})
	}
}
