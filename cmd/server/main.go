package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/medtrack/medicine-tracker-api/internal/config"
	"github.com/medtrack/medicine-tracker-api/internal/database"
	"github.com/medtrack/medicine-tracker-api/internal/handlers"
	"github.com/medtrack/medicine-tracker-api/internal/middleware"
	"github.com/medtrack/medicine-tracker-api/internal/repository"
	"github.com/medtrack/medicine-tracker-api/internal/services"
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
	if err := database.AddIndexes(database.GetDB()); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	medicineRepo := repository.NewMedicineRepository(db)
	doseLogRepo := repository.NewDoseLogRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	medicineService := services.NewMedicineService(medicineRepo)
	trackingService := services.NewTrackingService(medicineRepo, doseLogRepo)

	// Initialize handlers
	jwtSecret := []byte(cfg.JWTSecret)
	authHandler := handlers.NewAuthHandler(authService, jwtSecret)
	medicineHandler := handlers.NewMedicineHandler(medicineService)
	trackingHandler := handlers.NewTrackingHandler(trackingService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Medicine Tracker API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public except /me)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.RequireAuth(jwtSecret), authHandler.GetCurrentUser)
		}

		// Medicine routes (protected)
		medicines := api.Group("/medicines")
		medicines.Use(middleware.RequireAuth(jwtSecret))
		{
			medicines.POST("", medicineHandler.CreateMedicine)
			medicines.GET("", medicineHandler.ListMedicines)
			medicines.PUT("/:id", medicineHandler.UpdateMedicine)
			medicines.DELETE("/:id", medicineHandler.DeleteMedicine)

			// Dose tracking
			medicines.POST("/medicinelogs", trackingHandler.RecordStatus)
			medicines.GET("/medicinelogs", trackingHandler.ListLogs)
			medicines.GET("/schedule", trackingHandler.DailySchedule)
		}
	}

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
