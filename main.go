package main

import (
	"log"
	"os"

	"tutorhub-service/internal/database"
	"tutorhub-service/internal/handlers"
	"tutorhub-service/internal/middleware"
	"tutorhub-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found in current directory, trying parent")
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Initialize Database
	database.Connect()
	database.Migrate()
	db := database.DB

	// Redis/Asynq Client
	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer asynqClient.Close()

	// Init Services
	helperService := services.NewHelperService(db)
	walletService := services.NewWalletService(db, helperService)
	withdrawalService := services.NewWithdrawalService(db, helperService, asynqClient)
	razorpayService := services.NewRazorpayService(db, helperService)
	bookingService := services.NewBookingService(db, razorpayService, asynqClient)
	facultyService := services.NewFacultyService(db)
	adminService := services.NewAdminService(db, helperService)
	dashboardService := services.NewDashboardService(db, walletService)

	// Handlers
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawalService, facultyService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(adminService, facultyService, dashboardService)
	facultyHandler := handlers.NewFacultyHandler(facultyService, walletService, dashboardService)

	// Initialize Gin
	r := gin.Default()

	// Ping endpoint
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome to TutorHub service",
		})
	})

	api := r.Group("/api")
	api.Use(middleware.Authenticate())

	// Faculty routes
	faculty := api.Group("/faculty")
	faculty.GET("/profiles", facultyHandler.ListProfiles)
	faculty.GET("/profiles/:id", facultyHandler.ProfileById)

	facultyOnly := faculty.Group("")
	facultyOnly.Use(middleware.RequireRole("faculty"))
	facultyOnly.POST("/withdrawals", withdrawalHandler.Create)
	facultyOnly.GET("/withdrawals", withdrawalHandler.MyRequests)
	facultyOnly.GET("/wallet", facultyHandler.MyBalances)
	facultyOnly.GET("/dashboard", facultyHandler.Stats)
	facultyOnly.GET("/me/details", facultyHandler.MyProfile)
	facultyOnly.PUT("/me/details", facultyHandler.UpdateMyProfile)

	// Booking routes
	bookings := api.Group("/bookings")
	bookings.GET("/my-bookings", bookingHandler.MyBookings)
	bookings.GET("/my-faculty-bookings", middleware.RequireRole("faculty"), bookingHandler.MyFacultyBookings)
	bookings.POST("/create-free", middleware.RequireRole("student"), bookingHandler.CreateFree)
	bookings.POST("/initiate-payment", middleware.RequireRole("student"), bookingHandler.InitiatePayment)
	bookings.POST("/verify-payment", middleware.RequireRole("student"), bookingHandler.VerifyPayment)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/withdrawals", withdrawalHandler.ListPending)
	admin.PUT("/withdrawals/:id", withdrawalHandler.Process)
	admin.GET("/withdrawals/history", withdrawalHandler.History)
	admin.GET("/faculty", adminHandler.ListFaculty)
	admin.GET("/faculty/:id/details", adminHandler.FacultyDetails)
	admin.PUT("/faculty/:id", adminHandler.UpdateFaculty)
	admin.DELETE("/faculty/:id", adminHandler.DeleteFaculty)
	admin.GET("/students", adminHandler.ListStudents)
	admin.DELETE("/students/:id", adminHandler.DeleteStudent)
	admin.GET("/settings/platform-fee", adminHandler.GetPlatformFee)
	admin.PUT("/settings/platform-fee", adminHandler.SetPlatformFee)

	// Start Cron Schedulers
	bookingService.StartScheduler()
	walletService.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("HTTP Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
