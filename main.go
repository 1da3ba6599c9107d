package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/gourmethaven/restaurant-backend/config"
	"github.com/gourmethaven/restaurant-backend/models"
	"github.com/gourmethaven/restaurant-backend/router"
	"github.com/gourmethaven/restaurant-backend/services"
	"github.com/gourmethaven/restaurant-backend/utils"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	utils.InitLogger()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	mailer := services.NewEmailService(services.EmailConfigFromEnv())
	gateway := services.NewRazorpayService(services.RazorpayConfigFromEnv())
	if gateway.IsMockMode() {
		utils.InfoLogger.Println("Razorpay credentials missing or placeholder; payment gateway running in mock mode")
	}

	r := router.SetupRouter(db, mailer, gateway)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}
