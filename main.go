package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campuscanteen/canteen-app/config"
	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/router"
	"github.com/campuscanteen/canteen-app/services"
	"github.com/campuscanteen/canteen-app/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)
	seed(db)

	otp := services.NewOTPService(services.LogMailer{})
	otp.StartCleanup()

	r := router.SetupRouter(db, otp)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.FoodItem{},
		&models.Order{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

// seed fills the catalog on first boot and makes sure an admin account
// exists (ADMIN_EMAIL / ADMIN_PASSWORD, defaults for local development).
func seed(db *gorm.DB) {
	if err := services.SeedFoodItems(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed food items: %v", err)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@canteen.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
	}

	var admin models.User
	if err := db.Where("email = ?", adminEmail).First(&admin).Error; err == nil {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to hash admin password: %v", err)
	}
	if err := db.Create(&models.User{
		Name:     "Canteen Admin",
		Email:    adminEmail,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}).Error; err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed admin user: %v", err)
	}
	utils.InfoLogger.Printf("Seeded admin user %s", adminEmail)
}
