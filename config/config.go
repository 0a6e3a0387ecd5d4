package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database named by the environment. DB_DRIVER selects
// mysql (DSN assembled from DB_* vars) or sqlite (DB_PATH, default
// canteen.db). SQLite is the default so the app runs without any setup.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")

	switch driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			getEnv("DB_HOST", "127.0.0.1"),
			getEnv("DB_PORT", "3306"),
			getEnv("DB_NAME", "canteen"),
		)
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		path := getEnv("DB_PATH", "canteen.db")
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
