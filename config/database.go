package config

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const defaultSQLitePath = "restaurant-dev.db"

// InitDB opens the primary MySQL database from DATABASE_DSN. When the DSN
// is absent or the connection fails it falls back to a local SQLite file so
// the app can run without a provisioned database.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn != "" {
		db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("MySQL connected successfully")
			return db, nil
		}
		log.Printf("MySQL connection error: %v", err)
		log.Println("Attempting fallback to local SQLite...")
	}

	path := os.Getenv("SQLITE_FALLBACK_PATH")
	if path == "" {
		path = defaultSQLitePath
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	log.Printf("Local SQLite connected successfully (%s)", path)
	return db, nil
}
