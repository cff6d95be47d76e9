package config

import (
	"log"

	"github.com/zemengames/bingo-live/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// SetupDatabase connects to DB and runs migrations
func SetupDatabase(dsn string) *gorm.DB {
	if dsn == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("[FATAL] Failed to connect to DB: %v", err)
	}
	DB = db

	if err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Membership{},
		&models.Draw{},
		&models.Prize{},
		&models.Forfeit{},
		&models.Winner{},
		&models.Rank{},
		&models.Title{},
	); err != nil {
		log.Fatalf("[FATAL] Migration failed: %v", err)
	}

	log.Println("Database migration completed")
	return db
}
