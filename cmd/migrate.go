package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/zemengames/bingo-live/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	db := config.SetupDatabase(os.Getenv("DATABASE_URL")) // connects + migrates
	_ = db
	log.Println("Database migration completed successfully")
}
