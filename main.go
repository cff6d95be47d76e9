package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/zemengames/bingo-live/config"
	"github.com/zemengames/bingo-live/controllers"
	"github.com/zemengames/bingo-live/routes"
	"github.com/zemengames/bingo-live/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// initEnv loads .env file and validates required vars
func initEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env or environment")
	}
}

func main() {
	// Load env variables
	initEnv()
	cfg := config.Load()

	// Connect to database and Redis
	db := config.SetupDatabase(cfg.DatabaseURL)
	rdb := config.InitRedis(cfg)

	// Wire services
	broadcaster := services.NewBroadcaster(rdb)
	ranking := services.NewRankingService(db)
	sessions := services.NewSessionService(db, broadcaster, ranking)
	reaper := services.NewReaper(db, broadcaster)
	hub := services.NewHub(rdb)

	ctx := context.Background()
	go hub.Run(ctx)
	go reaper.RunScheduler(ctx, cfg.ReapInterval, cfg.IdleThreshold)

	// Setup Gin router
	r := gin.Default()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r,
		controllers.NewSessionController(sessions),
		controllers.NewRankingController(ranking),
		controllers.NewAdminController(reaper, ranking),
	)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// WebSocket spectator endpoint
	r.GET("/ws/sessions/:id", services.HandleWebSocket(hub, sessions))

	// Start server
	log.Printf("Bingo Live backend starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
