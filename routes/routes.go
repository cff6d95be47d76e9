package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/zemengames/bingo-live/controllers"
)

func SetupRoutes(r *gin.Engine, sessions *controllers.SessionController, rankings *controllers.RankingController, admin *controllers.AdminController) {
	api := r.Group("/api")

	// ----------------------
	// User routes
	// ----------------------
	api.POST("/users", controllers.RegisterUser)        // Register user
	api.GET("/users/:telegram_id", controllers.GetUser) // Get user by Telegram ID

	// ----------------------
	// Session routes
	// ----------------------
	api.POST("/sessions", sessions.CreateSession)            // Create session in draft
	api.POST("/sessions/join", sessions.JoinSession)         // Join by invite code
	api.GET("/sessions/:id", sessions.GetSession)            // Session snapshot
	api.POST("/sessions/:id/open", sessions.OpenSession)     // draft -> waiting
	api.POST("/sessions/:id/start", sessions.StartSession)   // waiting -> active
	api.POST("/sessions/:id/advance", sessions.AdvanceRound) // Next round
	api.POST("/sessions/:id/finish", sessions.FinishSession) // Finalize

	// ----------------------
	// Round routes
	// ----------------------
	api.POST("/sessions/:id/draws", sessions.DrawNumber)                       // Draw next number
	api.GET("/sessions/:id/draws", sessions.ListDraws)                         // Draw history, newest first
	api.POST("/sessions/:id/claims", sessions.SubmitClaim)                     // Resolve a win claim
	api.GET("/sessions/:id/winners", sessions.ListWinners)                     // Winners so far
	api.POST("/sessions/:id/prizes/:prize_id/forfeit", sessions.ForfeitPrize) // Settle a prize as uncontested

	// ----------------------
	// Ranking routes
	// ----------------------
	api.GET("/ranks", rankings.Leaderboard)             // Top players
	api.GET("/ranks/:user_id", rankings.GetRank)        // Player counters
	api.GET("/ranks/:user_id/titles", rankings.GetTitles) // Earned badges

	// ----------------------
	// Admin routes
	// ----------------------
	api.POST("/admin/reap", admin.TriggerReap)                // One abandonment sweep
	api.POST("/admin/ranks/:user_id/credit", admin.CreditWin) // Operator win credit
}
