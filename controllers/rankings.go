package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zemengames/bingo-live/services"
)

type RankingController struct {
	ranking *services.RankingService
}

func NewRankingController(ranking *services.RankingService) *RankingController {
	return &RankingController{ranking: ranking}
}

// GetRank returns a player's win counters
func (rc *RankingController) GetRank(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	rank, err := rc.ranking.GetRank(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rank"})
		return
	}
	c.JSON(http.StatusOK, rank)
}

// Leaderboard returns top players by total, weekly or monthly wins
func (rc *RankingController) Leaderboard(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	ranks, err := rc.ranking.Leaderboard(c.Request.Context(), c.DefaultQuery("period", "total"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch leaderboard"})
		return
	}
	c.JSON(http.StatusOK, ranks)
}

// GetTitles returns a player's earned badges
func (rc *RankingController) GetTitles(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	titles, err := rc.ranking.Titles(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch titles"})
		return
	}
	c.JSON(http.StatusOK, titles)
}
