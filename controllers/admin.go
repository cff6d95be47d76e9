package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zemengames/bingo-live/services"
)

type AdminController struct {
	reaper  *services.Reaper
	ranking *services.RankingService
}

func NewAdminController(reaper *services.Reaper, ranking *services.RankingService) *AdminController {
	return &AdminController{reaper: reaper, ranking: ranking}
}

// TriggerReap runs one abandonment sweep, for external schedulers
func (ac *AdminController) TriggerReap(c *gin.Context) {
	var req struct {
		IdleHours int `json:"idle_hours" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	finalized, err := ac.reaper.Reap(c.Request.Context(), time.Duration(req.IdleHours)*time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "finalized": finalized})
		return
	}
	c.JSON(http.StatusOK, gin.H{"finalized": finalized})
}

// CreditWin applies one win credit to a player, for operator corrections
// (e.g. a win resolved outside the claim path)
func (ac *AdminController) CreditWin(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	rank, err := ac.ranking.CreditWin(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to credit win"})
		return
	}
	c.JSON(http.StatusOK, rank)
}
