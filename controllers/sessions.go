package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/zemengames/bingo-live/game"
	"github.com/zemengames/bingo-live/models"
	"github.com/zemengames/bingo-live/services"
)

type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// statusFor maps engine errors to HTTP codes so clients can tell policy
// violations apart and react (re-fetch on conflict, fix input on 422).
func statusFor(err error) int {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInvalidTransition),
		errors.Is(err, game.ErrSessionNotActive),
		errors.Is(err, game.ErrRoundNotResolved),
		errors.Is(err, game.ErrNoPlayers):
		return http.StatusConflict
	case errors.Is(err, game.ErrPrizeAlreadyWon):
		return http.StatusConflict
	case errors.Is(err, game.ErrRoundExhausted):
		return http.StatusConflict
	case errors.Is(err, game.ErrNotMember):
		return http.StatusForbidden
	case errors.Is(err, game.ErrClaimRejected):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// CreateSession creates a draft session with its prize slots
func (sc *SessionController) CreateSession(c *gin.Context) {
	var req services.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := sc.sessions.Create(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}
	c.JSON(http.StatusCreated, session)
}

// GetSession returns a session with its prizes
func (sc *SessionController) GetSession(c *gin.Context) {
	session, err := sc.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// JoinSession adds a player to a session by invite code
func (sc *SessionController) JoinSession(c *gin.Context) {
	var req struct {
		InviteCode string `json:"invite_code" binding:"required"`
		UserID     uint   `json:"user_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := sc.sessions.Join(c.Request.Context(), req.InviteCode, req.UserID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// OpenSession moves a draft session to waiting
func (sc *SessionController) OpenSession(c *gin.Context) {
	sc.transition(c, sc.sessions.Open)
}

// StartSession moves a waiting session to active
func (sc *SessionController) StartSession(c *gin.Context) {
	sc.transition(c, sc.sessions.Start)
}

// AdvanceRound moves an active session to its next round
func (sc *SessionController) AdvanceRound(c *gin.Context) {
	sc.transition(c, sc.sessions.AdvanceRound)
}

// FinishSession finalizes a session; repeating it is a no-op
func (sc *SessionController) FinishSession(c *gin.Context) {
	sc.transition(c, sc.sessions.Finish)
}

func (sc *SessionController) transition(c *gin.Context, op func(ctx context.Context, id string) (*models.Session, error)) {
	session, err := op(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// DrawNumber reveals the next number for the current round
func (sc *SessionController) DrawNumber(c *gin.Context) {
	draw, err := sc.sessions.DrawNext(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, draw)
}

// ListDraws returns a round's draws most-recent-first
func (sc *SessionController) ListDraws(c *gin.Context) {
	round, _ := strconv.Atoi(c.Query("round"))
	draws, err := sc.sessions.DrawHistory(c.Request.Context(), c.Param("id"), round)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draws": draws, "count": len(draws)})
}

// SubmitClaim resolves a player's win claim
func (sc *SessionController) SubmitClaim(c *gin.Context) {
	var req services.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	winner, err := sc.sessions.ResolveClaim(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, winner)
}

// ListWinners returns a session's winners
func (sc *SessionController) ListWinners(c *gin.Context) {
	winners, err := sc.sessions.Winners(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, winners)
}

// ForfeitPrize marks a prize as uncontested for the current round
func (sc *SessionController) ForfeitPrize(c *gin.Context) {
	prizeID, err := strconv.ParseUint(c.Param("prize_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid prize id"})
		return
	}

	forfeit, err := sc.sessions.ForfeitPrize(c.Request.Context(), c.Param("id"), uint(prizeID))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, forfeit)
}
