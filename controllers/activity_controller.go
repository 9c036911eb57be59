package controllers

import (
	"errors"
	"net/http"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	Ledger *services.ActivityLedger
	Score  *services.ScoreService
	Hub    *services.RealtimeHub
}

func NewActivityController(ledger *services.ActivityLedger, score *services.ScoreService, hub *services.RealtimeHub) *ActivityController {
	return &ActivityController{Ledger: ledger, Score: score, Hub: hub}
}

type LogActivityInput struct {
	Kind string `json:"kind" binding:"required"`
	Mood string `json:"mood"` // only read for the mood kind
	Note string `json:"note"`
}

// POST /user/activities
func (ac *ActivityController) LogActivity(c *gin.Context) {
	uid := c.GetUint("userID")

	var input LogActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind := services.ActivityKind(input.Kind)
	if !services.ValidKind(kind) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown activity kind"})
		return
	}

	points := services.PointsFor(kind, input.Mood)
	if err := ac.Ledger.Append(c.Request.Context(), uid, kind, points, input.Note); err != nil {
		writeServiceError(c, err)
		return
	}

	score, err := ac.Score.WindowScore(c.Request.Context(), uid, 7)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	zone := services.ZoneFor(score)
	ac.Hub.BroadcastProgress(uid, score, zone)

	c.JSON(http.StatusCreated, gin.H{
		"points_awarded": points,
		"score":          score,
		"zone":           zone,
	})
}

// POST /user/activities/reset — wipes the trailing 7 days. The app shows
// the confirmation dialog; by the time this is called it is final.
func (ac *ActivityController) ResetWindow(c *gin.Context) {
	uid := c.GetUint("userID")

	if err := ac.Ledger.Reset(c.Request.Context(), uid, 7); err != nil {
		writeServiceError(c, err)
		return
	}

	ac.Hub.BroadcastProgress(uid, 0, services.ZoneFor(0))
	c.Status(http.StatusNoContent)
}

func writeServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrNoSession) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
