package controllers

import (
	"net/http"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/services"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	Ledger *services.ActivityLedger
	Score  *services.ScoreService
	Hub    *services.RealtimeHub
}

func NewMoodController(ledger *services.ActivityLedger, score *services.ScoreService, hub *services.RealtimeHub) *MoodController {
	return &MoodController{Ledger: ledger, Score: score, Hub: hub}
}

type CheckInInput struct {
	Mood string `json:"mood" binding:"required"`
	Note string `json:"note"`
}

// POST /user/checkin — daily mood check-in. Scores on the check-in scale,
// which is not the same table the generic mood activity uses.
func (mc *MoodController) CheckIn(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points := services.CheckInPoints(input.Mood)
	if err := mc.Ledger.Append(c.Request.Context(), uid, services.ActivityMood, points, input.Note); err != nil {
		writeServiceError(c, err)
		return
	}

	score, err := mc.Score.WindowScore(c.Request.Context(), uid, 7)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	zone := services.ZoneFor(score)
	mc.Hub.BroadcastProgress(uid, score, zone)

	c.JSON(http.StatusCreated, gin.H{
		"points_awarded": points,
		"score":          score,
		"zone":           zone,
	})
}
