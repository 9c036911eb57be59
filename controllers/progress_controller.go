package controllers

import (
	"net/http"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/services"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Score    *services.ScoreService
	Sobriety *services.SobrietyService
}

func NewProgressController(score *services.ScoreService, sobriety *services.SobrietyService) *ProgressController {
	return &ProgressController{Score: score, Sobriety: sobriety}
}

// GET /user/progress — everything the home screen needs in one call:
// thermometer, zone, streak and medal.
func (pc *ProgressController) GetProgress(c *gin.Context) {
	uid := c.GetUint("userID")

	score, err := pc.Score.WindowScore(c.Request.Context(), uid, 7)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	tier, streak, err := pc.Sobriety.Medal(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"score":       score,
		"zone":        services.ZoneFor(score),
		"streak_days": streak,
		"medal":       tier,
	})
}

// GET /user/progress/medals — all tiers with the achieved flag.
func (pc *ProgressController) ListMedals(c *gin.Context) {
	uid := c.GetUint("userID")

	streak, err := pc.Sobriety.StreakDays(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	type medal struct {
		services.Tier
		Achieved bool `json:"achieved"`
	}
	var out []medal
	for _, t := range services.Milestones() {
		out = append(out, medal{Tier: t, Achieved: streak >= t.MinDays})
	}

	c.JSON(http.StatusOK, gin.H{"streak_days": streak, "medals": out})
}
