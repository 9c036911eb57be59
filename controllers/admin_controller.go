package controllers

import (
	"net/http"
	"strconv"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/config"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/models"
	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/services"

	"github.com/gin-gonic/gin"
)

// GET /admin/users
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.
		Select("id", "email", "full_name", "role", "created_at").
		Order("id ASC").
		Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := make([]gin.H, 0, len(users))
	for _, u := range users {
		out = append(out, gin.H{
			"id":        u.ID,
			"email":     u.Email,
			"full_name": u.FullName,
			"role":      u.Role,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// CareController lets professionals and family members follow a
// dependent's progress read-only.
type CareController struct {
	Score    *services.ScoreService
	Sobriety *services.SobrietyService
}

func NewCareController(score *services.ScoreService, sobriety *services.SobrietyService) *CareController {
	return &CareController{Score: score, Sobriety: sobriety}
}

// GET /care/dependents/:id/progress
func (cc *CareController) DependentProgress(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	uid := uint(id)

	score, err := cc.Score.WindowScore(c.Request.Context(), uid, 7)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	tier, streak, err := cc.Sobriety.Medal(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":     uid,
		"score":       score,
		"zone":        services.ZoneFor(score),
		"streak_days": streak,
		"medal":       tier,
	})
}
