package controllers

import (
	"net/http"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/services"

	"github.com/gin-gonic/gin"
)

type SobrietyController struct {
	Sobriety *services.SobrietyService
}

func NewSobrietyController(s *services.SobrietyService) *SobrietyController {
	return &SobrietyController{Sobriety: s}
}

// POST /user/sobriety — "hoje estou sóbrio". One tap, one declaration,
// one ledger credit.
func (sc *SobrietyController) Declare(c *gin.Context) {
	uid := c.GetUint("userID")

	streak, err := sc.Sobriety.Declare(c.Request.Context(), uid)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"streak_days": streak,
		"medal":       services.TierFor(streak),
	})
}
