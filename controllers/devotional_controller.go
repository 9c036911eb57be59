package controllers

import (
	"errors"
	"net/http"

	"github.com/jhoesantos777/apprecuperacaoefoco-sub001/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DevotionalController struct {
	Devotionals *services.DevotionalService
}

func NewDevotionalController(d *services.DevotionalService) *DevotionalController {
	return &DevotionalController{Devotionals: d}
}

// GET /user/devotionals/today
func (dc *DevotionalController) Today(c *gin.Context) {
	d, err := dc.Devotionals.Today(c.Request.Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "no devotional available"})
			return
		}
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

type CompleteDevotionalInput struct {
	DevotionalID uint `json:"devotional_id" binding:"required"`
}

// POST /user/devotionals/complete
func (dc *DevotionalController) Complete(c *gin.Context) {
	uid := c.GetUint("userID")

	var input CompleteDevotionalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := dc.Devotionals.Complete(c.Request.Context(), uid, input.DevotionalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "devotional not found"})
			return
		}
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "devotional completed"})
}
