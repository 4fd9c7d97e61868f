package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
)

// LogController handles the admin-only audit trail route
type LogController struct {
	db *gorm.DB
}

// NewLogController creates a log controller with its dependencies
func NewLogController(db *gorm.DB) *LogController {
	return &LogController{db: db}
}

// List handles GET /api/logs - returns audit entries, newest first
func (ctrl *LogController) List(c *gin.Context) {
	var entries []models.SystemLog
	if err := ctrl.db.Order("created_at desc").Find(&entries).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}
