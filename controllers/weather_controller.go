package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
)

// WeatherController handles the synthetic per-day weather routes
type WeatherController struct {
	db *gorm.DB
}

// NewWeatherController creates a weather controller with its dependencies
func NewWeatherController(db *gorm.DB) *WeatherController {
	return &WeatherController{db: db}
}

// List handles GET /api/clima - returns the full monthly table
func (ctrl *WeatherController) List(c *gin.Context) {
	var rows []models.Weather
	if err := ctrl.db.Order("dia").Find(&rows).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetByDay handles GET /api/clima/:dia - returns the observation for one day
// of the month. The ordering wizard uses it to block rainy-day deliveries.
func (ctrl *WeatherController) GetByDay(c *gin.Context) {
	dia, err := strconv.Atoi(c.Param("dia"))
	if err != nil || dia < 1 || dia > 31 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Día inválido"})
		return
	}

	var row models.Weather
	if err := ctrl.db.First(&row, "dia = ?", dia).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sin datos para ese día"})
		return
	}

	c.JSON(http.StatusOK, row)
}
