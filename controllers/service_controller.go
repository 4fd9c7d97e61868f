package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
)

// ServiceController handles the flight bitácora routes. Order-derived rows are
// written by the verification flow; this controller covers manual entries.
type ServiceController struct {
	db *gorm.DB
}

// NewServiceController creates a service-log controller with its dependencies
func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{db: db}
}

// CreateServiceRequest represents the request body for filing a manual log entry
type CreateServiceRequest struct {
	ReservaID     *uint      `json:"reserva_id"`
	DispositivoID uint       `json:"dispositivo_id" binding:"required"`
	OperadorID    *string    `json:"operador_id"`
	TipoServicio  *string    `json:"tipo_servicio"`
	Estado        string     `json:"estado" binding:"required"`
	HoraSalida    *time.Time `json:"hora_salida"`
	HoraLlegada   *time.Time `json:"hora_llegada"`
	Observaciones *string    `json:"observaciones"`
}

// List handles GET /api/servicios - returns all flight log rows
func (ctrl *ServiceController) List(c *gin.Context) {
	var logs []models.ServiceLog
	if err := ctrl.db.Find(&logs).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

// Create handles POST /api/servicios - files a manual bitácora entry
func (ctrl *ServiceController) Create(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	entry := models.ServiceLog{
		ReservaID:     req.ReservaID,
		DispositivoID: req.DispositivoID,
		OperadorID:    req.OperadorID,
		TipoServicio:  req.TipoServicio,
		Estado:        req.Estado,
		HoraSalida:    req.HoraSalida,
		HoraLlegada:   req.HoraLlegada,
		Observaciones: req.Observaciones,
	}

	if err := ctrl.db.Create(&entry).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}
