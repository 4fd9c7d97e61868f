package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
)

// ReservationController handles the reservation CRUD routes
type ReservationController struct {
	db *gorm.DB
}

// NewReservationController creates a reservation controller with its dependencies
func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{db: db}
}

// CreateReservationRequest represents the request body for booking a device
type CreateReservationRequest struct {
	UsuarioID     string    `json:"usuario_id" binding:"required"`
	DispositivoID uint      `json:"dispositivo_id" binding:"required"`
	TipoServicio  string    `json:"tipo_servicio" binding:"required"`
	FechaInicio   time.Time `json:"fecha_inicio" binding:"required"`
	FechaFin      time.Time `json:"fecha_fin" binding:"required"`
}

// List handles GET /api/reservas - returns reservations with their device and
// user nested, mirroring the joined select the dashboard tables render
func (ctrl *ReservationController) List(c *gin.Context) {
	var reservations []models.Reservation
	if err := ctrl.db.Preload("Dispositivo").Preload("Usuario").Find(&reservations).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// Create handles POST /api/reservas - books a device for a time window
func (ctrl *ReservationController) Create(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	reservation := models.Reservation{
		UsuarioID:     req.UsuarioID,
		DispositivoID: req.DispositivoID,
		TipoServicio:  req.TipoServicio,
		FechaInicio:   req.FechaInicio,
		FechaFin:      req.FechaFin,
	}

	if err := ctrl.db.Create(&reservation).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, reservation)
}

// Delete handles DELETE /api/reservas/:id - removes a reservation
func (ctrl *ReservationController) Delete(c *gin.Context) {
	id := c.Param("id")

	result := ctrl.db.Delete(&models.Reservation{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reserva no encontrada"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Reserva eliminada correctamente"})
}
