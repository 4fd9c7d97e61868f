package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
)

// DeviceController handles the drone fleet CRUD routes
type DeviceController struct {
	db *gorm.DB
}

// NewDeviceController creates a device controller with its dependencies
func NewDeviceController(db *gorm.DB) *DeviceController {
	return &DeviceController{db: db}
}

// CreateDeviceRequest represents the request body for registering a drone
type CreateDeviceRequest struct {
	Tipo           string   `json:"tipo" binding:"required"`
	Modelo         string   `json:"modelo" binding:"required"`
	NumeroSerie    string   `json:"numero_serie" binding:"required"`
	CapacidadCarga float64  `json:"capacidad_carga"`
	Bateria        *int     `json:"bateria" binding:"omitempty,min=0,max=100"`
	Firmware       string   `json:"firmware"`
	Sensores       []string `json:"sensores"`
}

// UpdateDeviceRequest represents the request body for operational updates.
// Only availability and battery are mutable after registration.
type UpdateDeviceRequest struct {
	Estado  *string `json:"estado" binding:"omitempty,oneof=disponible en_vuelo mantenimiento"`
	Bateria *int    `json:"bateria" binding:"omitempty,min=0,max=100"`
}

// List handles GET /api/dispositivos - returns the whole fleet
func (ctrl *DeviceController) List(c *gin.Context) {
	var devices []models.Device
	if err := ctrl.db.Find(&devices).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, devices)
}

// ListAvailable handles GET /api/dispositivos/disponibles - public listing of
// drones the ordering wizard may pick from
func (ctrl *DeviceController) ListAvailable(c *gin.Context) {
	var devices []models.Device
	if err := ctrl.db.Where("estado = ?", models.DeviceAvailable).Find(&devices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, devices)
}

// Create handles POST /api/dispositivos - registers a drone
func (ctrl *DeviceController) Create(c *gin.Context) {
	var req CreateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	device := models.Device{
		Tipo:           req.Tipo,
		Modelo:         req.Modelo,
		NumeroSerie:    req.NumeroSerie,
		CapacidadCarga: req.CapacidadCarga,
		Firmware:       req.Firmware,
		Sensores:       req.Sensores,
		Estado:         models.DeviceAvailable,
	}
	if req.Bateria != nil {
		device.Bateria = *req.Bateria
	}

	if err := ctrl.db.Create(&device).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, device)
}

// Update handles PUT /api/dispositivos/:id - mutates status and battery
func (ctrl *DeviceController) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateDeviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos"})
		return
	}

	var device models.Device
	if err := ctrl.db.First(&device, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dispositivo no encontrado"})
		return
	}

	updates := map[string]interface{}{}
	if req.Estado != nil {
		updates["estado"] = *req.Estado
	}
	if req.Bateria != nil {
		updates["bateria"] = *req.Bateria
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	if err := ctrl.db.Model(&device).Updates(updates).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, device)
}
