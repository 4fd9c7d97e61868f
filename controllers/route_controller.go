package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
	"github.com/SebastianCO11/Drone-System-Prototype/services"
	"github.com/SebastianCO11/Drone-System-Prototype/utils"
)

// RouteController handles flight-path (trayecto) routes. Listing is public
// for the ordering wizard; creation and image upload are staff operations.
type RouteController struct {
	db     *gorm.DB
	images services.ImageService
}

// NewRouteController creates a route controller with its dependencies
func NewRouteController(db *gorm.DB, images services.ImageService) *RouteController {
	return &RouteController{db: db, images: images}
}

// CreateRouteRequest represents the request body for registering a flight path
type CreateRouteRequest struct {
	Nombre   string   `json:"nombre" binding:"required"`
	Imagenes []string `json:"imagenes"`
}

// List handles GET /api/trayectos - public listing of flight paths
func (ctrl *RouteController) List(c *gin.Context) {
	var routes []models.Route
	if err := ctrl.db.Find(&routes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, routes)
}

// Create handles POST /api/trayectos - registers a flight path
func (ctrl *RouteController) Create(c *gin.Context) {
	var req CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	route := models.Route{
		ID:       uuid.NewString(),
		Nombre:   req.Nombre,
		Imagenes: req.Imagenes,
	}

	if err := ctrl.db.Create(&route).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, route)
}

// UploadImage handles POST /api/trayectos/:id/imagenes - uploads one PNG
// checkpoint image to storage and appends its URL to the route's list
func (ctrl *RouteController) UploadImage(c *gin.Context) {
	id := c.Param("id")

	var route models.Route
	if err := ctrl.db.First(&route, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trayecto no encontrado"})
		return
	}

	fileHeader, err := c.FormFile("imagen")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Falta el archivo de imagen"})
		return
	}

	imageKey, err := ctrl.images.UploadImage(fileHeader)
	if err != nil {
		if uploadErr, ok := err.(*utils.FileUploadError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": uploadErr.Message})
			return
		}
		log.Printf("failed to upload checkpoint image for route %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error subiendo imagen"})
		return
	}

	url, err := ctrl.images.GetImageURL(imageKey)
	if err != nil {
		log.Printf("failed to resolve image URL for %s: %v", imageKey, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error subiendo imagen"})
		return
	}

	route.Imagenes = append(route.Imagenes, url)
	if err := ctrl.db.Model(&route).Update("imagenes", route.Imagenes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Imagen agregada", "url": url, "imagenes": route.Imagenes})
}
