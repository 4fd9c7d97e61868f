package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
)

// UserController handles the admin-only user administration routes
type UserController struct {
	db *gorm.DB
}

// NewUserController creates a user controller with its dependencies
func NewUserController(db *gorm.DB) *UserController {
	return &UserController{db: db}
}

// CreateUserRequest represents the request body for the admin invite-and-insert
// flow: the credential pair creates the identity, the rest fills the role row.
type CreateUserRequest struct {
	Nombre   string `json:"nombre" binding:"required"`
	Cedula   string `json:"cedula" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// List handles GET /api/users - returns all user rows
func (ctrl *UserController) List(c *gin.Context) {
	var users []models.User
	if err := ctrl.db.Find(&users).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create handles POST /api/users - creates the identity and role row in one step
func (ctrl *UserController) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rol inválido"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	user := models.User{
		ID:           uuid.NewString(),
		Nombre:       req.Nombre,
		Cedula:       req.Cedula,
		Email:        req.Email,
		Role:         req.Role,
		PasswordHash: string(hash),
	}

	if err := ctrl.db.Create(&user).Error; err != nil {
		// Duplicate email or cedula (works with both PostgreSQL and SQLite)
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "El usuario ya existe"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
