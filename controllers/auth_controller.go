package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
	"github.com/SebastianCO11/Drone-System-Prototype/services"
	"github.com/SebastianCO11/Drone-System-Prototype/utils"
)

// AuthController handles session login and password recovery
type AuthController struct {
	db     *gorm.DB
	tokens *services.TokenService
	mailer services.MailService
}

// NewAuthController creates an auth controller with its dependencies
func NewAuthController(db *gorm.DB, tokens *services.TokenService, mailer services.MailService) *AuthController {
	return &AuthController{db: db, tokens: tokens, mailer: mailer}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RecoverRequest represents the request body for requesting a password reset
type RecoverRequest struct {
	Correo string `json:"correo" binding:"required,email"`
}

// ResetRequest represents the request body for setting a new password
type ResetRequest struct {
	Correo   string `json:"correo" binding:"required,email"`
	Codigo   string `json:"codigo" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// Login handles POST /api/auth/login - exchanges credentials for a session token
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, "email = ?", req.Email).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		recordLog(ctrl.db, "login_fallido", "Intento de acceso para "+req.Email, nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Credenciales inválidas"})
		return
	}

	token, err := ctrl.tokens.Generate(&user)
	if err != nil {
		log.Printf("failed to sign session token for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	recordLog(ctrl.db, "login", "Inicio de sesión de "+user.Email, &user.ID)

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":     user.ID,
			"nombre": user.Nombre,
			"role":   user.Role,
		},
	})
}

// Recover handles POST /api/auth/recuperar - emails a one-time reset code.
// The response does not reveal whether the address has an account.
func (ctrl *AuthController) Recover(c *gin.Context) {
	var req RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, "email = ?", req.Correo).Error; err != nil {
		c.JSON(http.StatusOK, gin.H{"mensaje": "Si el correo existe, se enviaron instrucciones"})
		return
	}

	code, err := utils.GenerateAccessCode()
	if err != nil {
		log.Printf("reset code generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	if err := ctrl.db.Model(&user).Update("reset_code", code).Error; err != nil {
		log.Printf("failed to store reset code for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	if err := ctrl.mailer.SendPasswordReset(user.Email, code); err != nil {
		log.Printf("failed to send reset mail to %s: %v", user.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error enviando correo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Si el correo existe, se enviaron instrucciones"})
}

// Reset handles POST /api/auth/restablecer - exchanges a reset code for a new password
func (ctrl *AuthController) Reset(c *gin.Context) {
	var req ResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Faltan datos"})
		return
	}

	var user models.User
	if err := ctrl.db.First(&user, "email = ?", req.Correo).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}

	if user.ResetCode == nil || *user.ResetCode != req.Codigo {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Código incorrecto"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash new password for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	updates := map[string]interface{}{
		"password_hash": string(hash),
		"reset_code":    nil,
	}
	if err := ctrl.db.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("failed to update password for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error interno"})
		return
	}

	recordLog(ctrl.db, "password_restablecida", "Contraseña actualizada para "+user.Email, &user.ID)

	c.JSON(http.StatusOK, gin.H{"mensaje": "Contraseña actualizada"})
}
