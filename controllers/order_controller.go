package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
	"github.com/SebastianCO11/Drone-System-Prototype/services"
	"github.com/SebastianCO11/Drone-System-Prototype/utils"
)

// OrderController handles the public order lifecycle: creation with code
// delivery, verification and feedback.
type OrderController struct {
	db     *gorm.DB
	mailer services.MailService
}

// NewOrderController creates an order controller with its dependencies
func NewOrderController(db *gorm.DB, mailer services.MailService) *OrderController {
	return &OrderController{db: db, mailer: mailer}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	DispositivoID uint       `json:"dispositivoId" binding:"required"`
	TrayectoID    string     `json:"trayectoId" binding:"required"`
	Correo        string     `json:"correo" binding:"required,email"`
	Fecha         *time.Time `json:"fecha"` // requested delivery date, optional
}

// VerifyOrderRequest represents the request body for confirming a delivery
type VerifyOrderRequest struct {
	Codigo string `json:"codigo" binding:"required"`
}

// FeedbackRequest represents the request body for rating a completed delivery
type FeedbackRequest struct {
	PedidoID    string `json:"pedidoId" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comentarios string `json:"comentarios"`
}

// Create handles POST /api/pedido - places an order, generates the access
// code and emails it to the customer. The order row is committed before the
// mail is sent; if the relay fails the row is removed again so no order exists
// whose code was never delivered.
func (ctrl *OrderController) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensaje": "Faltan datos"})
		return
	}

	// Look up the route's checkpoint images
	var route models.Route
	if err := ctrl.db.First(&route, "id = ?", req.TrayectoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Trayecto no encontrado"})
		return
	}

	code, err := utils.GenerateAccessCode()
	if err != nil {
		log.Printf("access code generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensaje": "Error interno"})
		return
	}

	order := models.Order{
		ID:              uuid.NewString(),
		DispositivoID:   req.DispositivoID,
		TrayectoID:      req.TrayectoID,
		Correo:          req.Correo,
		CodigoAcceso:    code,
		Estado:          models.OrderEnRoute,
		FechaInicio:     time.Now(),
		FechaSolicitada: req.Fecha,
	}

	if err := ctrl.db.Create(&order).Error; err != nil {
		log.Printf("failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensaje": "Error creando pedido"})
		return
	}

	// Email after commit. A failed send removes the order again so the
	// customer is never left with an unconfirmable delivery.
	if err := ctrl.mailer.SendAccessCode(req.Correo, code); err != nil {
		log.Printf("failed to send access code for order %s: %v", order.ID, err)
		if delErr := ctrl.db.Delete(&models.Order{}, "id = ?", order.ID).Error; delErr != nil {
			log.Printf("failed to roll back order %s: %v", order.ID, delErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"mensaje": "Error enviando correo"})
		return
	}

	recordLog(ctrl.db, "pedido_creado", "Pedido "+order.ID+" creado para "+req.Correo, nil)

	c.JSON(http.StatusOK, gin.H{
		"mensaje":  "Pedido creado y correo enviado",
		"pedidoId": order.ID,
		"imagenes": route.Imagenes,
	})
}

// Verify handles POST /api/pedido/:id/verificar - checks the submitted code
// and, on match, completes the order and writes its service-log row. A
// mismatched code never mutates state.
func (ctrl *OrderController) Verify(c *gin.Context) {
	id := c.Param("id")

	var req VerifyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensaje": "Faltan datos"})
		return
	}

	var order models.Order
	if err := ctrl.db.First(&order, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Pedido no existe"})
		return
	}

	if order.Estado == models.OrderCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"mensaje": "Pedido ya completado"})
		return
	}

	if order.CodigoAcceso != req.Codigo {
		c.JSON(http.StatusBadRequest, gin.H{"mensaje": "Código incorrecto"})
		return
	}

	now := time.Now()
	updates := map[string]interface{}{
		"estado":        models.OrderCompleted,
		"fecha_entrega": now,
	}
	if err := ctrl.db.Model(&models.Order{}).Where("id = ?", order.ID).Updates(updates).Error; err != nil {
		log.Printf("failed to complete order %s: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensaje": "Error verificando"})
		return
	}

	estado := models.OrderCompleted
	entry := models.ServiceLog{
		PedidoID:      &order.ID,
		DispositivoID: order.DispositivoID,
		TrayectoID:    &order.TrayectoID,
		HoraSalida:    &order.FechaInicio,
		HoraLlegada:   &now,
		Estado:        estado,
	}
	if err := ctrl.db.Create(&entry).Error; err != nil {
		// Two racing correct-code submissions can both pass the status check;
		// the unique index on pedido_id turns the second insert into a
		// duplicate, which means the delivery is already confirmed.
		if isDuplicateError(err) {
			c.JSON(http.StatusOK, gin.H{"mensaje": "Entrega confirmada"})
			return
		}
		log.Printf("failed to create service log for order %s: %v", order.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensaje": "Error verificando"})
		return
	}

	recordLog(ctrl.db, "pedido_completado", "Pedido "+order.ID+" entregado", nil)

	c.JSON(http.StatusOK, gin.H{"mensaje": "Entrega confirmada"})
}

// Feedback handles POST /api/feedback - attaches a rating and comment to the
// service log of a verified order. No new row is created.
func (ctrl *OrderController) Feedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensaje": "Faltan datos"})
		return
	}

	var entry models.ServiceLog
	if err := ctrl.db.First(&entry, "pedido_id = ?", req.PedidoID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"mensaje": "Servicio no encontrado"})
		return
	}

	updates := map[string]interface{}{
		"comentarios":  req.Comentarios,
		"calificacion": req.Rating,
	}
	if err := ctrl.db.Model(&entry).Updates(updates).Error; err != nil {
		log.Printf("failed to save feedback for order %s: %v", req.PedidoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensaje": "Error guardando feedback"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mensaje": "Feedback guardado"})
}

// isDuplicateError detects unique-constraint violations across the drivers in
// use (PostgreSQL in production, SQLite in tests)
func isDuplicateError(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}
