package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
	"github.com/SebastianCO11/Drone-System-Prototype/services"
)

func seedOrderFixtures(t *testing.T, db *gorm.DB) (*models.Device, *models.Route) {
	t.Helper()

	device := &models.Device{
		Tipo:        "cuadricóptero",
		Modelo:      "DJI-X1",
		NumeroSerie: uuid.NewString(),
		Bateria:     90,
		Estado:      models.DeviceAvailable,
	}
	if err := db.Create(device).Error; err != nil {
		t.Fatalf("Failed to seed device: %v", err)
	}

	route := &models.Route{
		ID:       uuid.NewString(),
		Nombre:   "Ruta Centro",
		Imagenes: []string{"i1", "i2"},
	}
	if err := db.Create(route).Error; err != nil {
		t.Fatalf("Failed to seed route: %v", err)
	}

	return device, route
}

func postJSON(router http.Handler, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateOrder(t *testing.T) {
	db := setupTestDB(t)
	device, route := seedOrderFixtures(t, db)
	mailer := services.NewMockMailService()

	router := setupTestRouter()
	router.POST("/api/pedido", NewOrderController(db, mailer).Create)

	w := postJSON(router, "/api/pedido", map[string]interface{}{
		"dispositivoId": device.ID,
		"trayectoId":    route.ID,
		"correo":        "a@b.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Pedido creado y correo enviado", response["mensaje"])
	assert.NotEmpty(t, response["pedidoId"])
	assert.Equal(t, []interface{}{"i1", "i2"}, response["imagenes"])

	// The order row carries the generated code and status en_camino
	var order models.Order
	assert.NoError(t, db.First(&order, "id = ?", response["pedidoId"]).Error)
	assert.Equal(t, models.OrderEnRoute, order.Estado)
	assert.Equal(t, "a@b.com", order.Correo)
	assert.Regexp(t, regexp.MustCompile(`^[1-9]\d{3}$`), order.CodigoAcceso)

	// The code was mailed to the customer
	sent := mailer.Sent()
	assert.Len(t, sent, 1)
	assert.Equal(t, "a@b.com", sent[0].To)
	assert.Equal(t, order.CodigoAcceso, sent[0].Code)
}

func TestCreateOrder_Validation(t *testing.T) {
	db := setupTestDB(t)
	device, route := seedOrderFixtures(t, db)
	mailer := services.NewMockMailService()

	router := setupTestRouter()
	router.POST("/api/pedido", NewOrderController(db, mailer).Create)

	tests := []struct {
		name           string
		payload        map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "Missing device id",
			payload:        map[string]interface{}{"trayectoId": route.ID, "correo": "a@b.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing route id",
			payload:        map[string]interface{}{"dispositivoId": device.ID, "correo": "a@b.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing email",
			payload:        map[string]interface{}{"dispositivoId": device.ID, "trayectoId": route.ID},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Invalid email",
			payload:        map[string]interface{}{"dispositivoId": device.ID, "trayectoId": route.ID, "correo": "no"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown route",
			payload:        map[string]interface{}{"dispositivoId": device.ID, "trayectoId": uuid.NewString(), "correo": "a@b.com"},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/pedido", tt.payload)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	// No order row or mail was produced by any rejected request
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count)
	assert.Empty(t, mailer.Sent())
}

func TestCreateOrder_MailFailureRollsBack(t *testing.T) {
	db := setupTestDB(t)
	device, route := seedOrderFixtures(t, db)
	mailer := services.NewMockMailService()
	mailer.Err = errors.New("relay unreachable")

	router := setupTestRouter()
	router.POST("/api/pedido", NewOrderController(db, mailer).Create)

	w := postJSON(router, "/api/pedido", map[string]interface{}{
		"dispositivoId": device.ID,
		"trayectoId":    route.ID,
		"correo":        "a@b.com",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// The order created before the failed send must not survive
	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Zero(t, count, "No order should remain after a failed code delivery")
}

func createOrderViaAPI(t *testing.T, db *gorm.DB, router http.Handler, device *models.Device, route *models.Route) *models.Order {
	t.Helper()

	w := postJSON(router, "/api/pedido", map[string]interface{}{
		"dispositivoId": device.ID,
		"trayectoId":    route.ID,
		"correo":        "a@b.com",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	var order models.Order
	assert.NoError(t, db.First(&order, "id = ?", response["pedidoId"]).Error)
	return &order
}

func TestVerifyOrder(t *testing.T) {
	db := setupTestDB(t)
	device, route := seedOrderFixtures(t, db)
	mailer := services.NewMockMailService()

	ctrl := NewOrderController(db, mailer)
	router := setupTestRouter()
	router.POST("/api/pedido", ctrl.Create)
	router.POST("/api/pedido/:id/verificar", ctrl.Verify)

	order := createOrderViaAPI(t, db, router, device, route)

	// Wrong code: no transition, no service log
	w := postJSON(router, "/api/pedido/"+order.ID+"/verificar", map[string]interface{}{"codigo": "0000"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Código incorrecto")

	var unchanged models.Order
	assert.NoError(t, db.First(&unchanged, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderEnRoute, unchanged.Estado)
	assert.Nil(t, unchanged.FechaEntrega)

	var logCount int64
	db.Model(&models.ServiceLog{}).Count(&logCount)
	assert.Zero(t, logCount)

	// Correct code: completed exactly once with exactly one service log
	w = postJSON(router, "/api/pedido/"+order.ID+"/verificar", map[string]interface{}{"codigo": order.CodigoAcceso})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Entrega confirmada", response["mensaje"])

	var completed models.Order
	assert.NoError(t, db.First(&completed, "id = ?", order.ID).Error)
	assert.Equal(t, models.OrderCompleted, completed.Estado)
	assert.NotNil(t, completed.FechaEntrega)

	var entries []models.ServiceLog
	assert.NoError(t, db.Find(&entries).Error)
	assert.Len(t, entries, 1)
	assert.Equal(t, order.ID, *entries[0].PedidoID)
	assert.Equal(t, order.DispositivoID, entries[0].DispositivoID)
	assert.Equal(t, route.ID, *entries[0].TrayectoID)
	assert.Equal(t, models.OrderCompleted, entries[0].Estado)
	assert.True(t, entries[0].HoraSalida.Equal(completed.FechaInicio))

	// Re-verification of a completed order is rejected and stays at one row
	w = postJSON(router, "/api/pedido/"+order.ID+"/verificar", map[string]interface{}{"codigo": order.CodigoAcceso})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Pedido ya completado")

	db.Model(&models.ServiceLog{}).Count(&logCount)
	assert.Equal(t, int64(1), logCount)
}

func TestVerifyOrder_NotFound(t *testing.T) {
	db := setupTestDB(t)
	mailer := services.NewMockMailService()

	router := setupTestRouter()
	router.POST("/api/pedido/:id/verificar", NewOrderController(db, mailer).Verify)

	w := postJSON(router, "/api/pedido/"+uuid.NewString()+"/verificar", map[string]interface{}{"codigo": "1234"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Pedido no existe")
}

func TestFeedback(t *testing.T) {
	db := setupTestDB(t)
	device, route := seedOrderFixtures(t, db)
	mailer := services.NewMockMailService()

	ctrl := NewOrderController(db, mailer)
	router := setupTestRouter()
	router.POST("/api/pedido", ctrl.Create)
	router.POST("/api/pedido/:id/verificar", ctrl.Verify)
	router.POST("/api/feedback", ctrl.Feedback)

	order := createOrderViaAPI(t, db, router, device, route)

	// Before verification there is no service log to attach feedback to
	w := postJSON(router, "/api/feedback", map[string]interface{}{
		"pedidoId": order.ID,
		"rating":   5,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.ServiceLog{}).Count(&count)
	assert.Zero(t, count, "Failed feedback must not create rows")

	// Verify, then feedback lands on the single service log row
	w = postJSON(router, "/api/pedido/"+order.ID+"/verificar", map[string]interface{}{"codigo": order.CodigoAcceso})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(router, "/api/feedback", map[string]interface{}{
		"pedidoId":    order.ID,
		"rating":      4,
		"comentarios": "Entrega rápida",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var entry models.ServiceLog
	assert.NoError(t, db.First(&entry, "pedido_id = ?", order.ID).Error)
	assert.NotNil(t, entry.Calificacion)
	assert.Equal(t, 4, *entry.Calificacion)
	assert.NotNil(t, entry.Comentarios)
	assert.Equal(t, "Entrega rápida", *entry.Comentarios)
}

func TestFeedback_Validation(t *testing.T) {
	db := setupTestDB(t)
	mailer := services.NewMockMailService()

	router := setupTestRouter()
	router.POST("/api/feedback", NewOrderController(db, mailer).Feedback)

	tests := []struct {
		name    string
		payload map[string]interface{}
	}{
		{"Missing rating", map[string]interface{}{"pedidoId": uuid.NewString()}},
		{"Rating too low", map[string]interface{}{"pedidoId": uuid.NewString(), "rating": 0}},
		{"Rating too high", map[string]interface{}{"pedidoId": uuid.NewString(), "rating": 6}},
		{"Missing order id", map[string]interface{}{"rating": 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/feedback", tt.payload)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestVerifyOrder_DuplicateServiceLogTolerated(t *testing.T) {
	db := setupTestDB(t)
	device, route := seedOrderFixtures(t, db)
	mailer := services.NewMockMailService()

	ctrl := NewOrderController(db, mailer)
	router := setupTestRouter()
	router.POST("/api/pedido", ctrl.Create)
	router.POST("/api/pedido/:id/verificar", ctrl.Verify)

	order := createOrderViaAPI(t, db, router, device, route)

	// Simulate the losing side of a verification race: the service log row
	// already exists when the insert runs.
	now := time.Now()
	pre := models.ServiceLog{
		PedidoID:      &order.ID,
		DispositivoID: order.DispositivoID,
		TrayectoID:    &order.TrayectoID,
		HoraSalida:    &order.FechaInicio,
		HoraLlegada:   &now,
		Estado:        models.OrderCompleted,
	}
	assert.NoError(t, db.Create(&pre).Error)

	w := postJSON(router, "/api/pedido/"+order.ID+"/verificar", map[string]interface{}{"codigo": order.CodigoAcceso})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Entrega confirmada")

	var count int64
	db.Model(&models.ServiceLog{}).Count(&count)
	assert.Equal(t, int64(1), count, "Duplicate insert must not add a second row")
}
