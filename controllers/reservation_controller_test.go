package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
	"github.com/SebastianCO11/Drone-System-Prototype/tests/testutil"
)

func TestCreateReservation(t *testing.T) {
	db := setupTestDB(t)
	user := testutil.CreateUser(t, db, "op@test.com", models.RoleOperator, "password123")
	device := seedDevice(t, db, "SN-300", models.DeviceAvailable)

	router := setupTestRouter()
	router.POST("/api/reservas", NewReservationController(db).Create)

	start := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	end := start.Add(2 * time.Hour)

	w := postJSON(router, "/api/reservas", map[string]interface{}{
		"usuario_id":     user.ID,
		"dispositivo_id": device.ID,
		"tipo_servicio":  "inspección",
		"fecha_inicio":   start.Format(time.RFC3339),
		"fecha_fin":      end.Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var reservation models.Reservation
	assert.NoError(t, db.First(&reservation, "usuario_id = ?", user.ID).Error)
	assert.Equal(t, device.ID, reservation.DispositivoID)
	assert.Equal(t, "inspección", reservation.TipoServicio)
	assert.True(t, reservation.FechaInicio.Equal(start))

	// Missing window
	w = postJSON(router, "/api/reservas", map[string]interface{}{
		"usuario_id":     user.ID,
		"dispositivo_id": device.ID,
		"tipo_servicio":  "inspección",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReservationsNestsRelations(t *testing.T) {
	db := setupTestDB(t)
	user := testutil.CreateUser(t, db, "op@test.com", models.RoleOperator, "password123")
	device := seedDevice(t, db, "SN-301", models.DeviceAvailable)

	reservation := models.Reservation{
		UsuarioID:     user.ID,
		DispositivoID: device.ID,
		TipoServicio:  "entrega",
		FechaInicio:   time.Now(),
		FechaFin:      time.Now().Add(time.Hour),
	}
	assert.NoError(t, db.Create(&reservation).Error)

	router := setupTestRouter()
	router.GET("/api/reservas", NewReservationController(db).List)

	req, _ := http.NewRequest(http.MethodGet, "/api/reservas", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var rows []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 1)

	// The dashboard tables read the joined device and user off each row
	dispositivo := rows[0]["dispositivos"].(map[string]interface{})
	assert.Equal(t, "SN-301", dispositivo["numero_serie"])

	usuario := rows[0]["users"].(map[string]interface{})
	assert.Equal(t, user.ID, usuario["id"])
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestDeleteReservation(t *testing.T) {
	db := setupTestDB(t)
	user := testutil.CreateUser(t, db, "op@test.com", models.RoleOperator, "password123")
	device := seedDevice(t, db, "SN-302", models.DeviceAvailable)

	reservation := models.Reservation{
		UsuarioID:     user.ID,
		DispositivoID: device.ID,
		TipoServicio:  "entrega",
		FechaInicio:   time.Now(),
		FechaFin:      time.Now().Add(time.Hour),
	}
	assert.NoError(t, db.Create(&reservation).Error)

	router := setupTestRouter()
	router.DELETE("/api/reservas/:id", NewReservationController(db).Delete)

	deleteReq := func(path string) *httptest.ResponseRecorder {
		req, _ := http.NewRequest(http.MethodDelete, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	w := deleteReq("/api/reservas/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Reserva eliminada correctamente")

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.Zero(t, count)

	// Deleting again reports not found
	w = deleteReq("/api/reservas/1")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Reserva no encontrada")
}
