package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
	"github.com/SebastianCO11/Drone-System-Prototype/tests/testutil"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/health", healthCheck)

	req, _ := http.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Drone Delivery API en línea", response["mensaje"])
}

func TestEnsureAdminExists(t *testing.T) {
	db := testutil.OpenTestDB(t)
	cfg := testutil.NewTestConfig()
	cfg.AdminEmail = "admin@dronedelivery.local"
	cfg.AdminPassword = "seed-password"

	assert.NoError(t, ensureAdminExists(db, cfg))

	var admin models.User
	assert.NoError(t, db.First(&admin, "email = ?", cfg.AdminEmail).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)

	// Idempotent on a populated table
	assert.NoError(t, ensureAdminExists(db, cfg))
	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnsureAdminExists_SkipsWithoutPassword(t *testing.T) {
	db := testutil.OpenTestDB(t)
	cfg := testutil.NewTestConfig()
	cfg.AdminEmail = "admin@dronedelivery.local"

	assert.NoError(t, ensureAdminExists(db, cfg))

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Zero(t, count)
}

func TestEnsureWeatherSeeded(t *testing.T) {
	db := testutil.OpenTestDB(t)

	assert.NoError(t, ensureWeatherSeeded(db))

	var rows []models.Weather
	assert.NoError(t, db.Order("dia").Find(&rows).Error)
	assert.Len(t, rows, 31)
	assert.Equal(t, 1, rows[0].Dia)
	assert.Equal(t, 31, rows[30].Dia)

	// The cycle guarantees both flyable and rainy days
	rainy := 0
	for _, row := range rows {
		if row.Lluvia {
			rainy++
		}
	}
	assert.Greater(t, rainy, 0)
	assert.Less(t, rainy, 31)

	// Re-running does not duplicate the table
	assert.NoError(t, ensureWeatherSeeded(db))
	var count int64
	db.Model(&models.Weather{}).Count(&count)
	assert.Equal(t, int64(31), count)
}
