package models

import (
	"time"
)

// Device availability states as stored in the estado column.
const (
	DeviceAvailable   = "disponible"
	DeviceInFlight    = "en_vuelo"
	DeviceMaintenance = "mantenimiento"
)

// Device represents a drone unit with its operational telemetry
type Device struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Tipo           string    `gorm:"not null" json:"tipo"`
	Modelo         string    `gorm:"not null" json:"modelo"`
	NumeroSerie    string    `gorm:"uniqueIndex;not null" json:"numero_serie"`
	CapacidadCarga float64   `json:"capacidad_carga"` // kilograms
	Bateria        int       `gorm:"check:bateria >= 0 AND bateria <= 100" json:"bateria"`
	Firmware       string    `json:"firmware"`
	Sensores       []string  `gorm:"serializer:json" json:"sensores"`
	Estado         string    `gorm:"not null;default:'disponible'" json:"estado"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Device model
func (Device) TableName() string {
	return "dispositivos"
}
