package models

import (
	"time"
)

// Order lifecycle states. A failed verification keeps the order en_camino; the
// only transition is en_camino -> completado at code verification.
const (
	OrderEnRoute   = "en_camino"
	OrderCompleted = "completado"
)

// Order (pedido) is a customer delivery request carrying a one-time 4-digit
// access code emailed at creation and checked at hand-off.
type Order struct {
	ID              string     `gorm:"type:uuid;primaryKey" json:"id"`
	DispositivoID   uint       `gorm:"not null;index" json:"dispositivo_id"`
	TrayectoID      string     `gorm:"type:uuid;not null;index" json:"trayecto_id"`
	Correo          string     `gorm:"not null" json:"correo"`
	CodigoAcceso    string     `gorm:"not null" json:"-"`
	Estado          string     `gorm:"not null;default:'en_camino'" json:"estado"`
	FechaInicio     time.Time  `gorm:"not null" json:"fecha_inicio"`
	FechaSolicitada *time.Time `json:"fecha_solicitada"` // requested delivery date, optional
	FechaEntrega    *time.Time `json:"fecha_entrega"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "pedidos"
}
