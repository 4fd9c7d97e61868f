package models

import (
	"time"
)

// SystemLog is an audit row for notable platform events (logins, order
// lifecycle transitions). Read-only through the API, admin only.
type SystemLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Evento    string    `gorm:"not null" json:"evento"`
	Detalle   string    `json:"detalle"`
	UsuarioID *string   `gorm:"type:uuid" json:"usuario_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the SystemLog model
func (SystemLog) TableName() string {
	return "logs"
}
