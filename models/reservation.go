package models

import (
	"time"
)

// Reservation (reserva) links a user and a device to a service type over a
// time window. Listing preloads the device and user so the response carries
// the same nested objects the dashboard tables expect.
type Reservation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UsuarioID     string    `gorm:"type:uuid;not null;index" json:"usuario_id"`
	Usuario       *User     `gorm:"foreignKey:UsuarioID" json:"users,omitempty"`
	DispositivoID uint      `gorm:"not null;index" json:"dispositivo_id"`
	Dispositivo   *Device   `gorm:"foreignKey:DispositivoID" json:"dispositivos,omitempty"`
	TipoServicio  string    `gorm:"not null" json:"tipo_servicio"`
	FechaInicio   time.Time `gorm:"not null" json:"fecha_inicio"`
	FechaFin      time.Time `gorm:"not null" json:"fecha_fin"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Reservation model
func (Reservation) TableName() string {
	return "reservas"
}
