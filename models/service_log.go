package models

import (
	"time"
)

// ServiceLog (servicio) records one completed or logged flight. Rows come from
// two producers: the order verification flow (exactly one row per order,
// enforced by the unique index on pedido_id) and the manual bitácora entries
// operators file against a reservation. Customer feedback later fills in
// comentarios and calificacion on the order-derived row.
type ServiceLog struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	PedidoID      *string    `gorm:"type:uuid;uniqueIndex" json:"pedido_id"`
	ReservaID     *uint      `gorm:"index" json:"reserva_id"`
	DispositivoID uint       `gorm:"not null;index" json:"dispositivo_id"`
	TrayectoID    *string    `gorm:"type:uuid;index" json:"trayecto_id"`
	OperadorID    *string    `gorm:"type:uuid" json:"operador_id"`
	TipoServicio  *string    `json:"tipo_servicio"`
	HoraSalida    *time.Time `json:"hora_salida"`
	HoraLlegada   *time.Time `json:"hora_llegada"`
	Estado        string     `gorm:"not null" json:"estado"`
	Observaciones *string    `json:"observaciones"`
	Comentarios   *string    `json:"comentarios"`
	Calificacion  *int       `gorm:"check:calificacion >= 1 AND calificacion <= 5" json:"calificacion"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// TableName specifies the table name for the ServiceLog model
func (ServiceLog) TableName() string {
	return "servicios"
}
