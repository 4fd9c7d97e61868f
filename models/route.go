package models

import (
	"time"
)

// Route (trayecto) is a named flight path described by an ordered list of
// checkpoint image URLs. The ordering flow treats routes as read-only; images
// are appended through the admin upload endpoint.
type Route struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre    string    `gorm:"not null" json:"nombre"`
	Imagenes  []string  `gorm:"serializer:json" json:"imagenes"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for the Route model
func (Route) TableName() string {
	return "trayectos"
}
