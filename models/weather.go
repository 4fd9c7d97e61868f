package models

// Weather (clima) is a synthetic per-day observation keyed by day of month.
// The ordering wizard reads it to block deliveries on rainy days.
type Weather struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Dia         int     `gorm:"uniqueIndex;not null;check:dia >= 1 AND dia <= 31" json:"dia"`
	Temperatura float64 `json:"temperatura"` // celsius
	Viento      float64 `json:"viento"`      // km/h
	Lluvia      bool    `json:"lluvia"`
	Visibilidad float64 `json:"visibilidad"` // kilometers
	Descripcion string  `json:"descripcion"`
}

// TableName specifies the table name for the Weather model
func (Weather) TableName() string {
	return "clima"
}
