package controllers

import (
	"log"

	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
)

// recordLog appends a system-log row. Audit writes are best effort; a failure
// is logged server-side and never fails the request that produced the event.
func recordLog(db *gorm.DB, evento, detalle string, usuarioID *string) {
	entry := models.SystemLog{
		Evento:    evento,
		Detalle:   detalle,
		UsuarioID: usuarioID,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("failed to record system log %q: %v", evento, err)
	}
}
