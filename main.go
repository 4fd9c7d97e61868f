package main

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/config"
	"github.com/SebastianCO11/Drone-System-Prototype/models"
	"github.com/SebastianCO11/Drone-System-Prototype/services"
)

func main() {
	// Basic logging
	log.Println("Starting Drone Delivery API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	if err := db.AutoMigrate(
		&models.User{},
		&models.Device{},
		&models.Route{},
		&models.Reservation{},
		&models.Order{},
		&models.ServiceLog{},
		&models.Weather{},
		&models.SystemLog{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Seed data required on first boot
	if err := ensureAdminExists(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	if err := ensureWeatherSeeded(db); err != nil {
		log.Fatalf("Failed to seed weather table: %v", err)
	}

	// Outbound services
	mailer := services.NewSMTPMailService(cfg)
	s3Service, err := services.NewS3Service(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}
	images := services.NewImageService(s3Service)

	// Initialize Gin router
	router := setupRouter(db, cfg, mailer, images)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// ensureAdminExists creates the seed admin account when the users table is
// empty, so a fresh deployment can log in and invite the rest of the staff.
func ensureAdminExists(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	password := cfg.AdminPassword
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:           uuid.NewString(),
		Nombre:       "Administrador",
		Cedula:       "0000000000",
		Email:        cfg.AdminEmail,
		Role:         models.RoleAdmin,
		PasswordHash: string(hash),
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Seed admin account created (%s)", admin.Email)
	return nil
}

// ensureWeatherSeeded fills the clima table with one synthetic observation per
// day of the month when it is empty. The pattern repeats every few days so the
// demo always has both flyable and rainy days.
func ensureWeatherSeeded(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Weather{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	descriptions := []string{"Despejado", "Parcialmente nublado", "Nublado", "Lluvia ligera", "Tormenta"}
	rows := make([]models.Weather, 0, 31)
	for dia := 1; dia <= 31; dia++ {
		idx := (dia - 1) % len(descriptions)
		rows = append(rows, models.Weather{
			Dia:         dia,
			Temperatura: 18 + float64((dia*7)%12),
			Viento:      5 + float64((dia*3)%25),
			Lluvia:      idx >= 3,
			Visibilidad: 10 - float64(idx)*2,
			Descripcion: descriptions[idx],
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		return err
	}

	log.Println("Weather table seeded with synthetic data")
	return nil
}
