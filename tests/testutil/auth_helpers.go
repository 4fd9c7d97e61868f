package testutil

import (
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
	"github.com/SebastianCO11/Drone-System-Prototype/services"
)

// CreateUser inserts a user with the given role and password and returns it
func CreateUser(t *testing.T, db *gorm.DB, email, role, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Nombre:       "Test " + role,
		Cedula:       uuid.NewString()[:10],
		Email:        email,
		Role:         role,
		PasswordHash: string(hash),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return user
}

// MintToken signs a real session token for the given user
func MintToken(t *testing.T, tokens *services.TokenService, user *models.User) string {
	t.Helper()

	token, err := tokens.Generate(user)
	if err != nil {
		t.Fatalf("Failed to mint test token: %v", err)
	}
	return token
}
