package models

import (
	"time"

	"gorm.io/gorm"
)

// Platform roles. Role changes are admin-only; handlers compare against these
// constants instead of raw strings.
const (
	RoleAdmin     = "admin"
	RoleOperator  = "operador"
	RoleConsultor = "consultor"
)

// User represents a platform operator account (admin, operador or consultor).
// The ID doubles as the JWT subject, mirroring the identity provider the
// platform originally delegated accounts to.
type User struct {
	ID           string         `gorm:"type:uuid;primaryKey" json:"id"`
	Nombre       string         `gorm:"not null" json:"nombre"`
	Cedula       string         `gorm:"uniqueIndex;not null" json:"cedula"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	Role         string         `gorm:"not null;default:'consultor'" json:"role"`
	PasswordHash string         `gorm:"not null" json:"-"`
	ResetCode    *string        `json:"-"` // pending password-recovery code, nil when none
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}

// ValidRole reports whether role is one of the enumerated platform roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleOperator || role == RoleConsultor
}
