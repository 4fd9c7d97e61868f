package services

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/SebastianCO11/Drone-System-Prototype/config"
	"github.com/SebastianCO11/Drone-System-Prototype/models"
)

const tokenIssuer = "drone-system-prototype"

// SessionClaims is the payload carried by a session token. Subject holds the
// user id; the role claim is informational only, the authoritative role is
// re-read from the users table on every request.
type SessionClaims struct {
	Role   string `json:"role"`
	Nombre string `json:"nombre,omitempty"`
	jwt.RegisteredClaims
}

// TokenService issues and validates HS256 session tokens
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service from the application configuration
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL(),
	}
}

// Generate signs a session token for the given user
func (s *TokenService) Generate(user *models.User) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Role:   user.Role,
		Nombre: user.Nombre,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses and verifies a session token, returning its claims
func (s *TokenService) Validate(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.Subject == "" {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}
