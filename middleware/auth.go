package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/models"
	"github.com/SebastianCO11/Drone-System-Prototype/services"
)

// Context key under which the resolved caller is stored
const ContextUserKey = "current_user"

// AuthUser is the resolved caller attached to the request context. The role
// always comes from the users table, never from the token payload alone.
type AuthUser struct {
	ID     string
	Role   string
	Nombre string
	Cedula string
}

// RequireAuth validates the bearer credential and resolves the caller's role.
// On any failure the request is rejected before route logic executes: missing
// or invalid tokens yield 401, a token whose subject has no user row yields
// 403. Both the token check and the role lookup are remote calls; there is no
// caching between requests.
func RequireAuth(db *gorm.DB, tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		claims, err := tokens.Validate(strings.TrimSpace(parts[1]))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		// Look up the caller's role by identity
		var user models.User
		if err := db.First(&user, "id = ?", claims.Subject).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "User not found in database"})
			c.Abort()
			return
		}

		c.Set(ContextUserKey, AuthUser{
			ID:     user.ID,
			Role:   user.Role,
			Nombre: user.Nombre,
			Cedula: user.Cedula,
		})
		c.Next()
	}
}

// RequireRole permits the request only when the resolved role is in the
// allowed set. It has no side effects beyond the 403 response.
func RequireRole(allowed ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
			c.Abort()
			return
		}

		for _, role := range allowed {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient role"})
		c.Abort()
	}
}

// CurrentUser extracts the resolved caller from the Gin context
func CurrentUser(c *gin.Context) (AuthUser, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return AuthUser{}, false
	}
	user, ok := value.(AuthUser)
	return user, ok
}
