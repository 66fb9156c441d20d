package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bodeppav/New-Expense-Tracker-Backend/auth"
	"github.com/bodeppav/New-Expense-Tracker-Backend/logger"
	"github.com/bodeppav/New-Expense-Tracker-Backend/models"
)

// UserContextKey is where RequireAuth stores the verified claims.
const UserContextKey = "user"

// RequireAuth verifies the Bearer token on the request and sets the claims in
// the gin context. Requests without a valid token are rejected with 401.
func RequireAuth(service *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c.Request)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid token"})
			c.Abort()
			return
		}

		claims, err := service.ParseToken(tokenString)
		if err != nil {
			logger.Get().Debug("token verification failed", zap.Error(err))
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(UserContextKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the verified claims set by RequireAuth.
func ClaimsFromContext(c *gin.Context) (*models.Claims, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*models.Claims)
	return claims, ok
}

func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
