package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Middleware rejects requests whose session cookie is missing, invalid or
// expired. Only admin mutations are mounted behind it; shared-link reads
// stay public.
func Middleware(service *Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		if err := service.ValidateToken(token); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			return
		}

		c.Next()
	}
}
