package middleware

import (
	"net/http"
	"strings"

	"coursely/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuthMiddleware verifies the backend-issued bearer token and stores the
// caller's identity and raw token on the context so handlers can forward it.
// Authorization decisions stay with the backend.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		c.Set("userID", userID)
		c.Set("authToken", tokenString)
		c.Next()
	}
}

// AdminAuthMiddleware additionally requires the admin role claim.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := c.Get("authToken")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		role, err := utils.ExtractRoleFromToken(token.(string))
		if err != nil || role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}

// AuthToken returns the raw bearer token stored by JWTAuthMiddleware.
func AuthToken(c *gin.Context) string {
	token, _ := c.Get("authToken")
	if s, ok := token.(string); ok {
		return s
	}
	return ""
}
