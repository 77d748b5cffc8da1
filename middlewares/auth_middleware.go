package middlewares

import (
	"net/http"
	"strings"

	"github.com/otterable/minifitna/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a valid bearer token and places the caller's
// identity on the context as "userID" and "username".
func AuthMiddleware(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_token"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, username, err := utils.ParseJWT(tokenString, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		c.Set("userID", userID)
		c.Set("username", username)
		c.Next()
	}
}

// UserID reads the authenticated identity set by AuthMiddleware.
func UserID(c *gin.Context) uint {
	v, _ := c.Get("userID")
	id, _ := v.(uint)
	return id
}
