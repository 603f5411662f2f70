package middleware

import (
	"net/http"
	"strings"

	"github.com/Bowya123/swiggybackend/auth"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// AuthRequired validates the bearer token and injects the caller's user ID
// into the request context. Missing header, wrong scheme and failed
// verification all get the same rejection.
func AuthRequired(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		userID, err := tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID extracts the authenticated caller's user ID from context. Only
// valid downstream of AuthRequired.
func GetUserID(c *gin.Context) string {
	val, _ := c.Get(userIDKey)
	id, _ := val.(string)
	return id
}
