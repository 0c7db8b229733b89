package middleware

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/medtrack/medicine-tracker-api/internal/constants"
	apierrors "github.com/medtrack/medicine-tracker-api/internal/errors"
	"github.com/medtrack/medicine-tracker-api/internal/utils"
)

// RequireAuth verifies the Authorization bearer token and stores the user ID
// in the request context. A missing token and an invalid one both come back
// as 401, but they are logged separately.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			log.Printf("auth: missing bearer token for %s %s", c.Request.Method, c.Request.URL.Path)
			apierrors.Unauthorized(c, "Authorization token required")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userID, err := utils.ParseToken(tokenString, secret)
		if err != nil {
			log.Printf("auth: invalid bearer token for %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	id, ok := userID.(uint64)
	if !ok {
		return 0, false
	}
	return id, true
}
