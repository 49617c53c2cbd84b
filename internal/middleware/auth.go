package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	authHeader    = "Authorization"
	bearerPrefix  = "Bearer "
	userIDContext = "staff_user_id"
)

// TokenValidator validates a bearer token and returns the authenticated
// subject (staff user ID). Implemented by the auth module's token manager.
type TokenValidator interface {
	ValidateToken(token string) (string, error)
}

// RequireAuth returns a gin middleware that rejects requests without a valid
// Bearer token. It runs before any binding or persistence work: a request
// with no valid session is answered 401 and aborted immediately.
func RequireAuth(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			unauthorized(c)
			return
		}

		subject, err := validator.ValidateToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			unauthorized(c)
			return
		}

		c.Set(userIDContext, subject)
		c.Next()
	}
}

// GetStaffUserID extracts the authenticated staff user ID from the context.
// Returns an empty string on unauthenticated requests.
func GetStaffUserID(c *gin.Context) string {
	if v, exists := c.Get(userIDContext); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error":   "unauthorized",
	})
}
