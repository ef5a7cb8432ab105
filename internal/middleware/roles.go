package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/oguzk/teamhub-api/internal/models"
	"github.com/oguzk/teamhub-api/internal/response"
)

// RequireManager allows only project managers and admins. A valid identity
// with an insufficient role gets a 403, distinct from the 401 of RequireAuth.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}
		if !user.Role.IsPrivileged() {
			response.Forbidden(c, "Manager role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin allows only admins.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			response.Unauthorized(c, "")
			c.Abort()
			return
		}
		if user.Role != models.RoleAdmin {
			response.Forbidden(c, "Admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
