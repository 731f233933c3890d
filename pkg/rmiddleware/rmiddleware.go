package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/sundayvolley/volleyrank/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RoleMiddleware allows the request through only when the authenticated
// user's role claim matches one of the required roles. Must run after
// middleware.AuthMiddleware.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := middleware.GetUserRoleFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: " + err.Error()})
			return
		}

		for _, required := range requiredRoles {
			if strings.EqualFold(role, required) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":    "Forbidden",
			"message":  "You don't have permission to access this resource",
			"required": requiredRoles,
		})
	}
}

// ManagerMiddleware is a convenience middleware for manager-only access
func ManagerMiddleware() gin.HandlerFunc {
	return RoleMiddleware("manager")
}
