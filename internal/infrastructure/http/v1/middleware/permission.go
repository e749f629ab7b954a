package middleware

import (
	"github.com/gin-gonic/gin"

	"protoparts/internal/core/apperror"
	appctx "protoparts/internal/core/context"
)

// RequirePermission rejects callers missing any of the permissions.
// Admins hold every permission.
func RequirePermission(permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := appctx.GetUser(c.Request.Context())
		if user == nil {
			_ = c.Error(apperror.NewUnauthorized("authentication required"))
			c.Abort()
			return
		}

		for _, p := range permissions {
			if !user.HasPermission(p) {
				_ = c.Error(apperror.NewForbidden("insufficient permissions").
					WithDetail("required_permission", p))
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
