package rbac

import (
	"net/http"

	"go-presensi/internal/shared/apperror"
	"go-presensi/internal/shared/response"

	"github.com/gin-gonic/gin"
)

func RequireAccess(enforcer Enforcer, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized, "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := enforcer.Allow(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, apperror.CodeInternalError, "Authorization check failed", nil)
			c.Abort()
			return
		}
		if !allowed {
			response.Error(c, http.StatusForbidden, apperror.CodeForbidden,
				"You do not have permission to access this resource",
				resource+":"+action,
			)
			c.Abort()
			return
		}
		c.Next()
	}
}
