package employee

import (
	"go-presensi/internal/middleware"
	"go-presensi/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, enforcer rbac.Enforcer, jwtSecret string) {
	emp := r.Group("/employees")
	emp.Use(middleware.AuthMiddleware(jwtSecret))
	{
		emp.POST("", rbac.RequireAccess(enforcer, "employee", "write"), h.Create)
		emp.GET("", rbac.RequireAccess(enforcer, "employee", "read_all"), h.GetAll)
		emp.GET("/options", rbac.RequireAccess(enforcer, "employee", "read_all"), h.GetOptions)
		emp.GET("/:id", rbac.RequireAccess(enforcer, "employee", "read_all"), h.GetByID)
		emp.PUT("/:id", rbac.RequireAccess(enforcer, "employee", "write"), h.Update)
		emp.DELETE("/:id", rbac.RequireAccess(enforcer, "employee", "write"), h.Delete)
	}
}
